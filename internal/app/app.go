// This package is used to initialize the application. It wires the config,
// the random source and metrics together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/petuhovskiy/wrand/internal/conf"
	"github.com/petuhovskiy/wrand/internal/log"
	"github.com/petuhovskiy/wrand/internal/metrics"
	"github.com/petuhovskiy/wrand/internal/randomizer"
	"github.com/petuhovskiy/wrand/internal/rdesc"
)

type App struct {
	Config   *conf.App
	Registry *prometheus.Registry
	Metrics  *metrics.Randomizer
	Source   randomizer.Source
}

func NewAppFromEnv() (*App, error) {
	cfg, err := conf.ParseEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config from env: %w", err)
	}
	return NewApp(cfg)
}

func NewApp(cfg *conf.App) (*App, error) {
	if cfg.DrawCount < 0 {
		return nil, fmt.Errorf("invalid draw count %d: %w", cfg.DrawCount, randomizer.ErrInvalidCount)
	}

	reg := prometheus.NewRegistry()
	return &App{
		Config:   cfg,
		Registry: reg,
		Metrics:  metrics.NewRandomizer(reg),
		Source:   randomizer.NewSource(cfg.Seed),
	}, nil
}

// NewRandomizer creates a randomizer over the configured items, or over
// fallback if no items are configured.
func (a *App) NewRandomizer(fallback rdesc.Wrand[string]) (*randomizer.Randomizer[string], error) {
	desc := a.Config.Items
	if len(desc) == 0 {
		desc = fallback
	}
	for i, it := range desc {
		if it.Weight != nil && *it.Weight == 0 {
			log.Warn(context.Background(), "item has zero weight and will never be drawn",
				zap.Int("index", i), zap.Any("item", it.Item))
		}
	}

	r, err := desc.Randomizer(
		randomizer.WithSource(a.Source),
		randomizer.WithObserver(a.Metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create randomizer: %w", err)
	}
	return r, nil
}

const metricsReadHeaderTimeout = 5 * time.Second

func newMetricsServer(bind string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              bind,
		Handler:           handler,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}
}

// StartPrometheus serves metrics in background until ctx is done.
// Does nothing if PrometheusBind is not set.
func (a *App) StartPrometheus(ctx context.Context) {
	if a.Config.PrometheusBind == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))
	srv := newMetricsServer(a.Config.PrometheusBind, mux)

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	go func() {
		log.Info(ctx, "serving metrics", zap.String("bind", a.Config.PrometheusBind))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(ctx, "prometheus server error", zap.Error(err))
		}
	}()
}
