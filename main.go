package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/petuhovskiy/wrand/internal/app"
	"github.com/petuhovskiy/wrand/internal/conf"
	"github.com/petuhovskiy/wrand/internal/log"
	"github.com/petuhovskiy/wrand/internal/randomizer"
	"github.com/petuhovskiy/wrand/internal/rdesc"
)

var defaultItems = rdesc.Wrand[string]{
	{Weight: weight(1.0), Item: "Cat"},
	{Weight: weight(2.5), Item: "Dog"},
	{Weight: weight(0.5), Item: "Salamander"},
	{Weight: weight(4.3), Item: "Zebra", Props: map[string]any{
		"stripes": 5,
		"hooves":  4,
	}},
}

func weight(w float64) *float64 {
	return &w
}

func main() {
	cfg, err := conf.ParseEnv()
	defer log.DefaultGlobals(cfg != nil && cfg.Debug)()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err != nil {
		log.Fatal(ctx, "failed to parse config from env", zap.Error(err))
	}

	base, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(ctx, "failed to init app", zap.Error(err))
	}
	base.StartPrometheus(ctx)

	list, err := base.NewRandomizer(defaultItems)
	if err != nil {
		log.Fatal(ctx, "failed to create randomizer", zap.Error(err))
	}
	log.Debug(ctx, "randomizer ready",
		zap.Int("items", len(list.Items())),
		zap.Float64("totalWeight", list.TotalWeight()),
	)

	for round := 1; ; round++ {
		rctx := log.With(ctx, zap.Int("round", round))
		err := drawRound(rctx, os.Stdout, list, cfg.DrawCount)
		if err != nil {
			log.Error(rctx, "draw failed", zap.Error(err))
		}

		if cfg.Interval <= 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(cfg.Interval):
		}
	}
}

func drawRound(ctx context.Context, w io.Writer, list *randomizer.Randomizer[string], count int) error {
	results, err := list.Next(count)
	if err != nil {
		return err
	}
	log.Debug(ctx, "drew items", zap.Int("count", len(results)))
	return writeResults(w, results)
}

// writeResults prints every value, followed by its properties sorted by key.
func writeResults(w io.Writer, results []randomizer.Randomized[string]) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Record().Value); err != nil {
			return err
		}

		withProps, ok := r.(randomizer.Propertied[string, any])
		if !ok {
			continue
		}
		props := withProps.Properties()
		keys := maps.Keys(props)
		slices.Sort(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "  %s: %v\n", k, props[k]); err != nil {
				return err
			}
		}
	}
	return nil
}
