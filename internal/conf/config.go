package conf

import (
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/petuhovskiy/wrand/internal/rdesc"
)

type App struct {
	// PrometheusBind is an address for the metrics endpoint. Empty disables it.
	PrometheusBind string `env:"PROMETHEUS_BIND"`

	// DrawCount is how many items are drawn in each round.
	DrawCount int `env:"DRAW_COUNT" envDefault:"5"`

	// Interval between rounds. Zero means a single round.
	Interval time.Duration `env:"INTERVAL" envDefault:"0s"`

	// Seed for the random source, 0 seeds from the current time.
	Seed int64 `env:"SEED" envDefault:"0"`

	Debug bool `env:"DEBUG" envDefault:"false"`

	// Items is an optional JSON population, see rdesc.Wrand.
	Items rdesc.Wrand[string] `env:"ITEMS"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
