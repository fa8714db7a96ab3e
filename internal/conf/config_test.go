package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DrawCount)
	assert.Equal(t, time.Duration(0), cfg.Interval)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.PrometheusBind)
	assert.Empty(t, cfg.Items)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("DRAW_COUNT", "10")
	t.Setenv("INTERVAL", "2s")
	t.Setenv("SEED", "42")
	t.Setenv("DEBUG", "true")
	t.Setenv("PROMETHEUS_BIND", ":2112")
	t.Setenv("ITEMS", `[{"Item": "Cat"}, {"Item": "Dog", "Weight": 2.5}]`)

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DrawCount)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":2112", cfg.PrometheusBind)

	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "Dog", cfg.Items[1].Item)
	require.NotNil(t, cfg.Items[1].Weight)
	assert.Equal(t, 2.5, *cfg.Items[1].Weight)
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("ITEMS", `not json`)
	_, err := ParseEnv()
	require.Error(t, err)
}
