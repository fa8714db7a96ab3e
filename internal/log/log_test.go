package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextFallsBackToGlobal(t *testing.T) {
	restore := DefaultGlobals(true)
	defer restore()

	assert.Same(t, zap.L(), FromContext(context.Background()))
	//nolint:staticcheck
	assert.Same(t, zap.L(), FromContext(nil))
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := With(context.Background(), zap.String("round", "1"))
	Info(ctx, "drew items", zap.Int("count", 5))
	Debug(context.Background(), "plain")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "drew items", entries[0].Message)
		assert.Equal(t, map[string]interface{}{"round": "1", "count": int64(5)}, entries[0].ContextMap())
		assert.Empty(t, entries[1].ContextMap())
	}
}
