package randomizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceRange(t *testing.T) {
	src := NewSource(0)
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSourceSeeded(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
