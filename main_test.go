package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/wrand/internal/randomizer"
)

type constSource float64

func (s constSource) Float64() float64 { return float64(s) }

func TestWriteResults(t *testing.T) {
	items := defaultItems.Items()
	var buf bytes.Buffer
	err := writeResults(&buf, []randomizer.Randomized[string]{items[0], items[3], items[1]})
	require.NoError(t, err)

	assert.Equal(t, "Cat\nZebra\n  hooves: 4\n  stripes: 5\nDog\n", buf.String())
}

func TestDrawRound(t *testing.T) {
	list, err := defaultItems.Randomizer(randomizer.WithSource(constSource(0.05)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, drawRound(context.Background(), &buf, list, 3))
	assert.Equal(t, "Cat\nCat\nCat\n", buf.String())
}

func TestDrawRoundZebra(t *testing.T) {
	list, err := defaultItems.Randomizer(randomizer.WithSource(constSource(7.9 / 8.3)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, drawRound(context.Background(), &buf, list, 1))
	assert.Equal(t, "Zebra\n  hooves: 4\n  stripes: 5\n", buf.String())
}

func TestDrawRoundFails(t *testing.T) {
	list, err := randomizer.New[string](nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = drawRound(context.Background(), &buf, list, 1)
	require.ErrorIs(t, err, randomizer.ErrEmptyPopulation)
	assert.Empty(t, buf.String())
}
