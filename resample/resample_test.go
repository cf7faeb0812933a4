package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridShape(t *testing.T) {
	grid := Grid(DefaultStepMinutes)

	assert.Len(t, grid, 720)
	assert.Equal(t, 0, grid[0])
	assert.Equal(t, 2, grid[1])
	assert.Equal(t, 1438, grid[len(grid)-1])
}

func TestGridFallsBackToDefaultStep(t *testing.T) {
	assert.Equal(t, Grid(DefaultStepMinutes), Grid(0))
	assert.Equal(t, Grid(DefaultStepMinutes), Grid(-3))
}

func TestSeriesAlwaysReturnsFullGrid(t *testing.T) {
	for _, n := range []int{1, 2, 5, 300} {
		times := make([]float64, n)
		values := make([]float64, n)
		for i := 0; i < n; i++ {
			times[i] = float64(i * 2)
			values[i] = float64(i % 7)
		}
		grid, fitted, err := Series(times, values, DefaultStepMinutes)
		assert.NoError(t, err)
		assert.Len(t, grid, 720, "n=%d", n)
		assert.Len(t, fitted, 720, "n=%d", n)
	}
}

func TestMapSharesOneGrid(t *testing.T) {
	times := []float64{0, 120, 240}
	byStation := map[int][]float64{
		6001: {5, 7, 7},
		6002: {0, 0, 3},
	}

	grid, fitted, err := Map(times, byStation, DefaultStepMinutes)
	assert.NoError(t, err)
	assert.Len(t, grid, 720)
	assert.Len(t, fitted, 2)
	for id, series := range fitted {
		assert.Len(t, series, 720, "station %d", id)
	}
	assert.Equal(t, 5.0, fitted[6001][0])
	assert.Equal(t, 0.0, fitted[6002][0])
}

func TestMapEmptySeriesFails(t *testing.T) {
	_, _, err := Map(nil, map[int][]float64{6001: nil}, DefaultStepMinutes)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
