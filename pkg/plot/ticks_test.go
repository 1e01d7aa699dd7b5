package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickStep(t *testing.T) {
	tests := []struct {
		min, max float64
		target   int
		want     float64
	}{
		{0, 10, 5, 2},
		{0, 100, 10, 10},
		{0, 1, 4, 0.25},
		{0, 30, 5, 5},
		{0, 8, 1, 10},
		{-50, 50, 5, 20},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, TickStep(tc.min, tc.max, tc.target), 1e-12,
			"TickStep(%g, %g, %d)", tc.min, tc.max, tc.target)
	}
}

func TestGenerateTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, GenerateTicks(0, 10, 5))
	assert.Equal(t, []float64{-4, -2, 0, 2, 4}, GenerateTicks(-5, 5, 5))
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.6, 0.8}, GenerateTicks(0.1, 0.9, 4), 1e-9)
}

func TestGenerateTicksIncludesRangeEnds(t *testing.T) {
	ticks := GenerateTicks(0, 10, 5)
	assert.Equal(t, 0.0, ticks[0])
	assert.Equal(t, 10.0, ticks[len(ticks)-1], "max on a step boundary must not be lost to float error")
}

func TestAutoTickCount(t *testing.T) {
	assert.Equal(t, 10, AutoTickCount(400))
	assert.Equal(t, 5, AutoTickCount(200))
	assert.Equal(t, 2, AutoTickCount(40), "clamped low")
	assert.Equal(t, 10, AutoTickCount(10000), "clamped high")
}

func TestNiceRange(t *testing.T) {
	lo, hi := NiceRange(0.2, 9.7, 5)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)

	lo, hi = NiceRange(0, 10, 5)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi, "already-nice ranges are unchanged")
}

func TestNiceRangeZeroWidth(t *testing.T) {
	lo, hi := NiceRange(3, 3, 5)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)

	lo, hi = NiceRange(0.5, 0.5, 5)
	assert.InDelta(t, 0.4, lo, 1e-12)
	assert.InDelta(t, 0.6, hi, 1e-12)
}
