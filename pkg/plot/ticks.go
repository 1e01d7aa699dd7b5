package plot

import "math"

// TickStep picks a clean step size (1, 2, 2.5, 5 or 10 times a power of
// ten) for roughly targetTicks divisions of [min, max].
func TickStep(min, max float64, targetTicks int) float64 {
	raw := (max - min) / float64(targetTicks)
	magnitude := math.Pow(10, math.Floor(math.Log10(math.Abs(raw))))
	residual := raw / magnitude

	var nice float64
	switch {
	case residual < 1.5:
		nice = 1.0
	case residual < 2.25:
		nice = 2.0
	case residual < 3.5:
		nice = 2.5
	case residual < 7.5:
		nice = 5.0
	default:
		nice = 10.0
	}
	return nice * magnitude
}

// GenerateTicks returns nicely-spaced tick values inside [min, max].
func GenerateTicks(min, max float64, targetTicks int) []float64 {
	step := TickStep(min, max, targetTicks)
	start := math.Ceil(min/step) * step
	end := math.Floor(max/step) * step

	var ticks []float64
	for tick := start; tick <= end+1e-8; tick += step {
		// Round to avoid float spam in labels.
		ticks = append(ticks, math.Round(tick*1e6)/1e6)
	}
	return ticks
}

// AutoTickCount estimates a good tick count for an axis of the given pixel
// length, aiming for ~40px between ticks.
func AutoTickCount(axisPixels float64) int {
	count := int(math.Round(axisPixels / 40.0))
	return min(max(count, 2), 10)
}

// NiceRange widens [dataMin, dataMax] to tick-step boundaries so the data
// always fits inside the axis. A zero-width range is padded to keep the
// axis drawable.
func NiceRange(dataMin, dataMax float64, targetTicks int) (float64, float64) {
	if dataMin == dataMax {
		delta := 0.1
		if math.Abs(dataMin) > 1.0 {
			delta = 1.0
		}
		return dataMin - delta, dataMax + delta
	}
	step := TickStep(dataMin, dataMax, targetTicks)
	return math.Floor(dataMin/step) * step, math.Ceil(dataMax/step) * step
}
