package gamepad

import "math"

// NormalizeAxis maps a raw reading in [min, max] onto the unit range.
// Bipolar ranges (min < 0) map to [-1, 1]; unipolar ones such as analog
// triggers reporting 0..255 map to [0, 1].
func NormalizeAxis(raw, min, max int32) float64 {
	if max <= min {
		return 0
	}
	span := float64(max) - float64(min)
	pos := float64(raw) - float64(min)

	lo, v := -1.0, 2*pos/span-1
	if min >= 0 {
		lo, v = 0, pos/span
	}
	return math.Max(lo, math.Min(1, v))
}
