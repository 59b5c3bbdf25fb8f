package geom

import "math"

// guiRounding is the resolution used by RoundUI: 1/32 of a logical point.
// A power of two so that rounded values are exactly representable,
// which makes RoundUI idempotent.
const guiRounding = 32.0

// Lerp linearly interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float32) float32 {
	return (1-t)*a + t*b
}

// Remap maps x from the range [fromMin, fromMax] to [toMin, toMax]
// without clamping.
func Remap(x, fromMin, fromMax, toMin, toMax float32) float32 {
	t := (x - fromMin) / (fromMax - fromMin)
	return Lerp(toMin, toMax, t)
}

// RemapClamp maps x from [fromMin, fromMax] to [toMin, toMax],
// clamping the result to the target range.
func RemapClamp(x, fromMin, fromMax, toMin, toMax float32) float32 {
	if fromMax < fromMin {
		return RemapClamp(x, fromMax, fromMin, toMax, toMin)
	}
	if x <= fromMin {
		return toMin
	}
	if x >= fromMax {
		return toMax
	}
	t := (x - fromMin) / (fromMax - fromMin)
	// Handle fromMin == fromMax:
	if t < 1 {
		return Lerp(toMin, toMax, t)
	}
	return toMax
}

// RoundUI rounds a coordinate to the resolution used for GUI layout,
// removing accumulated floating point noise. Rounding lands on an exact
// binary fraction, so RoundUI(RoundUI(x)) == RoundUI(x) for all finite x.
func RoundUI(x float32) float32 {
	r := math.Round(float64(x)*guiRounding) / guiRounding
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return x
	}
	return float32(r)
}

// RoundUI64 is RoundUI for float64 coordinates.
func RoundUI64(x float64) float64 {
	r := math.Round(x*guiRounding) / guiRounding
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return x
	}
	return r
}
