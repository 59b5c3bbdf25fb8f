// Package color provides the color representations used by the paint
// pipeline: Color32 (compact gamma-space sRGBA with premultiplied alpha),
// RGBA (linear-space floats for blending math) and HSVA (a user-facing
// editing representation).
//
// All blending must happen in linear space: convert a Color32 to RGBA
// first, operate, then convert back.
package color

import "math"

// linearFromGammaLUT maps a gamma-space sRGB byte to linear [0,1].
// Built once at startup; the analytic inverse in GammaU8FromLinearF32
// round-trips every entry exactly.
var linearFromGammaLUT [256]float32

func init() {
	for i := range linearFromGammaLUT {
		linearFromGammaLUT[i] = linearFromGamma(uint8(i))
	}
}

func linearFromGamma(s uint8) float32 {
	// sRGB transfer function, scaled to byte values.
	if s <= 10 {
		return float32(s) / 3294.6
	}
	return float32(math.Pow((float64(s)+14.025)/269.025, 2.4))
}

// LinearF32FromGammaU8 converts a gamma-space sRGB byte to linear [0,1].
func LinearF32FromGammaU8(s uint8) float32 {
	return linearFromGammaLUT[s]
}

// GammaU8FromLinearF32 converts a linear [0,1] value to a gamma-space
// sRGB byte. The inverse of LinearF32FromGammaU8 for all 256 byte values.
func GammaU8FromLinearF32(l float32) uint8 {
	switch {
	case l != l: // NaN
		return 0
	case l <= 0:
		return 0
	case l <= 0.0031308:
		return fastRound(3294.6 * l)
	case l <= 1:
		return fastRound(269.025*float32(math.Pow(float64(l), 1.0/2.4)) - 14.025)
	default:
		return 255
	}
}

// LinearF32FromLinearU8 converts a linear byte (e.g. alpha) to [0,1].
func LinearF32FromLinearU8(a uint8) float32 {
	return float32(a) / 255.0
}

// LinearU8FromLinearF32 converts a linear [0,1] value to a byte.
func LinearU8FromLinearF32(a float32) uint8 {
	return fastRound(a * 255.0)
}

// fastRound rounds to the nearest byte, saturating outside [0,255].
func fastRound(r float32) uint8 {
	if r >= 255 {
		return 255
	}
	if r <= 0 || r != r { // also catches NaN
		return 0
	}
	return uint8(r + 0.5)
}
