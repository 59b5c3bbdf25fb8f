package color

import (
	"encoding/binary"
	"math"
)

// RGBA is a linear-space color with premultiplied alpha, stored as four
// 32-bit floats. Values are conceptually in [0,1] but are not clamped,
// so HDR and additive intermediates are representable.
//
// An alpha of 0 encodes an additive color. Constructors accept a negative
// alpha as an explicit "additive" request and normalize it to exactly 0.
type RGBA struct {
	R, G, B, A float32
}

var (
	RGBATransparent = RGBA{}
	RGBABlack       = RGBA{A: 1}
	RGBAWhite       = RGBA{R: 1, G: 1, B: 1, A: 1}
	RGBARed         = RGBA{R: 1, A: 1}
	RGBAGreen       = RGBA{G: 1, A: 1}
	RGBABlue        = RGBA{B: 1, A: 1}
)

// RGBAPremultiplied creates a color from already-premultiplied linear
// channels. A negative alpha marks the color additive (alpha becomes 0).
func RGBAPremultiplied(r, g, b, a float32) RGBA {
	if a < 0 {
		a = 0
	}
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGBAUnmultiplied creates a color from linear channels with separate
// alpha, premultiplying them. A negative alpha marks the color additive:
// the channels are kept as-is and alpha becomes exactly 0.
func RGBAUnmultiplied(r, g, b, a float32) RGBA {
	if a < 0 {
		return RGBA{R: r, G: g, B: b, A: 0}
	}
	return RGBA{R: r * a, G: g * a, B: b * a, A: a}
}

// RGBAFromGray creates an opaque linear gray.
func RGBAFromGray(l float32) RGBA {
	return RGBA{R: l, G: l, B: l, A: 1}
}

// RGBAFromLuminanceAlpha creates a premultiplied translucent gray.
func RGBAFromLuminanceAlpha(l, a float32) RGBA {
	return RGBA{R: l * a, G: l * a, B: l * a, A: a}
}

// RGBAFromColor32 converts from gamma-space premultiplied bytes.
func RGBAFromColor32(c Color32) RGBA {
	return RGBA{
		R: LinearF32FromGammaU8(c.R),
		G: LinearF32FromGammaU8(c.G),
		B: LinearF32FromGammaU8(c.B),
		A: LinearF32FromLinearU8(c.A),
	}
}

// ToColor32 converts to gamma-space premultiplied bytes.
func (c RGBA) ToColor32() Color32 {
	return Color32{
		R: GammaU8FromLinearF32(c.R),
		G: GammaU8FromLinearF32(c.G),
		B: GammaU8FromLinearF32(c.B),
		A: LinearU8FromLinearF32(c.A),
	}
}

// IsAdditive reports whether the color blends additively (alpha 0).
func (c RGBA) IsAdditive() bool {
	return c.A == 0
}

// Additive returns the color with alpha forced to 0.
func (c RGBA) Additive() RGBA {
	c.A = 0
	return c
}

// Multiply scales all channels, e.g. by 0.5 to make the color half
// as opaque in linear space.
func (c RGBA) Multiply(factor float32) RGBA {
	return RGBA{R: c.R * factor, G: c.G * factor, B: c.B * factor, A: c.A * factor}
}

// Add returns the component-wise sum.
func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Mul returns the component-wise product.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Blend composites onTop over c in linear space.
func (c RGBA) Blend(onTop RGBA) RGBA {
	return c.Multiply(1 - onTop.A).Add(onTop)
}

// Intensity returns how perceptually bright the color is.
func (c RGBA) Intensity() float32 {
	return 0.3*c.R + 0.59*c.G + 0.11*c.B
}

// ToOpaque returns an opaque version of the color, un-multiplying the
// alpha. Additive and fully transparent colors keep their channels.
func (c RGBA) ToOpaque() RGBA {
	if c.A == 0 {
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: 1}
}

// ToUnmultiplied returns channels with the alpha divided back out.
//
// For alpha 0 (additive or fully transparent) the stored channels are
// returned unchanged: the original unmultiplied color is unrecoverable,
// and fully transparent colors unmultiply to black.
func (c RGBA) ToUnmultiplied() [4]float32 {
	if c.A == 0 {
		return [4]float32{c.R, c.G, c.B, 0}
	}
	return [4]float32{c.R / c.A, c.G / c.A, c.B / c.A, c.A}
}

// Equal reports semantic equality: all NaN payloads compare equal,
// and the sign of zero is ignored. This matches Hash64, so RGBA values
// can be deduplicated via (Hash64, Equal) pairs.
func (c RGBA) Equal(o RGBA) bool {
	eq := func(a, b float32) bool {
		if a != a && b != b { // both NaN
			return true
		}
		return a == b // ±0 already compare equal
	}
	return eq(c.R, o.R) && eq(c.G, o.G) && eq(c.B, o.B) && eq(c.A, o.A)
}

// Hash64 returns a deterministic hash consistent with Equal:
// all NaNs hash alike and ±0 hash alike.
func (c RGBA) Hash64() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	var buf [4]byte
	for _, f := range [4]float32{c.R, c.G, c.B, c.A} {
		switch {
		case f == 0:
			binary.LittleEndian.PutUint32(buf[:], 0)
		case f != f:
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(math.NaN())))
		default:
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		}
		for _, b := range buf {
			h ^= uint64(b)
			h *= prime64
		}
	}
	return h
}
