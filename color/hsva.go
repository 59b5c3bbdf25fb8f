package color

import "math"

// HSVA is hue, saturation, value and alpha, all in [0,1], with
// unmultiplied alpha. A negative alpha signifies an additive color
// (the magnitude of the alpha is then ignored).
//
// This is the representation used when editing colors, since the
// channels map to perceptual knobs.
type HSVA struct {
	H, S, V, A float32
}

// NewHSVA bundles the four channels.
func NewHSVA(h, s, v, a float32) HSVA {
	return HSVA{H: h, S: s, V: v, A: a}
}

// HSVAFromColor32 converts from gamma-space premultiplied bytes.
func HSVAFromColor32(c Color32) HSVA {
	return HSVAFromRGBA(RGBAFromColor32(c))
}

// HSVAFromRGBA converts from a linear premultiplied color.
func HSVAFromRGBA(c RGBA) HSVA {
	return HSVAFromRGBAPremultiplied(c.R, c.G, c.B, c.A)
}

// HSVAFromRGBAPremultiplied converts from linear premultiplied channels.
//
// Alpha 0 is ambiguous: all-zero channels give the default (transparent
// black) HSVA, anything else is treated as an additive color, since a
// premultiplied color with zero alpha and non-zero channels cannot
// represent a normal translucent color.
func HSVAFromRGBAPremultiplied(r, g, b, a float32) HSVA {
	if a == 0 {
		if r == 0 && g == 0 && b == 0 {
			return HSVA{}
		}
		return HSVAFromAdditiveRGB(r, g, b)
	}
	h, s, v := hsvFromRGB(r/a, g/a, b/a)
	return HSVA{H: h, S: s, V: v, A: a}
}

// HSVAFromRGBAUnmultiplied converts from linear channels with separate alpha.
func HSVAFromRGBAUnmultiplied(r, g, b, a float32) HSVA {
	h, s, v := hsvFromRGB(r, g, b)
	return HSVA{H: h, S: s, V: v, A: a}
}

// HSVAFromAdditiveRGB converts linear channels into an additive color.
func HSVAFromAdditiveRGB(r, g, b float32) HSVA {
	h, s, v := hsvFromRGB(r, g, b)
	return HSVA{H: h, S: s, V: v, A: -0.5} // anything negative is additive
}

// HSVAFromRGB converts opaque linear channels.
func HSVAFromRGB(r, g, b float32) HSVA {
	h, s, v := hsvFromRGB(r, g, b)
	return HSVA{H: h, S: s, V: v, A: 1}
}

// HSVAFromSRGB converts opaque gamma-space bytes.
func HSVAFromSRGB(r, g, b uint8) HSVA {
	return HSVAFromRGB(
		LinearF32FromGammaU8(r),
		LinearF32FromGammaU8(g),
		LinearF32FromGammaU8(b),
	)
}

// ToOpaque returns the color with full alpha.
func (c HSVA) ToOpaque() HSVA {
	c.A = 1
	return c
}

// IsAdditive reports whether the color blends additively.
func (c HSVA) IsAdditive() bool {
	return c.A < 0
}

// ToRGB returns the opaque linear channels.
func (c HSVA) ToRGB() [3]float32 {
	r, g, b := rgbFromHSV(c.H, c.S, c.V)
	return [3]float32{r, g, b}
}

// ToSRGB returns the opaque gamma-space bytes.
func (c HSVA) ToSRGB() [3]uint8 {
	rgb := c.ToRGB()
	return [3]uint8{
		GammaU8FromLinearF32(rgb[0]),
		GammaU8FromLinearF32(rgb[1]),
		GammaU8FromLinearF32(rgb[2]),
	}
}

// ToRGBAPremultiplied returns linear premultiplied channels.
// Additive colors keep their channels and get premultiplied alpha
// exactly 0.
func (c HSVA) ToRGBAPremultiplied() [4]float32 {
	u := c.ToRGBAUnmultiplied()
	if c.A < 0 {
		return [4]float32{u[0], u[1], u[2], 0}
	}
	return [4]float32{u[3] * u[0], u[3] * u[1], u[3] * u[2], u[3]}
}

// ToRGBAUnmultiplied returns linear channels with separate alpha.
// Additive colors are represented with a negative alpha.
func (c HSVA) ToRGBAUnmultiplied() [4]float32 {
	r, g, b := rgbFromHSV(c.H, c.S, c.V)
	return [4]float32{r, g, b, c.A}
}

// ToRGBA converts to a linear premultiplied color.
func (c HSVA) ToRGBA() RGBA {
	p := c.ToRGBAPremultiplied()
	return RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// ToColor32 converts to gamma-space premultiplied bytes.
func (c HSVA) ToColor32() Color32 {
	return c.ToRGBA().ToColor32()
}

// hsvFromRGB converts linear [0,1] channels to hue/saturation/value.
// When all channels are equal the hue is undefined and reported as 0.
func hsvFromRGB(r, g, b float32) (h, s, v float32) {
	minC := min(r, min(g, b))
	maxC := max(r, max(g, b)) // value

	rng := maxC - minC

	switch {
	case maxC == minC:
		h = 0 // achromatic
	case maxC == r:
		h = (g - b) / (6 * rng)
	case maxC == g:
		h = (b-r)/(6*rng) + 1.0/3.0
	default: // maxC == b
		h = (r-g)/(6*rng) + 2.0/3.0
	}
	h = fract(h + 1) // wrap into [0,1)

	if maxC == 0 {
		s = 0
	} else {
		s = 1 - minC/maxC
	}
	return h, s, maxC
}

// rgbFromHSV converts hue/saturation/value to linear [0,1] channels.
// Hue wraps into [0,1); saturation is clamped to [0,1]; value is
// intentionally not clamped so additive/HDR colors survive.
func rgbFromHSV(h, s, v float32) (r, g, b float32) {
	h = fract(fract(h) + 1) // wrap
	s = min(max(s, 0), 1)

	f := h*6 - float32(math.Floor(float64(h*6)))
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(math.Floor(float64(h*6))) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func fract(f float32) float32 {
	return f - float32(math.Floor(float64(f)))
}
