package color

import "fmt"

// Color32 is a space-efficient color: 0-255 gamma-space sRGBA with
// premultiplied alpha.
//
// "Premultiplied" means the color channels have already been multiplied
// with the alpha, so compositing is a single add instead of a lerp.
// An alpha of 0 with non-zero color channels encodes an additive color.
//
// All operations on Color32 happen in gamma space. That is not physically
// correct, but fast and often perceptually more even than linear space.
// For linear-space math, convert to RGBA first.
type Color32 struct {
	R, G, B, A uint8
}

// Mostly CSS names:
var (
	Transparent = Color32{}
	Black       = RGB(0, 0, 0)
	DarkGray    = RGB(96, 96, 96)
	Gray        = RGB(160, 160, 160)
	LightGray   = RGB(220, 220, 220)
	White       = RGB(255, 255, 255)

	Brown    = RGB(165, 42, 42)
	DarkRed  = RGB(0x8B, 0, 0)
	Red      = RGB(255, 0, 0)
	LightRed = RGB(255, 128, 128)

	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Yellow  = RGB(255, 255, 0)

	Orange      = RGB(255, 165, 0)
	LightYellow = RGB(255, 255, 0xE0)
	Khaki       = RGB(240, 230, 140)

	DarkGreen  = RGB(0, 0x64, 0)
	Green      = RGB(0, 255, 0)
	LightGreen = RGB(0x90, 0xEE, 0x90)

	DarkBlue  = RGB(0, 0, 0x8B)
	Blue      = RGB(0, 0, 255)
	LightBlue = RGB(0xAD, 0xD8, 0xE6)

	Purple = RGB(0x80, 0, 0x80)
	Gold   = RGB(255, 215, 0)
)

// DebugColor is a garish green used when painting debug overlays.
var DebugColor = Color32{R: 0, G: 200, B: 0, A: 128}

// RGB creates an opaque color (alpha 255).
func RGB(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 255}
}

// RGBAdditive creates an additive color: blending it brightens
// whatever is behind it.
func RGBAdditive(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 0}
}

// FromRGBAPremultiplied creates a color from sRGBA bytes that are
// already premultiplied with alpha.
func FromRGBAPremultiplied(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// FromRGBAUnmultiplied creates a color from "normal" sRGBA bytes with
// separate alpha, as found in color pickers and tables.
//
// ToUnmultiplied is the inverse, up to rounding; at alpha 0 the color
// channels are lost (the result is Transparent).
func FromRGBAUnmultiplied(r, g, b, a uint8) Color32 {
	switch a {
	case 0:
		return Transparent
	case 255:
		return RGB(r, g, b)
	default:
		la := LinearF32FromLinearU8(a)
		return Color32{
			R: fastRound(float32(r) * la),
			G: fastRound(float32(g) * la),
			B: fastRound(float32(b) * la),
			A: a,
		}
	}
}

// Gray32 creates an opaque gray.
func Gray32(l uint8) Color32 {
	return Color32{R: l, G: l, B: l, A: 255}
}

// BlackAlpha creates black with the given opacity.
func BlackAlpha(a uint8) Color32 {
	return Color32{A: a}
}

// WhiteAlpha creates white with the given opacity (premultiplied).
func WhiteAlpha(a uint8) Color32 {
	return Color32{R: a, G: a, B: a, A: a}
}

// AdditiveLuminance creates additive white of the given intensity.
func AdditiveLuminance(l uint8) Color32 {
	return Color32{R: l, G: l, B: l, A: 0}
}

// String prints the premultiplied channels as hex.
func (c Color32) String() string {
	return fmt.Sprintf("#%02X_%02X_%02X_%02X", c.R, c.G, c.B, c.A)
}

// IsOpaque reports whether alpha is 255.
func (c Color32) IsOpaque() bool {
	return c.A == 255
}

// IsAdditive reports whether alpha is 0, the additive-blending encoding.
func (c Color32) IsAdditive() bool {
	return c.A == 0
}

// Additive returns the color with alpha forced to 0, making it additive.
func (c Color32) Additive() Color32 {
	c.A = 0
	return c
}

// ToOpaque returns a fully opaque version of the color.
func (c Color32) ToOpaque() Color32 {
	return RGBAFromColor32(c).ToOpaque().ToColor32()
}

// Array returns the premultiplied channels.
func (c Color32) Array() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// ToUnmultiplied converts to "normal" RGBA bytes with separate alpha.
//
// The inverse of FromRGBAUnmultiplied, except that rounding may change
// transparent colors slightly, and colors with alpha 0 come back as stored
// (additive colors keep their channels; transparent black stays black).
func (c Color32) ToUnmultiplied() [4]uint8 {
	switch c.A {
	case 0, 255:
		return c.Array()
	default:
		factor := 255.0 / float32(c.A)
		return [4]uint8{
			fastRound(factor * float32(c.R)),
			fastRound(factor * float32(c.G)),
			fastRound(factor * float32(c.B)),
			c.A,
		}
	}
}

// GammaMultiply scales all channels by factor in gamma space.
// Multiply by 0.5 to make a color half as opaque, perceptually.
func (c Color32) GammaMultiply(factor float32) Color32 {
	return Color32{
		R: uint8(float32(c.R)*factor + 0.5),
		G: uint8(float32(c.G)*factor + 0.5),
		B: uint8(float32(c.B)*factor + 0.5),
		A: uint8(float32(c.A)*factor + 0.5),
	}
}

// GammaMultiplyU8 scales all channels by factor/255 in gamma space.
func (c Color32) GammaMultiplyU8(factor uint8) Color32 {
	f := uint32(factor)
	return Color32{
		R: uint8((uint32(c.R)*f + 127) / 255),
		G: uint8((uint32(c.G)*f + 127) / 255),
		B: uint8((uint32(c.B)*f + 127) / 255),
		A: uint8((uint32(c.A)*f + 127) / 255),
	}
}

// LinearMultiply scales opacity by factor in linear space.
// You likely want GammaMultiply instead; it is perceptually more even.
func (c Color32) LinearMultiply(factor float32) Color32 {
	return RGBAFromColor32(c).Multiply(factor).ToColor32()
}

// LerpToGamma interpolates towards other by t in gamma space.
func (c Color32) LerpToGamma(other Color32, t float32) Color32 {
	lerpByte := func(a, b uint8) uint8 {
		return fastRound((1-t)*float32(a) + t*float32(b))
	}
	return Color32{
		R: lerpByte(c.R, other.R),
		G: lerpByte(c.G, other.G),
		B: lerpByte(c.B, other.B),
		A: lerpByte(c.A, other.A),
	}
}

// Blend composites onTop over c in gamma space.
// Gamma-space blending is the de-facto standard in browsers and image
// editors, so it is what users expect.
func (c Color32) Blend(onTop Color32) Color32 {
	return c.GammaMultiplyU8(255 - onTop.A).Add(onTop)
}

// Add returns the saturating component-wise sum.
func (c Color32) Add(o Color32) Color32 {
	return Color32{
		R: satAddU8(c.R, o.R),
		G: satAddU8(c.G, o.G),
		B: satAddU8(c.B, o.B),
		A: satAddU8(c.A, o.A),
	}
}

// Mul returns the component-wise product in gamma space.
func (c Color32) Mul(o Color32) Color32 {
	return Color32{
		R: fastRound(float32(c.R) * float32(o.R) / 255.0),
		G: fastRound(float32(c.G) * float32(o.G) / 255.0),
		B: fastRound(float32(c.B) * float32(o.B) / 255.0),
		A: fastRound(float32(c.A) * float32(o.A) / 255.0),
	}
}

// Intensity returns the perceptual brightness in [0,1].
func (c Color32) Intensity() float32 {
	return (float32(c.R)*0.299 + float32(c.G)*0.587 + float32(c.B)*0.114) / 255.0
}

func satAddU8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
