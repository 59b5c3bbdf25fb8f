package paint

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/paint/color"
)

// ImageData is an image ready for texture upload, either full color
// or single-channel font coverage.
type ImageData interface {
	// Size returns [width, height] in texels.
	Size() [2]int

	// BytesPerPixel of the upload format.
	BytesPerPixel() int

	// Format the renderer should use for the backing texture.
	Format() gputypes.TextureFormat
}

// ColorImage is a 2D RGBA image in sRGBA premultiplied format.
type ColorImage struct {
	// Width and height in texels.
	size [2]int

	// Pixels in row-major order, len = width*height.
	Pixels []color.Color32
}

// NewColorImage returns an image filled with a single color.
func NewColorImage(size [2]int, fill color.Color32) *ColorImage {
	pixels := make([]color.Color32, size[0]*size[1])
	if fill != (color.Color32{}) {
		for i := range pixels {
			pixels[i] = fill
		}
	}
	return &ColorImage{size: size, Pixels: pixels}
}

// ColorImageFromRGBAUnmultiplied interprets flat RGBA bytes (such as
// the output of image decoders) as unmultiplied sRGBA.
func ColorImageFromRGBAUnmultiplied(size [2]int, rgba []byte) *ColorImage {
	img := &ColorImage{size: size, Pixels: make([]color.Color32, size[0]*size[1])}
	for i := range img.Pixels {
		img.Pixels[i] = color.FromRGBAUnmultiplied(rgba[4*i], rgba[4*i+1], rgba[4*i+2], rgba[4*i+3])
	}
	return img
}

// Size returns [width, height] in texels.
func (im *ColorImage) Size() [2]int { return im.size }

// Width in texels.
func (im *ColorImage) Width() int { return im.size[0] }

// Height in texels.
func (im *ColorImage) Height() int { return im.size[1] }

// BytesPerPixel is 4: one byte per RGBA channel.
func (im *ColorImage) BytesPerPixel() int { return 4 }

// Format is 8-bit RGBA.
func (im *ColorImage) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// At returns the pixel at (x, y).
func (im *ColorImage) At(x, y int) color.Color32 {
	return im.Pixels[y*im.size[0]+x]
}

// Set writes the pixel at (x, y).
func (im *ColorImage) Set(x, y int, c color.Color32) {
	im.Pixels[y*im.size[0]+x] = c
}

// Region copies out a sub-rectangle.
func (im *ColorImage) Region(pos, size [2]int) *ColorImage {
	out := &ColorImage{size: size, Pixels: make([]color.Color32, 0, size[0]*size[1])}
	for y := pos[1]; y < pos[1]+size[1]; y++ {
		row := im.Pixels[y*im.size[0]+pos[0] : y*im.size[0]+pos[0]+size[0]]
		out.Pixels = append(out.Pixels, row...)
	}
	return out
}

// FontImage is an 8-bit-per-pixel image of glyph coverage, stored as
// float32 in [0, 1]. The tessellator multiplies coverage with the text
// color, so the image itself is colorless.
type FontImage struct {
	size [2]int

	// Pixels in row-major order; the alpha coverage of each texel.
	Pixels []float32
}

// NewFontImage returns a transparent coverage image.
func NewFontImage(size [2]int) *FontImage {
	return &FontImage{size: size, Pixels: make([]float32, size[0]*size[1])}
}

// Size returns [width, height] in texels.
func (im *FontImage) Size() [2]int { return im.size }

// Width in texels.
func (im *FontImage) Width() int { return im.size[0] }

// Height in texels.
func (im *FontImage) Height() int { return im.size[1] }

// BytesPerPixel is 4: coverage is uploaded as white RGBA.
func (im *FontImage) BytesPerPixel() int { return 4 }

// Format is 8-bit RGBA; coverage expands to premultiplied white.
func (im *FontImage) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// At returns the coverage at (x, y).
func (im *FontImage) At(x, y int) float32 {
	return im.Pixels[y*im.size[0]+x]
}

// Set writes the coverage at (x, y).
func (im *FontImage) Set(x, y int, coverage float32) {
	im.Pixels[y*im.size[0]+x] = coverage
}

// DefaultCoverageGamma is the contrast tweak applied when converting
// coverage to pixels. Chosen by eye; lower values make text bolder.
const DefaultCoverageGamma = 0.55

// SRGBAPixels converts coverage to premultiplied white sRGBA, the
// format the font texture is uploaded in, applying the given gamma
// (normally [DefaultCoverageGamma]).
func (im *FontImage) SRGBAPixels(gamma float32) []color.Color32 {
	out := make([]color.Color32, len(im.Pixels))
	for i, coverage := range im.Pixels {
		a := color.LinearU8FromLinearF32(powF32(coverage, gamma))
		out[i] = color.FromRGBAPremultiplied(a, a, a, a)
	}
	return out
}

// Region copies out a sub-rectangle.
func (im *FontImage) Region(pos, size [2]int) *FontImage {
	out := &FontImage{size: size, Pixels: make([]float32, 0, size[0]*size[1])}
	for y := pos[1]; y < pos[1]+size[1]; y++ {
		row := im.Pixels[y*im.size[0]+pos[0] : y*im.size[0]+pos[0]+size[0]]
		out.Pixels = append(out.Pixels, row...)
	}
	return out
}

// TextureFilter controls texture sampling.
type TextureFilter uint8

const (
	// TextureFilterNearest picks the closest texel. Sharp but blocky.
	TextureFilterNearest TextureFilter = iota
	// TextureFilterLinear blends nearby texels. Smooth.
	TextureFilterLinear
)

// TextureOptions say how a texture is sampled.
type TextureOptions struct {
	Magnification TextureFilter
	Minification  TextureFilter
}

// TextureOptionsLinear samples smoothly in both directions.
var TextureOptionsLinear = TextureOptions{
	Magnification: TextureFilterLinear,
	Minification:  TextureFilterLinear,
}

// TextureOptionsNearest samples sharply in both directions.
var TextureOptionsNearest = TextureOptions{
	Magnification: TextureFilterNearest,
	Minification:  TextureFilterNearest,
}

// ImageDelta describes a change to a texture: either the whole image
// or a sub-region update.
type ImageDelta struct {
	Image ImageData

	// Pos of the update region. Nil means the whole texture is
	// replaced, resizing it if needed.
	Pos *[2]int

	Options TextureOptions
}

// FullImageDelta replaces the whole texture.
func FullImageDelta(image ImageData, options TextureOptions) ImageDelta {
	return ImageDelta{Image: image, Options: options}
}

// PartialImageDelta updates a sub-region at pos.
func PartialImageDelta(pos [2]int, image ImageData, options TextureOptions) ImageDelta {
	p := pos
	return ImageDelta{Image: image, Pos: &p, Options: options}
}

// IsWhole reports whether the delta replaces the entire texture.
func (d *ImageDelta) IsWhole() bool { return d.Pos == nil }
