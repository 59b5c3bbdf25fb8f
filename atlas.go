package paint

import (
	"errors"
	"math"

	"github.com/gogpu/paint/geom"
)

// ErrAtlasFull is returned when a requested rectangle cannot fit in
// the texture atlas. Callers substitute a fallback: skip the glyph, or
// tessellate a circle geometrically instead of sampling a disc.
var ErrAtlasFull = errors.New("paint: texture atlas is full")

// discCutoffFactor balances small circles becoming too blurry against
// too sharp when picking a prerasterized disc (2^0.25).
const discCutoffFactor = 1.1892071

// largestDiscRadius is the biggest prerasterized disc, in texels.
const largestDiscRadius = 64.0

// rectU is an integer texel rectangle, min inclusive, max exclusive.
type rectU struct {
	minX, minY, maxX, maxY int
}

var (
	rectUNothing    = rectU{minX: math.MaxInt, minY: math.MaxInt}
	rectUEverything = rectU{maxX: math.MaxInt, maxY: math.MaxInt}
)

// PreparedDisc is a pre-rasterized filled circle somewhere in the
// texture atlas. Small circles sample one of these instead of being
// tessellated, which is both cheaper and smoother.
type PreparedDisc struct {
	// R is the radius of the disc in texels.
	R float32

	// W is the width of the disc quad in texels.
	W float32

	// UV is where in the atlas the disc is, normalized to [0, 1].
	UV geom.Rect
}

// prerasterizedDisc is the internal form with texel coordinates.
type prerasterizedDisc struct {
	r  float32
	uv rectU
}

// TextureAtlas packs glyph coverage bitmaps and a fixed set of
// prerasterized discs into one shared texture using shelf bump
// allocation. Nothing is ever repacked or evicted; when the atlas
// runs out of room it keeps allocating over old content near the
// bottom and reports the overflow through [TextureAtlas.FillRatio].
//
// Not safe for concurrent use; callers that share an atlas across
// goroutines must serialize access externally.
type TextureAtlas struct {
	image *FontImage

	// dirty tracks the region changed since the last TakeDelta.
	dirty rectU

	// cursor is the shelf allocation point.
	cursorX, cursorY int
	rowHeight        int

	// overflowed is set when more space was requested than available.
	overflowed bool

	discs []prerasterizedDisc
}

// NewTextureAtlas creates an atlas of the given size, with the white
// pixel at (0, 0) and the prerasterized discs already allocated.
// The width should be the maximum texture side the GPU supports;
// it must be at least 1024.
func NewTextureAtlas(size [2]int) *TextureAtlas {
	if size[0] < 1024 {
		Logger().Warn("tiny texture atlas", "width", size[0])
		size[0] = 1024
	}
	// Growth doubles the height, so it must start positive.
	if size[1] < 1 {
		Logger().Warn("tiny texture atlas", "height", size[1])
		size[1] = 1
	}
	atlas := &TextureAtlas{
		image: NewFontImage(size),
		dirty: rectUEverything,
	}

	// Top left pixel is fully white so untextured geometry can point
	// its UVs at WhiteUV.
	pos, image, err := atlas.Allocate(1, 1)
	if err != nil || pos != [2]int{0, 0} {
		Logger().Warn("atlas white pixel not at origin", "pos", pos)
	}
	image.Set(0, 0, 1.0)

	// A series of anti-aliased discs of radii 2^(i/2 - 1), used to
	// render small filled circles.
	for i := 0; ; i++ {
		r := float32(math.Pow(2, float64(i)/2-1))
		if r > largestDiscRadius {
			break
		}
		hw := int(math.Ceil(float64(r) + 0.5))
		w := 2*hw + 1
		pos, image, err := atlas.Allocate(w, w)
		if err != nil {
			Logger().Warn("atlas too small for prerasterized discs", "radius", r)
			break
		}
		x, y := pos[0], pos[1]
		for dx := -hw; dx <= hw; dx++ {
			for dy := -hw; dy <= hw; dy++ {
				distanceToCenter := float32(math.Sqrt(float64(dx*dx + dy*dy)))
				coverage := geom.RemapClamp(distanceToCenter, r-0.5, r+0.5, 1, 0)
				image.Set(x+hw+dx, y+hw+dy, coverage)
			}
		}
		atlas.discs = append(atlas.discs, prerasterizedDisc{
			r:  r,
			uv: rectU{minX: x, minY: y, maxX: x + w, maxY: y + w},
		})
	}

	return atlas
}

// Size returns [width, height] of the atlas in texels.
func (a *TextureAtlas) Size() [2]int {
	return a.image.Size()
}

// PreparedDiscs returns the prerasterized discs with normalized UV
// rectangles, sorted by increasing radius.
func (a *TextureAtlas) PreparedDiscs() []PreparedDisc {
	size := a.Size()
	invW := 1 / float32(size[0])
	invH := 1 / float32(size[1])
	out := make([]PreparedDisc, 0, len(a.discs))
	for _, disc := range a.discs {
		out = append(out, PreparedDisc{
			R: disc.r,
			W: float32(disc.uv.maxX - disc.uv.minX),
			UV: geom.RectFromMinMax(
				geom.P2(float32(disc.uv.minX)*invW, float32(disc.uv.minY)*invH),
				geom.P2(float32(disc.uv.maxX)*invW, float32(disc.uv.maxY)*invH),
			),
		})
	}
	return out
}

// maxHeight the atlas may grow to. The initial width is presumed to
// be the maximum texture side size.
func (a *TextureAtlas) maxHeight() int {
	return a.image.Width()
}

// FillRatio of the atlas. When this gets close to 1 it is time to
// clear the atlas and start over.
func (a *TextureAtlas) FillRatio() float32 {
	if a.overflowed {
		return 1
	}
	return float32(a.cursorY+a.rowHeight) / float32(a.maxHeight())
}

// TakeDelta returns the changes to the atlas image since the last
// call, or nil if nothing changed.
func (a *TextureAtlas) TakeDelta() *ImageDelta {
	dirty := a.dirty
	a.dirty = rectUNothing

	switch dirty {
	case rectUNothing:
		return nil
	case rectUEverything:
		d := FullImageDelta(a.image, TextureOptionsLinear)
		return &d
	default:
		pos := [2]int{dirty.minX, dirty.minY}
		size := [2]int{dirty.maxX - dirty.minX, dirty.maxY - dirty.minY}
		d := PartialImageDelta(pos, a.image.Region(pos, size), TextureOptionsLinear)
		return &d
	}
}

// Allocate reserves a w by h texel rectangle and returns its position
// together with the backing image to draw into. The region is marked
// dirty. Fails with [ErrAtlasFull] when the request is wider than the
// atlas itself.
func (a *TextureAtlas) Allocate(w, h int) ([2]int, *FontImage, error) {
	// Some low-precision GPUs muddle up adjacent characters unless
	// there is a padding texel between them.
	const padding = 1

	if w > a.image.Width() {
		return [2]int{}, nil, ErrAtlasFull
	}
	if a.cursorX+w > a.image.Width() {
		// New row:
		a.cursorX = 0
		a.cursorY += a.rowHeight + padding
		a.rowHeight = 0
	}

	if h > a.rowHeight {
		a.rowHeight = h
	}
	requiredHeight := a.cursorY + a.rowHeight

	if requiredHeight > a.maxHeight() {
		// Out of space: restart a bit down from the top, overwriting
		// old glyphs. The top of the atlas holds the white pixel and
		// the discs, so skip past it.
		Logger().Warn("texture atlas overflowed; reallocate it to fix glyph corruption")
		a.cursorX = 0
		a.cursorY = a.image.Height() / 3
		a.overflowed = true
	} else if a.growToHeight(requiredHeight) {
		a.dirty = rectUEverything
	}

	pos := [2]int{a.cursorX, a.cursorY}
	a.cursorX += w + padding

	a.dirty.minX = minInt(a.dirty.minX, pos[0])
	a.dirty.minY = minInt(a.dirty.minY, pos[1])
	a.dirty.maxX = maxInt(a.dirty.maxX, pos[0]+w)
	a.dirty.maxY = maxInt(a.dirty.maxY, pos[1]+h)

	return pos, a.image, nil
}

// growToHeight doubles the image height until requiredHeight fits.
// Reports whether the image was reallocated.
func (a *TextureAtlas) growToHeight(requiredHeight int) bool {
	for requiredHeight >= a.image.Height() {
		a.image.size[1] *= 2
	}
	if a.image.Width()*a.image.Height() > len(a.image.Pixels) {
		grown := make([]float32, a.image.Width()*a.image.Height())
		copy(grown, a.image.Pixels)
		a.image.Pixels = grown
		return true
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func powF32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
