package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/geom"
)

// glyphKey identifies one rasterized glyph in the cache.
// The ppem is the pixel size in 26.6 fixed point, so fractional sizes
// do not collide.
type glyphKey struct {
	font uint64
	gid  uint16
	ppem fixed.Int26_6
}

// glyphInfo is a rasterized glyph: where it sits in the atlas and how
// its quad relates to the pen position, all in logical points except
// the texel UV rect.
type glyphInfo struct {
	uv     geom.Rect
	offset geom.Vec2
	size   geom.Vec2
}

func (i glyphInfo) visible() bool {
	return i.size.X > 0 && i.size.Y > 0
}

func (f *Fonts) glyphLocked(source *FontSource, gid uint16, size float32) glyphInfo {
	ppem := fixed.Int26_6(size * f.pixelsPerPoint * 64)
	key := glyphKey{font: source.id, gid: gid, ppem: ppem}
	if info, ok := f.cache[key]; ok {
		return info
	}
	info := f.rasterizeLocked(source, gid, ppem)
	f.cache[key] = info
	return info
}

// rasterizeLocked renders one glyph outline into the atlas.
// Blank glyphs (spaces, lookup failures) yield a zero info; the layout
// still advances the pen for them.
func (f *Fonts) rasterizeLocked(source *FontSource, gid uint16, ppem fixed.Int26_6) glyphInfo {
	segments, err := source.outline.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil || len(segments) == 0 {
		return glyphInfo{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		for _, arg := range seg.Args[:segmentArgs(seg.Op)] {
			x := float64(arg.X) / 64
			y := float64(arg.Y) / 64
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}

	left := int(math.Floor(minX))
	top := int(math.Floor(minY))
	w := int(math.Ceil(maxX)) - left
	h := int(math.Ceil(maxY)) - top
	if w <= 0 || h <= 0 {
		return glyphInfo{}
	}

	var ras vector.Rasterizer
	ras.Reset(w, h)
	dx, dy := float32(-left), float32(-top)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ras.MoveTo(f26ToF32(seg.Args[0].X)+dx, f26ToF32(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpLineTo:
			ras.LineTo(f26ToF32(seg.Args[0].X)+dx, f26ToF32(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			ras.QuadTo(
				f26ToF32(seg.Args[0].X)+dx, f26ToF32(seg.Args[0].Y)+dy,
				f26ToF32(seg.Args[1].X)+dx, f26ToF32(seg.Args[1].Y)+dy,
			)
		case sfnt.SegmentOpCubeTo:
			ras.CubeTo(
				f26ToF32(seg.Args[0].X)+dx, f26ToF32(seg.Args[0].Y)+dy,
				f26ToF32(seg.Args[1].X)+dx, f26ToF32(seg.Args[1].Y)+dy,
				f26ToF32(seg.Args[2].X)+dx, f26ToF32(seg.Args[2].Y)+dy,
			)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	pos, img, err := f.atlas.Allocate(w, h)
	if err != nil {
		paint.Logger().Warn("font atlas cannot fit glyph; dropped",
			"gid", gid, "width", w, "height", h)
		return glyphInfo{}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(pos[0]+x, pos[1]+y, float32(mask.AlphaAt(x, y).A)/255)
		}
	}

	ppp := f.pixelsPerPoint
	return glyphInfo{
		uv: geom.RectFromMinMax(
			geom.P2(float32(pos[0]), float32(pos[1])),
			geom.P2(float32(pos[0]+w), float32(pos[1]+h)),
		),
		offset: geom.V2(float32(left)/ppp, float32(top)/ppp),
		size:   geom.V2(float32(w)/ppp, float32(h)/ppp),
	}
}

func segmentArgs(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

func f26ToF32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func roundF32(x float32) float32 {
	return float32(math.Round(float64(x)))
}
