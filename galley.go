package paint

import (
	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// Glyph is one positioned glyph quad within a galley.
// Positions are in logical points relative to the galley origin;
// UV coordinates are texel offsets into the font atlas, normalized
// only at tessellation time.
type Glyph struct {
	// Chr is the character this glyph was shaped from.
	Chr rune

	// Pos is the top left corner of the glyph quad.
	Pos geom.Pos2

	// Size of the glyph quad in points.
	Size geom.Vec2

	// UV is the source rectangle in the font atlas, in texels.
	UV geom.Rect

	// Color may be the placeholder, resolved against the text
	// shape's fallback color when tessellated.
	Color color.PaintColor
}

// Rect returns the glyph quad relative to the galley origin.
func (g *Glyph) Rect() geom.Rect {
	return geom.RectFromMinSize(g.Pos, g.Size)
}

// Row is one laid-out line of text within a galley.
type Row struct {
	Glyphs []Glyph

	// Rect bounds the row relative to the galley origin.
	Rect geom.Rect

	// EndsWithNewline distinguishes explicit line breaks from wraps.
	EndsWithNewline bool
}

// Galley is a block of text that has been shaped and positioned,
// ready to paint. Produced by the text subpackage, consumed by the
// tessellator as a sequence of glyph quads.
type Galley struct {
	// Text is the source string, retained for hit testing and debugging.
	Text string

	Rows []Row

	// Rect bounds all rows, with the galley origin at (0, 0).
	Rect geom.Rect

	// PixelsPerPoint used during layout. Glyph quads are aligned to
	// this pixel grid; painting at another scale will blur them.
	PixelsPerPoint float32
}

// IsEmpty reports whether the galley has no glyphs.
func (g *Galley) IsEmpty() bool {
	for _, row := range g.Rows {
		if len(row.Glyphs) > 0 {
			return false
		}
	}
	return true
}

// NumGlyphs counts the glyph quads across all rows.
func (g *Galley) NumGlyphs() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row.Glyphs)
	}
	return n
}
