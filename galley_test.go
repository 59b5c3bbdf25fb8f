package paint

import (
	"testing"

	"github.com/gogpu/paint/geom"
)

func TestGalleyCounts(t *testing.T) {
	empty := &Galley{Rows: []Row{{}, {}}}
	if !empty.IsEmpty() {
		t.Error("galley with glyphless rows should be empty")
	}
	if empty.NumGlyphs() != 0 {
		t.Errorf("NumGlyphs = %d", empty.NumGlyphs())
	}

	g := &Galley{Rows: []Row{
		{Glyphs: make([]Glyph, 3)},
		{},
		{Glyphs: make([]Glyph, 2)},
	}}
	if g.IsEmpty() {
		t.Error("IsEmpty with 5 glyphs")
	}
	if g.NumGlyphs() != 5 {
		t.Errorf("NumGlyphs = %d, want 5", g.NumGlyphs())
	}
}

func TestGlyphRect(t *testing.T) {
	glyph := Glyph{Pos: geom.P2(10, 20), Size: geom.V2(6, 12)}
	got := glyph.Rect()
	want := geom.RectFromMinMax(geom.P2(10, 20), geom.P2(16, 32))
	if got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}
