package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) = %v", err)
	}
	return source
}

func TestNewFontSourceEmpty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	_, err := NewFontSource([]byte("definitely not a font"))
	if err == nil {
		t.Fatal("NewFontSource(garbage) succeeded, want error")
	}
}

func TestFontSourceName(t *testing.T) {
	source := testSource(t)
	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
}

func TestFontSourceIDsUnique(t *testing.T) {
	a := testSource(t)
	b := testSource(t)
	if a.ID() == b.ID() {
		t.Errorf("two sources share ID %d", a.ID())
	}
}

func TestGlyphIndex(t *testing.T) {
	source := testSource(t)

	gid, err := source.GlyphIndex('A')
	if err != nil {
		t.Fatalf("GlyphIndex('A') = %v", err)
	}
	if gid == 0 {
		t.Error("GlyphIndex('A') = 0, want a real glyph")
	}

	if _, err := source.GlyphIndex('\U000E0042'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("GlyphIndex(tag char) error = %v, want ErrGlyphNotFound", err)
	}
}

func TestNumGlyphs(t *testing.T) {
	source := testSource(t)
	if n := source.NumGlyphs(); n <= 0 {
		t.Errorf("NumGlyphs() = %d, want > 0", n)
	}
}
