package text

import (
	"bytes"
	"fmt"
	"os"
	"sync/atomic"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

var nextSourceID atomic.Uint64

// FontSource is a loaded font file. It is parsed twice on creation:
// once with x/image sfnt for outlines and metrics, once with
// go-text/typesetting for shaping. A FontSource is heavyweight and
// meant to be shared; it is read-only after creation and safe for
// concurrent use.
type FontSource struct {
	id      uint64
	data    []byte
	outline *sfnt.Font
	shaping *gtfont.Font
	name    string
}

// NewFontSource parses TTF or OTF font data.
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outline, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}
	shapingFace, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}

	s := &FontSource{
		id:      nextSourceID.Add(1),
		data:    dataCopy,
		outline: outline,
		shaping: shapingFace.Font,
	}
	s.name = s.familyName()
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font file: %w", err)
	}
	return NewFontSource(data)
}

// ID uniquely identifies this source within the process.
// It keys glyph cache entries.
func (s *FontSource) ID() uint64 {
	return s.id
}

// Name is the font family name, or "unknown" when the name table has
// none.
func (s *FontSource) Name() string {
	return s.name
}

// NumGlyphs is the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.outline.NumGlyphs()
}

// GlyphIndex returns the glyph for a rune.
func (s *FontSource) GlyphIndex(r rune) (uint16, error) {
	var buf sfnt.Buffer
	gid, err := s.outline.GlyphIndex(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("text: glyph lookup: %w", err)
	}
	if gid == 0 {
		return 0, ErrGlyphNotFound
	}
	return uint16(gid), nil
}

func (s *FontSource) familyName() string {
	var buf sfnt.Buffer
	name, err := s.outline.Name(&buf, sfnt.NameIDFamily)
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}
