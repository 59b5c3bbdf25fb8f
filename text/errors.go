package text

import "errors"

var (
	// ErrEmptyFontData is returned when a font is created from no bytes.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphNotFound is returned when a font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")
)
