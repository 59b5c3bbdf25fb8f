package color

// PaintColor is either a concrete color or a placeholder that is
// substituted with a caller-supplied fallback at tessellation time.
//
// The placeholder exists so that shared geometry (most importantly glyph
// meshes) can be recolored per use without being rebuilt.
//
// The zero value is the placeholder.
type PaintColor struct {
	color Color32
	solid bool
}

// Placeholder is the sentinel resolved against a fallback at paint time.
var Placeholder = PaintColor{}

// Solid wraps a concrete color.
func Solid(c Color32) PaintColor {
	return PaintColor{color: c, solid: true}
}

// IsPlaceholder reports whether the color must be resolved with a fallback.
func (p PaintColor) IsPlaceholder() bool {
	return !p.solid
}

// Resolve returns the wrapped color, or fallback for the placeholder.
func (p PaintColor) Resolve(fallback Color32) Color32 {
	if p.solid {
		return p.color
	}
	return fallback
}
