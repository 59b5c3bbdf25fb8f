package paint

import (
	"github.com/gogpu/paint/color"
)

// StrokeKind controls where a stroke is placed relative to the path edge.
type StrokeKind uint8

const (
	// StrokeKindMiddle centers the stroke on the path edge.
	StrokeKindMiddle StrokeKind = iota
	// StrokeKindInside keeps the stroke within the filled area.
	StrokeKindInside
	// StrokeKindOutside puts the stroke outside the filled area.
	StrokeKindOutside
)

// Stroke describes the width and color of a path outline.
// A zero-width or invisible-color stroke paints nothing.
type Stroke struct {
	Width float32
	Color color.Color32
}

// NewStroke returns a stroke with the given width in points.
func NewStroke(width float32, c color.Color32) Stroke {
	return Stroke{Width: width, Color: c}
}

// IsEmpty reports whether the stroke would paint nothing.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color == color.Transparent
}
