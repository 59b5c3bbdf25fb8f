package geom

// Margin is a set of four offsets from the sides of a rectangle,
// often used to express padding or spacing.
//
// Negative margins are possible, but may produce inverted rectangles.
type Margin struct {
	Left, Right, Top, Bottom float32
}

// MarginZero is the identity margin.
var MarginZero = Margin{}

// MarginSame returns the same margin on every side.
func MarginSame(m float32) Margin {
	return Margin{Left: m, Right: m, Top: m, Bottom: m}
}

// MarginSymmetric returns margins with the same size on opposing sides.
func MarginSymmetric(x, y float32) Margin {
	return Margin{Left: x, Right: x, Top: y, Bottom: y}
}

// Sum returns the total margins on both axes.
func (m Margin) Sum() Vec2 {
	return Vec2{X: m.Left + m.Right, Y: m.Top + m.Bottom}
}

// LeftTop returns the left and top margins as a displacement.
func (m Margin) LeftTop() Vec2 {
	return Vec2{X: m.Left, Y: m.Top}
}

// RightBottom returns the right and bottom margins as a displacement.
func (m Margin) RightBottom() Vec2 {
	return Vec2{X: m.Right, Y: m.Bottom}
}

// Add returns the component-wise sum of two margins.
func (m Margin) Add(o Margin) Margin {
	return Margin{
		Left:   m.Left + o.Left,
		Right:  m.Right + o.Right,
		Top:    m.Top + o.Top,
		Bottom: m.Bottom + o.Bottom,
	}
}

// ExpandRect grows the rectangle by the margin on each side.
func (m Margin) ExpandRect(r Rect) Rect {
	return Rect{
		Min: r.Min.SubVec(m.LeftTop()),
		Max: r.Max.Add(m.RightBottom()),
	}
}

// ShrinkRect shrinks the rectangle by the margin on each side.
// The inverse of ExpandRect.
func (m Margin) ShrinkRect(r Rect) Rect {
	return Rect{
		Min: r.Min.Add(m.LeftTop()),
		Max: r.Max.SubVec(m.RightBottom()),
	}
}
