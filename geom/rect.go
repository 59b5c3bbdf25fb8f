package geom

import "math"

// Rect is an axis-aligned rectangle from Min (left top) to Max (right bottom).
// A Rect where Min > Max on either axis is "negative" and contains nothing.
type Rect struct {
	Min, Max Pos2
}

// RectNothing is the inverted rectangle that contains no points.
// Taking the union of it with another rectangle returns the other rectangle.
var RectNothing = Rect{
	Min: Pos2{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
	Max: Pos2{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
}

// RectEverything is the infinite rectangle that contains every point.
var RectEverything = Rect{
	Min: Pos2{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
	Max: Pos2{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
}

// RectFromMinMax creates a rectangle from two corners, without normalizing.
func RectFromMinMax(min, max Pos2) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize creates a rectangle from its left-top corner and size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize creates a rectangle centered on a point.
func RectFromCenterSize(center Pos2, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.SubVec(half), Max: center.Add(half)}
}

// RectFromTwoPos creates the smallest rectangle containing both points.
func RectFromTwoPos(a, b Pos2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

// Width returns Max.X - Min.X. Negative for a negative rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y. Negative for a negative rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Pos2 {
	return Pos2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Area returns Width*Height.
func (r Rect) Area() float32 {
	return r.Width() * r.Height()
}

// IsPositive reports whether the rectangle has positive width and height.
func (r Rect) IsPositive() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// IsNegative reports whether the rectangle has negative width or height.
func (r Rect) IsNegative() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// IsFinite reports whether all four coordinates are finite.
func (r Rect) IsFinite() bool {
	return r.Min.IsFinite() && r.Max.IsFinite()
}

// Contains reports whether the point is inside the rectangle (inclusive).
func (r Rect) Contains(p Pos2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other is fully inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Intersects reports whether the rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Intersect returns the overlap of two rectangles.
// The result is negative if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: r.Min.Max(other.Min),
		Max: r.Max.Min(other.Max),
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// ExtendWith grows the rectangle to include the point.
func (r Rect) ExtendWith(p Pos2) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// Expand grows the rectangle by amnt on all sides.
// A negative amnt shrinks it.
func (r Rect) Expand(amnt float32) Rect {
	return r.Expand2(Splat(amnt))
}

// Expand2 grows the rectangle by amnt.X horizontally and amnt.Y vertically.
func (r Rect) Expand2(amnt Vec2) Rect {
	return Rect{Min: r.Min.SubVec(amnt), Max: r.Max.Add(amnt)}
}

// Shrink shrinks the rectangle by amnt on all sides.
func (r Rect) Shrink(amnt float32) Rect {
	return r.Expand(-amnt)
}

// Translate moves the rectangle by the displacement.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// RoundUI rounds all four coordinates with RoundUI.
func (r Rect) RoundUI() Rect {
	return Rect{
		Min: Pos2{X: RoundUI(r.Min.X), Y: RoundUI(r.Min.Y)},
		Max: Pos2{X: RoundUI(r.Max.X), Y: RoundUI(r.Max.Y)},
	}
}

// Corner accessors. "Left"/"right" refer to X, "top"/"bottom" to Y,
// with Y growing downwards.

func (r Rect) LeftTop() Pos2      { return r.Min }
func (r Rect) RightTop() Pos2     { return Pos2{X: r.Max.X, Y: r.Min.Y} }
func (r Rect) LeftBottom() Pos2   { return Pos2{X: r.Min.X, Y: r.Max.Y} }
func (r Rect) RightBottom() Pos2  { return r.Max }
func (r Rect) CenterTop() Pos2    { return Pos2{X: r.Center().X, Y: r.Min.Y} }
func (r Rect) CenterBottom() Pos2 { return Pos2{X: r.Center().X, Y: r.Max.Y} }
func (r Rect) LeftCenter() Pos2   { return Pos2{X: r.Min.X, Y: r.Center().Y} }
func (r Rect) RightCenter() Pos2  { return Pos2{X: r.Max.X, Y: r.Center().Y} }

// RotateBB returns the axis-aligned bounding box of the rectangle
// rotated around the origin.
func (r Rect) RotateBB(rot Rot2) Rect {
	a := rot.MulPos(r.LeftTop())
	b := rot.MulPos(r.RightTop())
	c := rot.MulPos(r.LeftBottom())
	d := rot.MulPos(r.RightBottom())
	return RectFromTwoPos(a, b).Union(RectFromTwoPos(c, d))
}
