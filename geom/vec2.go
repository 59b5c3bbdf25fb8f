package geom

import "math"

// Vec2 is a 2D displacement or direction.
// A Vec2 is a difference between two positions; see Pos2 for absolute
// coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns the component-wise sum.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by s.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the vector with both components negated.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar 2D cross product.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the euclidean length.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// LengthSq returns the squared length, avoiding the square root.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit-length vector in the same direction,
// or the zero vector if v has zero length.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rot90 rotates the vector 90 degrees clockwise in a Y-down coordinate
// system (the screen convention used throughout this module).
func (v Vec2) Rot90() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Lerp linearly interpolates between v and w. t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: Lerp(v.X, w.X, t),
		Y: Lerp(v.Y, w.Y, t),
	}
}

// Min returns the component-wise minimum.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// IsFinite reports whether both components are finite (not NaN or Inf).
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// ToPos2 reinterprets the vector as a position.
func (v Vec2) ToPos2() Pos2 {
	return Pos2{X: v.X, Y: v.Y}
}

func isFinite(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}
