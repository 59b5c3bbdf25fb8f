package geom

// Pos2 is an absolute position in logical points.
// (0,0) is the top left corner of the screen; X increases right, Y down.
type Pos2 struct {
	X, Y float32
}

// P2 is a convenience constructor for Pos2.
func P2(x, y float32) Pos2 {
	return Pos2{X: x, Y: y}
}

// Add translates the position by a displacement.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Pos2) Sub(q Pos2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubVec translates the position by the negation of a displacement.
func (p Pos2) SubVec(v Vec2) Pos2 {
	return Pos2{X: p.X - v.X, Y: p.Y - v.Y}
}

// ToVec2 reinterprets the position as a displacement from the origin.
func (p Pos2) ToVec2() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Lerp linearly interpolates between p and q.
func (p Pos2) Lerp(q Pos2, t float32) Pos2 {
	return Pos2{
		X: Lerp(p.X, q.X, t),
		Y: Lerp(p.Y, q.Y, t),
	}
}

// Distance returns the euclidean distance between two positions.
func (p Pos2) Distance(q Pos2) float32 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance between two positions.
func (p Pos2) DistanceSq(q Pos2) float32 {
	return p.Sub(q).LengthSq()
}

// Min returns the component-wise minimum.
func (p Pos2) Min(q Pos2) Pos2 {
	return Pos2{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the component-wise maximum.
func (p Pos2) Max(q Pos2) Pos2 {
	return Pos2{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// AtLeast clamps each component to be at least the matching component of q.
func (p Pos2) AtLeast(q Pos2) Pos2 {
	return p.Max(q)
}

// AtMost clamps each component to be at most the matching component of q.
func (p Pos2) AtMost(q Pos2) Pos2 {
	return p.Min(q)
}

// IsFinite reports whether both coordinates are finite.
func (p Pos2) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}
