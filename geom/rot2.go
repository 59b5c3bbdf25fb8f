package geom

import "math"

// Rot2 is a rotation in the plane, stored as the sine and cosine
// of the rotation angle. Positive angles rotate from +X towards +Y,
// which is clockwise on a Y-down screen.
type Rot2 struct {
	S, C float32
}

// Rot2Identity is the rotation by zero radians.
var Rot2Identity = Rot2{S: 0, C: 1}

// Rot2FromAngle creates a rotation by the given angle in radians.
func Rot2FromAngle(angle float32) Rot2 {
	s, c := math.Sincos(float64(angle))
	return Rot2{S: float32(s), C: float32(c)}
}

// Angle returns the rotation angle in radians.
func (r Rot2) Angle() float32 {
	return float32(math.Atan2(float64(r.S), float64(r.C)))
}

// Inverse returns the opposite rotation.
func (r Rot2) Inverse() Rot2 {
	return Rot2{S: -r.S, C: r.C}
}

// Mul composes two rotations.
func (r Rot2) Mul(o Rot2) Rot2 {
	return Rot2{
		S: r.S*o.C + r.C*o.S,
		C: r.C*o.C - r.S*o.S,
	}
}

// MulVec rotates a displacement.
func (r Rot2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: r.C*v.X - r.S*v.Y,
		Y: r.S*v.X + r.C*v.Y,
	}
}

// MulPos rotates a position around the origin.
func (r Rot2) MulPos(p Pos2) Pos2 {
	return r.MulVec(p.ToVec2()).ToPos2()
}
