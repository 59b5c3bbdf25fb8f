package geom

import (
	"math"
	"testing"
)

func TestVec2Basics(t *testing.T) {
	a := V2(3, 4)
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := a.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v", got)
	}
	n := a.Normalized()
	if absf(n.Length()-1) > 1e-6 {
		t.Errorf("Normalized length = %v", n.Length())
	}
	if got := V2(1, 2).Dot(V2(3, 4)); got != 11 {
		t.Errorf("Dot = %v", got)
	}
	if got := V2(1, 2).Cross(V2(3, 4)); got != -2 {
		t.Errorf("Cross = %v", got)
	}
}

func TestVec2Rot90(t *testing.T) {
	// Quarter turn: (1, 0) -> (0, -1) in a y-down coordinate system.
	got := V2(1, 0).Rot90()
	if got != V2(0, -1) {
		t.Errorf("Rot90 = %v", got)
	}
	// Rotating twice negates.
	v := V2(2, 3)
	if v.Rot90().Rot90() != v.Neg() {
		t.Error("double Rot90 should negate")
	}
}

func TestVec2NormalizedZero(t *testing.T) {
	z := V2(0, 0).Normalized()
	if z != V2(0, 0) {
		t.Errorf("zero vector normalized = %v", z)
	}
}

func TestPos2Distance(t *testing.T) {
	a, b := P2(0, 0), P2(3, 4)
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v", got)
	}
	if got := a.DistanceSq(b); got != 25 {
		t.Errorf("DistanceSq = %v", got)
	}
	if got := b.Sub(a); got != V2(3, 4) {
		t.Errorf("Sub = %v", got)
	}
}

func TestRot2(t *testing.T) {
	r := Rot2FromAngle(float32(math.Pi / 2))
	v := r.MulVec(V2(1, 0))
	if absf(v.X) > 1e-6 || absf(v.Y-1) > 1e-6 {
		t.Errorf("quarter turn of (1,0) = %v", v)
	}

	inv := r.Inverse()
	back := inv.MulVec(v)
	if absf(back.X-1) > 1e-6 || absf(back.Y) > 1e-6 {
		t.Errorf("inverse rotation = %v", back)
	}

	id := Rot2Identity
	w := V2(5, -7)
	if id.MulVec(w) != w {
		t.Error("identity rotation changed vector")
	}

	composed := r.Mul(inv)
	u := composed.MulVec(w)
	if absf(u.X-w.X) > 1e-5 || absf(u.Y-w.Y) > 1e-5 {
		t.Errorf("r * r^-1 applied to %v = %v", w, u)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
