package color

import (
	"math"
	"testing"
)

func TestRGBAPremultiplied(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want RGBA
	}{
		{"passes through", RGBAPremultiplied(0.5, 0.25, 0.1, 0.5), RGBA{0.5, 0.25, 0.1, 0.5}},
		{"negative alpha becomes additive", RGBAPremultiplied(0.5, 0.25, 0.1, -1), RGBA{0.5, 0.25, 0.1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.in != tt.want {
				t.Errorf("got %v, want %v", tt.in, tt.want)
			}
		})
	}
}

func TestRGBAUnmultiplied(t *testing.T) {
	c := RGBAUnmultiplied(1, 0.5, 0.25, 0.5)
	want := RGBA{0.5, 0.25, 0.125, 0.5}
	if !approxRGBA(c, want, 1e-6) {
		t.Errorf("got %v, want %v", c, want)
	}

	add := RGBAUnmultiplied(1, 0.5, 0.25, -0.5)
	if !add.IsAdditive() {
		t.Fatal("negative alpha should yield additive")
	}
	if add.R != 1 || add.G != 0.5 || add.B != 0.25 {
		t.Errorf("additive kept wrong channels: %v", add)
	}
}

func TestRGBAToUnmultiplied(t *testing.T) {
	c := RGBAUnmultiplied(0.8, 0.4, 0.2, 0.5)
	um := c.ToUnmultiplied()
	want := [4]float32{0.8, 0.4, 0.2, 0.5}
	for i := range want {
		if absf(um[i]-want[i]) > 1e-6 {
			t.Errorf("channel %d: got %v, want %v", i, um[i], want[i])
		}
	}

	// Additive colors keep their channels.
	add := RGBA{0.3, 0.2, 0.1, 0}
	if got := add.ToUnmultiplied(); got != [4]float32{0.3, 0.2, 0.1, 0} {
		t.Errorf("additive ToUnmultiplied changed: %v", got)
	}
}

func TestRGBAColor32Roundtrip(t *testing.T) {
	for _, c := range []Color32{White, Black, Red, Green, Blue, RGB(13, 200, 77), FromRGBAPremultiplied(100, 50, 25, 120)} {
		back := RGBAFromColor32(c).ToColor32()
		if back != c {
			t.Errorf("%v -> RGBA -> %v", c, back)
		}
	}
}

func TestRGBABlend(t *testing.T) {
	under := RGBAFromGray(0.25)
	got := under.Blend(RGBAWhite)
	if !approxRGBA(got, RGBAWhite, 1e-6) {
		t.Errorf("opaque blend: got %v", got)
	}
	got = under.Blend(RGBATransparent)
	if !approxRGBA(got, under, 1e-6) {
		t.Errorf("transparent blend: got %v", got)
	}
}

func TestRGBAEqualNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := RGBA{nan, 0, 0, 1}
	b := RGBA{nan, 0, 0, 1}
	if !a.Equal(b) {
		t.Error("NaN channels should compare equal to themselves")
	}
	if a.Hash64() != b.Hash64() {
		t.Error("equal values must hash equal")
	}
	neg := RGBA{0, 0, 0, 1}
	posz := RGBA{float32(math.Copysign(0, -1)), 0, 0, 1}
	if !neg.Equal(posz) {
		t.Error("signed zeros should compare equal")
	}
	if neg.Hash64() != posz.Hash64() {
		t.Error("signed zeros must hash equal")
	}
}

func approxRGBA(a, b RGBA, eps float32) bool {
	return absf(a.R-b.R) <= eps && absf(a.G-b.G) <= eps && absf(a.B-b.B) <= eps && absf(a.A-b.A) <= eps
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
