package color

import (
	"math"
	"testing"
)

func TestGammaRoundtrip(t *testing.T) {
	for s := 0; s <= 255; s++ {
		l := LinearF32FromGammaU8(uint8(s))
		got := GammaU8FromLinearF32(l)
		if got != uint8(s) {
			t.Errorf("gamma %d -> linear %v -> gamma %d", s, l, got)
		}
	}
}

func TestLinearRoundtrip(t *testing.T) {
	for s := 0; s <= 255; s++ {
		l := LinearF32FromLinearU8(uint8(s))
		got := LinearU8FromLinearF32(l)
		if got != uint8(s) {
			t.Errorf("linear %d -> f32 %v -> %d", s, l, got)
		}
	}
}

func TestGammaEndpoints(t *testing.T) {
	if l := LinearF32FromGammaU8(0); l != 0 {
		t.Errorf("LinearF32FromGammaU8(0) = %v, want 0", l)
	}
	if l := LinearF32FromGammaU8(255); math.Abs(float64(l)-1) > 1e-6 {
		t.Errorf("LinearF32FromGammaU8(255) = %v, want 1", l)
	}
	if g := GammaU8FromLinearF32(0); g != 0 {
		t.Errorf("GammaU8FromLinearF32(0) = %d, want 0", g)
	}
	if g := GammaU8FromLinearF32(1); g != 255 {
		t.Errorf("GammaU8FromLinearF32(1) = %d, want 255", g)
	}
}

func TestGammaClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"negative", -0.5, 0},
		{"above one", 2.0, 255},
		{"nan", float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GammaU8FromLinearF32(tt.in); got != tt.want {
				t.Errorf("GammaU8FromLinearF32(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestGammaMonotone(t *testing.T) {
	prev := LinearF32FromGammaU8(0)
	for s := 1; s <= 255; s++ {
		l := LinearF32FromGammaU8(uint8(s))
		if l <= prev {
			t.Fatalf("not monotone at %d: %v <= %v", s, l, prev)
		}
		prev = l
	}
}
