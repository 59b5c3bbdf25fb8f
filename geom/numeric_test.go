package geom

import (
	"math"
	"testing"
)

func TestRoundUI(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"already on grid", 0.5, 0.5},
		{"rounds up", 0.49, 0.5},
		{"rounds down", 0.01, 0},
		{"negative", -0.49, -0.5},
		{"large", 1234.567, 1234.5625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundUI(tt.in); got != tt.want {
				t.Errorf("RoundUI(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundUIIdempotent(t *testing.T) {
	for _, x := range []float32{0, 0.1, 0.26, -3.7, 17.03, 1e4, -1e4, 0.015625} {
		once := RoundUI(x)
		twice := RoundUI(once)
		if once != twice {
			t.Errorf("RoundUI(%v): %v then %v", x, once, twice)
		}
	}
}

func TestRoundUINonFinite(t *testing.T) {
	if !math.IsNaN(float64(RoundUI(float32(math.NaN())))) {
		t.Error("NaN should pass through")
	}
	inf := float32(math.Inf(1))
	if RoundUI(inf) != inf {
		t.Error("Inf should pass through")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp = %v", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp at 0 = %v", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Errorf("Lerp at 1 = %v", got)
	}
}

func TestRemap(t *testing.T) {
	if got := Remap(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("Remap = %v", got)
	}
	if got := RemapClamp(20, 0, 10, 0, 100); got != 100 {
		t.Errorf("RemapClamp above = %v", got)
	}
	if got := RemapClamp(-5, 0, 10, 0, 100); got != 0 {
		t.Errorf("RemapClamp below = %v", got)
	}
	// Reversed output range still interpolates.
	if got := RemapClamp(2.5, 0, 10, 1, 0); got != 0.75 {
		t.Errorf("RemapClamp reversed = %v", got)
	}
}
