package paint

import (
	"testing"
)

func lengthsOf(sizes []Size, length, spacing float32) []float32 {
	var s Sizing
	for _, size := range sizes {
		s.Add(size)
	}
	return s.ToLengths(length, spacing)
}

func equalF32s(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSizingEmpty(t *testing.T) {
	var s Sizing
	if got := s.ToLengths(50, 0); got != nil {
		t.Errorf("ToLengths on empty sizing = %v, want nil", got)
	}
}

func TestSizingRemainders(t *testing.T) {
	sizes := []Size{SizeRemainder().AtLeast(20), SizeRemainder()}

	tests := []struct {
		length  float32
		spacing float32
		want    []float32
	}{
		{50, 0, []float32{25, 25}},
		{30, 0, []float32{20, 10}},
		{20, 0, []float32{20, 0}},
		{10, 0, []float32{20, 0}},
		{20, 10, []float32{20, 0}},
		{30, 10, []float32{20, 0}},
		{40, 10, []float32{20, 10}},
		{110, 10, []float32{50, 50}},
	}
	for _, tt := range tests {
		got := lengthsOf(sizes, tt.length, tt.spacing)
		if !equalF32s(got, tt.want) {
			t.Errorf("length %v spacing %v: got %v, want %v",
				tt.length, tt.spacing, got, tt.want)
		}
	}
}

func TestSizingRelativeAndExact(t *testing.T) {
	sizes := []Size{SizeRelative(0.5).AtLeast(10), SizeExact(10)}

	tests := []struct {
		length float32
		want   []float32
	}{
		{50, []float32{25, 10}},
		{30, []float32{15, 10}},
		{20, []float32{10, 10}},
		{10, []float32{10, 10}},
	}
	for _, tt := range tests {
		got := lengthsOf(sizes, tt.length, 0)
		if !equalF32s(got, tt.want) {
			t.Errorf("length %v: got %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestSizingExactRange(t *testing.T) {
	s := SizeExact(30)
	min, max := s.Range()
	if min != 30 || max != 30 {
		t.Errorf("Range() = %v, %v, want 30, 30", min, max)
	}
}

func TestSizingInitialUnbounded(t *testing.T) {
	// Initial sizes keep their initial length; min and max only
	// bound interactive resizing.
	got := lengthsOf([]Size{SizeInitial(200)}, 100, 0)
	if !equalF32s(got, []float32{200}) {
		t.Errorf("got %v, want [200]", got)
	}

	min, max := SizeInitial(200).AtMost(100).Range()
	if min != 0 || max != 100 {
		t.Errorf("Range() = %v, %v, want 0, 100", min, max)
	}
}

func TestSizingRelativeFractionClamped(t *testing.T) {
	got := lengthsOf([]Size{SizeRelative(2)}, 100, 0)
	if !equalF32s(got, []float32{100}) {
		t.Errorf("fraction above 1: got %v, want [100]", got)
	}
}
