package paint

import (
	"testing"

	"github.com/gogpu/paint/color"
)

func TestStrokeIsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		want   bool
	}{
		{"zero value", Stroke{}, true},
		{"zero width", NewStroke(0, color.White), true},
		{"negative width", NewStroke(-1, color.White), true},
		{"transparent", NewStroke(2, color.Transparent), true},
		{"visible", NewStroke(2, color.White), false},
		{"hairline", NewStroke(0.1, color.RGB(10, 10, 10)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stroke.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewStroke(t *testing.T) {
	s := NewStroke(3, color.RGB(255, 0, 0))
	if s.Width != 3 {
		t.Errorf("Width = %v, want 3", s.Width)
	}
	if s.Color != color.RGB(255, 0, 0) {
		t.Errorf("Color = %v", s.Color)
	}
}
