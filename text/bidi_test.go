package text

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
)

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want di.Direction
	}{
		{"latin", "hello", di.DirectionLTR},
		{"empty", "", di.DirectionLTR},
		{"digits", "123", di.DirectionLTR},
		{"hebrew", "שלום", di.DirectionRTL},
		{"arabic", "مرحبا", di.DirectionRTL},
		{"mixed leading latin", "hello שלום", di.DirectionLTR},
		{"mixed leading hebrew", "שלום hello", di.DirectionRTL},
		{"leading punctuation", "(שלום)", di.DirectionRTL},
		{"neutrals only", "!?.", di.DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseDirection(tt.text); got != tt.want {
				t.Errorf("baseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Script
	}{
		{"latin", "abc", language.LookupScript('a')},
		{"leading space", "  abc", language.LookupScript('a')},
		{"hebrew", "שלום", language.LookupScript('ש')},
		{"all spaces", "   ", language.Latin},
		{"empty", "", language.Latin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectScript([]rune(tt.text)); got != tt.want {
				t.Errorf("detectScript(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
