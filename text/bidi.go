package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// baseDirection reports whether a paragraph should be laid out right
// to left. It applies the first-strong rule: the first character with
// a strong bidi class decides, and text without one defaults to LTR.
func baseDirection(s string) di.Direction {
	for i := 0; i < len(s); {
		prop, sz := bidi.LookupString(s[i:])
		if sz == 0 {
			break
		}
		switch prop.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
		i += sz
	}
	return di.DirectionLTR
}

// detectScript picks the script of the first non-space rune.
// Mixed-script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
