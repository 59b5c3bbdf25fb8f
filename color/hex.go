package color

import "fmt"

// ParseHex parses a CSS-style hex color string into an unmultiplied
// sRGBA color. Supported forms, with or without a leading '#':
// "RGB", "RGBA", "RRGGBB" and "RRGGBBAA".
func ParseHex(s string) (Color32, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint8
	a := uint8(255)

	switch len(s) {
	case 3: // RGB
		var ok bool
		if r, ok = nibble(s[0]); !ok {
			break
		}
		if g, ok = nibble(s[1]); !ok {
			break
		}
		if b, ok = nibble(s[2]); !ok {
			break
		}
		return FromRGBAUnmultiplied(r*17, g*17, b*17, 255), nil
	case 4: // RGBA
		var ok bool
		if r, ok = nibble(s[0]); !ok {
			break
		}
		if g, ok = nibble(s[1]); !ok {
			break
		}
		if b, ok = nibble(s[2]); !ok {
			break
		}
		if a, ok = nibble(s[3]); !ok {
			break
		}
		return FromRGBAUnmultiplied(r*17, g*17, b*17, a*17), nil
	case 6: // RRGGBB
		var ok bool
		if r, ok = byteAt(s, 0); !ok {
			break
		}
		if g, ok = byteAt(s, 2); !ok {
			break
		}
		if b, ok = byteAt(s, 4); !ok {
			break
		}
		return FromRGBAUnmultiplied(r, g, b, 255), nil
	case 8: // RRGGBBAA
		var ok bool
		if r, ok = byteAt(s, 0); !ok {
			break
		}
		if g, ok = byteAt(s, 2); !ok {
			break
		}
		if b, ok = byteAt(s, 4); !ok {
			break
		}
		if a, ok = byteAt(s, 6); !ok {
			break
		}
		return FromRGBAUnmultiplied(r, g, b, a), nil
	}
	return Color32{}, fmt.Errorf("color: invalid hex color %q", s)
}

// HexString formats the color as "#RRGGBBAA" using unmultiplied channels,
// or "#RRGGBB" when fully opaque. The inverse of ParseHex up to rounding.
func (c Color32) HexString() string {
	u := c.ToUnmultiplied()
	if u[3] == 255 {
		return fmt.Sprintf("#%02x%02x%02x", u[0], u[1], u[2])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", u[0], u[1], u[2], u[3])
}

func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func byteAt(s string, i int) (uint8, bool) {
	hi, ok1 := nibble(s[i])
	lo, ok2 := nibble(s[i+1])
	return hi<<4 | lo, ok1 && ok2
}
