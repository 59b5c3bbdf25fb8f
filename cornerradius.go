package paint

// CornerRadius describes the rounding of each corner of a rectangle,
// in logical points. Radii are stored as whole points in a u8; values
// above 255 are clamped.
type CornerRadius struct {
	NW uint8
	NE uint8
	SW uint8
	SE uint8
}

// CornerRadiusZero is a rectangle with sharp corners.
var CornerRadiusZero = CornerRadius{}

// CornerRadiusSame rounds all four corners by the same amount.
func CornerRadiusSame(r uint8) CornerRadius {
	return CornerRadius{NW: r, NE: r, SW: r, SE: r}
}

// CornerRadiusFromF32 rounds all four corners by the same amount,
// clamping to the representable range.
func CornerRadiusFromF32(r float32) CornerRadius {
	return CornerRadiusSame(clampU8(r))
}

// IsSame reports whether all four corners share the same radius.
func (c CornerRadius) IsSame() bool {
	return c.NW == c.NE && c.NW == c.SW && c.NW == c.SE
}

// IsZero reports whether all corners are sharp.
func (c CornerRadius) IsZero() bool {
	return c == CornerRadius{}
}

// Average returns the mean corner radius.
func (c CornerRadius) Average() float32 {
	return float32(uint32(c.NW)+uint32(c.NE)+uint32(c.SW)+uint32(c.SE)) / 4
}

// AtLeast clamps every corner to at least min.
func (c CornerRadius) AtLeast(min uint8) CornerRadius {
	return CornerRadius{
		NW: maxU8(c.NW, min),
		NE: maxU8(c.NE, min),
		SW: maxU8(c.SW, min),
		SE: maxU8(c.SE, min),
	}
}

// AtMost clamps every corner to at most max.
func (c CornerRadius) AtMost(max uint8) CornerRadius {
	return CornerRadius{
		NW: minU8(c.NW, max),
		NE: minU8(c.NE, max),
		SW: minU8(c.SW, max),
		SE: minU8(c.SE, max),
	}
}

// Add grows every corner by the matching corner of o, saturating at 255.
func (c CornerRadius) Add(o CornerRadius) CornerRadius {
	return CornerRadius{
		NW: satAdd(c.NW, o.NW),
		NE: satAdd(c.NE, o.NE),
		SW: satAdd(c.SW, o.SW),
		SE: satAdd(c.SE, o.SE),
	}
}

// Sub shrinks every corner by the matching corner of o, saturating at 0.
func (c CornerRadius) Sub(o CornerRadius) CornerRadius {
	return CornerRadius{
		NW: satSub(c.NW, o.NW),
		NE: satSub(c.NE, o.NE),
		SW: satSub(c.SW, o.SW),
		SE: satSub(c.SE, o.SE),
	}
}

// AddF32 grows every corner by v points, saturating in both directions.
func (c CornerRadius) AddF32(v float32) CornerRadius {
	if v < 0 {
		return c.Sub(CornerRadiusFromF32(-v))
	}
	return c.Add(CornerRadiusFromF32(v))
}

// MulF32 scales every corner by factor, rounding to whole points.
func (c CornerRadius) MulF32(factor float32) CornerRadius {
	return CornerRadius{
		NW: clampU8(float32(c.NW) * factor),
		NE: clampU8(float32(c.NE) * factor),
		SW: clampU8(float32(c.SW) * factor),
		SE: clampU8(float32(c.SE) * factor),
	}
}

func clampU8(v float32) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
