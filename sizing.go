package paint

import "math"

type sizeKind int

const (
	sizeAbsolute sizeKind = iota
	sizeRelative
	sizeRemainder
)

// Size is a sizing hint for one slot of a strip or table layout.
type Size struct {
	kind sizeKind

	// initial holds the absolute size in points, or the fraction of
	// the available length for relative sizes.
	initial  float32
	min, max float32
}

// SizeExact is exactly this big, with no room to resize.
func SizeExact(points float32) Size {
	return Size{kind: sizeAbsolute, initial: points, min: points, max: points}
}

// SizeInitial starts out this big but can resize freely.
func SizeInitial(points float32) Size {
	return Size{kind: sizeAbsolute, initial: points, min: 0, max: float32(math.Inf(1))}
}

// SizeRelative takes this fraction of the available length.
// The fraction must be in [0, 1].
func SizeRelative(fraction float32) Size {
	if fraction < 0 || fraction > 1 {
		Logger().Warn("relative size fraction outside [0, 1]", "fraction", fraction)
		fraction = clamp32(fraction, 0, 1)
	}
	return Size{kind: sizeRelative, initial: fraction, min: 0, max: float32(math.Inf(1))}
}

// SizeRemainder shares the space left over. Multiple remainder slots
// each get the same share.
func SizeRemainder() Size {
	return Size{kind: sizeRemainder, min: 0, max: float32(math.Inf(1))}
}

// AtLeast keeps the slot from shrinking below this many points.
func (s Size) AtLeast(minimum float32) Size {
	s.min = minimum
	return s
}

// AtMost keeps the slot from growing above this many points.
func (s Size) AtMost(maximum float32) Size {
	s.max = maximum
	return s
}

// Range is the allowed range of movement in points.
func (s Size) Range() (min, max float32) {
	return s.min, s.max
}

// Sizing resolves a list of size hints against an available length.
type Sizing struct {
	Sizes []Size
}

// Add appends one slot.
func (s *Sizing) Add(size Size) {
	s.Sizes = append(s.Sizes, size)
}

// ToLengths distributes the available length over the slots, with the
// given spacing between adjacent slots. Absolute and relative slots are
// resolved first; remainder slots split what is left over evenly,
// except that a remainder slot clamped up to its minimum keeps that
// minimum and drops out of the split.
func (s *Sizing) ToLengths(length, spacing float32) []float32 {
	if len(s.Sizes) == 0 {
		return nil
	}

	remainders := 0
	sumNonRemainder := spacing * float32(len(s.Sizes)-1)
	for _, size := range s.Sizes {
		switch size.kind {
		case sizeAbsolute:
			sumNonRemainder += size.initial
		case sizeRelative:
			sumNonRemainder += clamp32(length*size.initial, size.min, size.max)
		case sizeRemainder:
			remainders++
		}
	}

	avgRemainderLength := float32(0)
	if remainders > 0 {
		remainderLength := length - sumNonRemainder
		avg := floor32(max(0, remainderLength/float32(remainders)))
		for _, size := range s.Sizes {
			if size.kind == sizeRemainder && avg < size.min {
				remainderLength -= size.min
				remainders--
			}
		}
		if remainders > 0 {
			avgRemainderLength = max(0, remainderLength/float32(remainders))
		}
	}

	lengths := make([]float32, 0, len(s.Sizes))
	for _, size := range s.Sizes {
		switch size.kind {
		case sizeAbsolute:
			lengths = append(lengths, size.initial)
		case sizeRelative:
			lengths = append(lengths, clamp32(length*size.initial, size.min, size.max))
		case sizeRemainder:
			lengths = append(lengths, clamp32(avgRemainderLength, size.min, size.max))
		}
	}
	return lengths
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}
