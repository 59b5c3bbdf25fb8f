package paint

// TessellationOptions controls how shapes are converted to meshes.
// Use [DefaultTessellationOptions] and tweak from there.
type TessellationOptions struct {
	// PixelsPerPoint is the DPI scale: how many physical pixels one
	// logical point covers. Used to align text and rectangles to the
	// pixel grid and to size the feathering band.
	PixelsPerPoint float32

	// Feathering enables anti-aliasing by adding a thin skirt of
	// transparent vertices around filled geometry.
	Feathering bool

	// FeatheringSizeInPixels is the width of the feathering band in
	// physical pixels. One pixel gives the best looking results.
	FeatheringSizeInPixels float32

	// CoarseTessellationCulling skips shapes entirely outside the
	// clip rectangle. Turn off to debug culling.
	CoarseTessellationCulling bool

	// PrerasterizedDiscs replaces small filled circles with a
	// textured quad sampling a prerasterized disc from the atlas.
	PrerasterizedDiscs bool

	// RoundTextToPixels aligns text to physical pixel boundaries,
	// which makes it sharper.
	RoundTextToPixels bool

	// RoundLineSegmentsToPixels snaps axis-aligned line segments to
	// pixel centers so hairlines come out crisp.
	RoundLineSegmentsToPixels bool

	// RoundRectsToPixels snaps axis-aligned rectangles to pixel
	// boundaries.
	RoundRectsToPixels bool

	// DebugPaintClipRects outlines every clip rectangle.
	DebugPaintClipRects bool

	// DebugPaintTextRects outlines the rectangle of every glyph.
	DebugPaintTextRects bool

	// DebugIgnoreClipRects disables culling by clip rectangle.
	DebugIgnoreClipRects bool

	// BezierTolerance is the maximum distance, in points, between a
	// curve and its polyline flattening.
	BezierTolerance float32

	// Epsilon below which geometric differences are ignored.
	Epsilon float32

	// ValidateMeshes checks every produced mesh for out-of-range
	// indices. Useful when developing custom shapes.
	ValidateMeshes bool
}

// DefaultTessellationOptions returns the options used by default:
// anti-aliasing on, one pixel of feathering, pixel-aligned text.
func DefaultTessellationOptions() TessellationOptions {
	return TessellationOptions{
		PixelsPerPoint:            1.0,
		Feathering:                true,
		FeatheringSizeInPixels:    1.0,
		CoarseTessellationCulling: true,
		PrerasterizedDiscs:        true,
		RoundTextToPixels:         true,
		RoundLineSegmentsToPixels: true,
		RoundRectsToPixels:        true,
		BezierTolerance:           0.1,
		Epsilon:                   1e-5,
	}
}

// TessellationOptionsForDPI is [DefaultTessellationOptions] scaled for
// the given DPI.
func TessellationOptionsForDPI(pixelsPerPoint float32) TessellationOptions {
	o := DefaultTessellationOptions()
	o.PixelsPerPoint = pixelsPerPoint
	return o
}

// featheringSize returns the width of the anti-aliasing band in
// logical points, or 0 when feathering is off.
func (o *TessellationOptions) featheringSize() float32 {
	if !o.Feathering || o.PixelsPerPoint <= 0 {
		return 0
	}
	return o.FeatheringSizeInPixels / o.PixelsPerPoint
}

// roundToPixel snaps a coordinate to the nearest physical pixel
// boundary. Callers gate on the Round*ToPixels option that applies
// to their shape kind.
func (o *TessellationOptions) roundToPixel(point float32) float32 {
	if o.PixelsPerPoint > 0 {
		return roundF32(point*o.PixelsPerPoint) / o.PixelsPerPoint
	}
	return point
}
