package paint

import (
	"slices"

	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// Tessellator converts shapes into triangle meshes.
//
// It is cheap to create but carries scratch buffers, so reusing one
// across shapes (and frames) avoids allocations. Not safe for
// concurrent use.
type Tessellator struct {
	options     TessellationOptions
	fontTexSize [2]int

	// preparedDiscs from the texture atlas, sorted by radius.
	preparedDiscs []PreparedDisc

	// feathering in points; the width of the anti-aliasing band.
	// 0 when anti-aliasing is off.
	feathering float32

	// clipRect is only used for culling.
	clipRect geom.Rect

	scratchPoints []geom.Pos2
	scratchPath   Path
}

// NewTessellator returns a tessellator for one frame's options.
//
// fontTexSize is the size of the font atlas texture, required to
// normalize glyph uv rectangles. preparedDiscs is what
// [TextureAtlas.PreparedDiscs] returns; it may be empty.
func NewTessellator(options TessellationOptions, fontTexSize [2]int, preparedDiscs []PreparedDisc) *Tessellator {
	if options.PixelsPerPoint <= 0 {
		options.PixelsPerPoint = 1
	}
	return &Tessellator{
		options:       options,
		fontTexSize:   fontTexSize,
		preparedDiscs: preparedDiscs,
		feathering:    options.featheringSize(),
		clipRect:      geom.RectEverything,
	}
}

// SetClipRect sets the rectangle used for culling.
func (t *Tessellator) SetClipRect(clipRect geom.Rect) {
	t.clipRect = clipRect
}

// TessellateClippedShape tessellates one clipped shape, appending the
// result to out. Consecutive shapes with the same clip rectangle and
// texture are merged into one primitive to keep draw call counts low.
func (t *Tessellator) TessellateClippedShape(cs ClippedShape, out *[]ClippedPrimitive) {
	if !cs.ClipRect.IsPositive() {
		return // skip empty clip rectangles
	}

	switch shape := cs.Shape.(type) {
	case ShapeGroup:
		for _, nested := range shape {
			t.TessellateClippedShape(ClippedShape{ClipRect: cs.ClipRect, Shape: nested}, out)
		}
		return
	case CallbackShape:
		*out = append(*out, ClippedPrimitive{ClipRect: cs.ClipRect, Primitive: shape})
		return
	}

	startNewMesh := true
	if len(*out) > 0 {
		last := &(*out)[len(*out)-1]
		if last.ClipRect == cs.ClipRect {
			if mesh, ok := last.Primitive.(*Mesh); ok {
				startNewMesh = mesh.Texture != shapeTexture(cs.Shape)
			}
		}
	}

	if startNewMesh {
		*out = append(*out, ClippedPrimitive{ClipRect: cs.ClipRect, Primitive: &Mesh{}})
	}

	outMesh := (*out)[len(*out)-1].Primitive.(*Mesh)
	t.clipRect = cs.ClipRect
	t.TessellateShape(cs.Shape, outMesh)
}

// TessellateShape tessellates a single shape, appending triangles to
// out. Callback shapes cannot be turned into triangles; use
// [Tessellator.TessellateClippedShape] for those.
func (t *Tessellator) TessellateShape(shape Shape, out *Mesh) {
	switch s := shape.(type) {
	case nil, Noop:
	case ShapeGroup:
		for _, nested := range s {
			t.TessellateShape(nested, out)
		}
	case CircleShape:
		t.tessellateCircle(s, out)
	case MeshShape:
		t.tessellateMesh(s.Mesh, out)
	case LineSegmentShape:
		t.tessellateLine(s.A, s.B, s.Stroke, out)
	case PathShape:
		t.tessellatePath(&s, out)
	case RectShape:
		t.tessellateRect(&s, out)
	case TextShape:
		if t.options.DebugPaintTextRects {
			rect := s.Galley.Rect.Translate(s.Pos.ToVec2())
			t.tessellateRect(&RectShape{
				Rect:   rect.Expand(0.5),
				Stroke: NewStroke(2, color.Green),
			}, out)
		}
		t.tessellateText(&s, out)
	case QuadraticBezierShape:
		t.tessellateQuadraticBezier(s, out)
	case CubicBezierShape:
		t.tessellateCubicBezier(s, out)
	case CallbackShape:
		Logger().Warn("callback shape passed to TessellateShape; dropped")
	default:
		Logger().Warn("unknown shape variant; dropped")
	}
}

func (t *Tessellator) tessellateCircle(shape CircleShape, out *Mesh) {
	center, radius, fill, stroke := shape.Center, shape.Radius, shape.Fill, shape.Stroke

	if radius <= 0 {
		return
	}

	if t.options.CoarseTessellationCulling &&
		!t.clipRect.Expand(radius+stroke.Width).Contains(center) {
		return
	}

	if t.options.PrerasterizedDiscs && fill != color.Transparent {
		radiusPx := radius * t.options.PixelsPerPoint
		// Strike a balance between circles becoming too blurry and
		// too sharp.
		cutoffRadius := radiusPx * discCutoffFactor

		// Find the right disc radius for a crisp edge:
		for i := range t.preparedDiscs {
			disc := &t.preparedDiscs[i]
			if cutoffRadius <= disc.R {
				side := radiusPx * disc.W / (t.options.PixelsPerPoint * disc.R)
				rect := geom.RectFromCenterSize(center, geom.Splat(side))
				out.AddRectWithUV(rect, disc.UV, fill)

				if stroke.IsEmpty() {
					return
				}
				// Still need the stroke; don't fill again below.
				fill = color.Transparent
				break
			}
		}
	}

	t.scratchPath.Clear()
	t.scratchPath.AddCircle(center, radius)
	t.scratchPath.Fill(t.feathering, fill, out)
	t.scratchPath.StrokeClosed(t.feathering, stroke, out)
}

func (t *Tessellator) tessellateMesh(mesh *Mesh, out *Mesh) {
	if mesh == nil {
		return
	}
	if !mesh.IsValid() {
		Logger().Warn("invalid mesh in mesh shape; dropped",
			"vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
		return
	}

	if t.options.CoarseTessellationCulling && !t.clipRect.Intersects(mesh.CalcBounds()) {
		return
	}

	out.AppendRef(mesh)
}

func (t *Tessellator) tessellateLine(a, b geom.Pos2, stroke Stroke, out *Mesh) {
	if stroke.IsEmpty() {
		return
	}

	if t.options.CoarseTessellationCulling &&
		!t.clipRect.Intersects(geom.RectFromTwoPos(a, b).Expand(stroke.Width)) {
		return
	}

	if t.options.RoundLineSegmentsToPixels {
		// Snap chiefly-axis-aligned lines so hairlines land on whole
		// pixels.
		if a.X == b.X {
			x := t.options.roundToPixel(a.X)
			a.X, b.X = x, x
		}
		if a.Y == b.Y {
			y := t.options.roundToPixel(a.Y)
			a.Y, b.Y = y, y
		}
	}

	t.scratchPath.Clear()
	t.scratchPath.AddLineSegment(a, b)
	t.scratchPath.StrokeOpen(t.feathering, stroke, out)
}

func (t *Tessellator) tessellatePath(shape *PathShape, out *Mesh) {
	if len(shape.Points) < 2 {
		return
	}

	if t.options.CoarseTessellationCulling &&
		!shape.VisualBoundingRect().Intersects(t.clipRect) {
		return
	}

	t.scratchPath.Clear()
	if shape.Closed {
		t.scratchPath.AddLineLoop(shape.Points)
	} else {
		t.scratchPath.AddOpenPoints(shape.Points)
	}

	if shape.Fill != color.Transparent {
		if !shape.Closed {
			Logger().Warn("fill requested for an open path; ignored")
		} else {
			t.scratchPath.Fill(t.feathering, shape.Fill, out)
		}
	}
	pathType := PathOpen
	if shape.Closed {
		pathType = PathClosed
	}
	t.scratchPath.Stroke(t.feathering, pathType, shape.Stroke, out)
}

func (t *Tessellator) tessellateRect(shape *RectShape, out *Mesh) {
	rect, stroke := shape.Rect, shape.Stroke

	if t.options.CoarseTessellationCulling &&
		!rect.Expand(stroke.Width).Intersects(t.clipRect) {
		return
	}
	if rect.IsNegative() {
		return
	}

	// It is common to accidentally create an infinitely sized
	// rectangle. Make sure we can handle that:
	rect.Min = rect.Min.AtLeast(geom.P2(-1e7, -1e7))
	rect.Max = rect.Max.AtMost(geom.P2(1e7, 1e7))

	if t.options.RoundRectsToPixels && shape.CornerRadius.IsZero() {
		rect = geom.RectFromMinMax(
			geom.P2(t.options.roundToPixel(rect.Min.X), t.options.roundToPixel(rect.Min.Y)),
			geom.P2(t.options.roundToPixel(rect.Max.X), t.options.roundToPixel(rect.Max.Y)),
		)
	}

	// Place the stroke on the requested side of the edge.
	switch shape.StrokeKind {
	case StrokeKindInside:
		rect = rect.Shrink(stroke.Width / 2)
	case StrokeKindOutside:
		rect = rect.Expand(stroke.Width / 2)
	}

	switch {
	case rect.Width() < t.feathering:
		// Very thin: approximate by a vertical line segment.
		a, b := rect.CenterTop(), rect.CenterBottom()
		if shape.Fill != color.Transparent {
			t.tessellateLine(a, b, NewStroke(rect.Width(), shape.Fill), out)
		}
		if !stroke.IsEmpty() {
			t.tessellateLine(a, b, stroke, out) // back…
			t.tessellateLine(a, b, stroke, out) // …and forth
		}
	case rect.Height() < t.feathering:
		// Very thin: approximate by a horizontal line segment.
		a, b := rect.LeftCenter(), rect.RightCenter()
		if shape.Fill != color.Transparent {
			t.tessellateLine(a, b, NewStroke(rect.Height(), shape.Fill), out)
		}
		if !stroke.IsEmpty() {
			t.tessellateLine(a, b, stroke, out) // back…
			t.tessellateLine(a, b, stroke, out) // …and forth
		}
	default:
		t.scratchPath.Clear()
		t.scratchPoints = RoundedRectPoints(t.scratchPoints, rect, shape.CornerRadius)
		t.scratchPath.AddLineLoop(t.scratchPoints)
		t.scratchPath.Fill(t.feathering, shape.Fill, out)
		t.scratchPath.StrokeClosed(t.feathering, stroke, out)
	}
}

func (t *Tessellator) tessellateText(shape *TextShape, out *Mesh) {
	galley := shape.Galley
	if galley == nil || galley.IsEmpty() {
		return
	}

	if galley.PixelsPerPoint != t.options.PixelsPerPoint {
		Logger().Warn("pixels per point changed between text layout and tessellation; text will be blurry",
			"layout", galley.PixelsPerPoint, "paint", t.options.PixelsPerPoint)
	}

	out.Reserve(2*galley.NumGlyphs(), 4*galley.NumGlyphs())

	// Glyphs are already snapped to pixel coordinates within the
	// galley, but the galley itself must start on a physical pixel:
	galleyPos := shape.Pos
	if t.options.RoundTextToPixels {
		galleyPos = geom.P2(
			t.options.roundToPixel(shape.Pos.X),
			t.options.roundToPixel(shape.Pos.Y),
		)
	}

	uvNormalizer := geom.V2(
		1/float32(t.fontTexSize[0]),
		1/float32(t.fontTexSize[1]),
	)

	rotator := geom.Rot2FromAngle(shape.Angle)
	opacity := shape.Opacity
	if opacity <= 0 {
		opacity = 1
	}

	for _, row := range galley.Rows {
		rowRect := row.Rect
		if shape.Angle != 0 {
			rowRect = rowRect.RotateBB(rotator)
		}
		rowRect = rowRect.Translate(galleyPos.ToVec2())

		if t.options.CoarseTessellationCulling && !t.clipRect.Intersects(rowRect) {
			// Culling individual rows matters: a single text shape
			// can span hundreds of lines.
			continue
		}

		for _, glyph := range row.Glyphs {
			c := glyph.Color.Resolve(shape.FallbackColor)
			if shape.OverrideTextColor != nil {
				c = *shape.OverrideTextColor
			}
			if opacity < 1 {
				c = c.GammaMultiply(opacity)
			}
			if c == color.Transparent {
				continue
			}

			quad := glyph.Rect()
			uv := geom.RectFromMinMax(
				geom.P2(glyph.UV.Min.X*uvNormalizer.X, glyph.UV.Min.Y*uvNormalizer.Y),
				geom.P2(glyph.UV.Max.X*uvNormalizer.X, glyph.UV.Max.Y*uvNormalizer.Y),
			)

			if shape.Angle == 0 {
				out.AddRectWithUV(quad.Translate(galleyPos.ToVec2()), uv, c)
				continue
			}

			idx := uint32(len(out.Vertices))
			out.AddTriangle(idx+0, idx+1, idx+2)
			out.AddTriangle(idx+2, idx+1, idx+3)
			for _, corner := range [4]geom.Pos2{
				quad.LeftTop(), quad.RightTop(), quad.LeftBottom(), quad.RightBottom(),
			} {
				out.Vertices = append(out.Vertices, Vertex{
					Pos:   galleyPos.Add(rotator.MulVec(corner.ToVec2())),
					Color: c,
				})
			}
			out.Vertices[idx+0].UV = uv.LeftTop()
			out.Vertices[idx+1].UV = uv.RightTop()
			out.Vertices[idx+2].UV = uv.LeftBottom()
			out.Vertices[idx+3].UV = uv.RightBottom()
		}

		if !shape.Underline.IsEmpty() {
			t.scratchPath.Clear()
			t.scratchPath.AddLineSegment(rowRect.LeftBottom(), rowRect.RightBottom())
			t.scratchPath.StrokeOpen(t.feathering, shape.Underline, out)
		}
	}
}

// TessellateShapes turns a frame's shapes into a list of clipped
// primitives, batched by clip rectangle and texture. Shapes are
// tessellated in the given order, which is the paint order.
func TessellateShapes(
	options TessellationOptions,
	fontTexSize [2]int,
	preparedDiscs []PreparedDisc,
	shapes []ClippedShape,
) []ClippedPrimitive {
	t := NewTessellator(options, fontTexSize, preparedDiscs)

	var out []ClippedPrimitive
	for _, cs := range shapes {
		t.TessellateClippedShape(cs, &out)
	}

	// Culled or degenerate shapes leave empty meshes behind.
	out = slices.DeleteFunc(out, func(cp ClippedPrimitive) bool {
		mesh, ok := cp.Primitive.(*Mesh)
		return ok && mesh.IsEmpty()
	})

	if options.DebugPaintClipRects {
		out = addClipRectOutlines(t, out)
	}

	if options.DebugIgnoreClipRects {
		for i := range out {
			out[i].ClipRect = geom.RectEverything
		}
	}

	if options.ValidateMeshes {
		for i := range out {
			if mesh, ok := out[i].Primitive.(*Mesh); ok && !mesh.IsValid() {
				Logger().Warn("tessellation produced an invalid mesh",
					"vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
			}
		}
	}

	return out
}

func addClipRectOutlines(t *Tessellator, in []ClippedPrimitive) []ClippedPrimitive {
	t.clipRect = geom.RectEverything
	stroke := NewStroke(2, color.RGB(150, 255, 150))

	out := make([]ClippedPrimitive, 0, 2*len(in))
	for _, cp := range in {
		outline := &Mesh{}
		t.TessellateShape(RectStroke(cp.ClipRect, CornerRadiusZero, stroke), outline)
		out = append(out, cp, ClippedPrimitive{
			ClipRect:  geom.RectEverything,
			Primitive: outline,
		})
	}
	return out
}
