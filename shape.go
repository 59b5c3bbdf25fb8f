package paint

import (
	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// Shape describes something paintable. The set of variants is closed:
// the tessellator dispatches over it with a type switch. Callback is
// the single open-ended escape hatch for renderer-specific drawing.
type Shape interface {
	isShape()
}

// Noop paints nothing. It is a valid placeholder so a shape slot can
// be reserved in a [ShapeList] and filled in later.
type Noop struct{}

// CircleShape is a circle, optionally filled and/or stroked.
type CircleShape struct {
	Center geom.Pos2
	Radius float32
	Fill   color.Color32
	Stroke Stroke
}

// CircleFilled returns a filled circle without an outline.
func CircleFilled(center geom.Pos2, radius float32, fill color.Color32) CircleShape {
	return CircleShape{Center: center, Radius: radius, Fill: fill}
}

// CircleStroke returns an unfilled circle outline.
func CircleStroke(center geom.Pos2, radius float32, stroke Stroke) CircleShape {
	return CircleShape{Center: center, Radius: radius, Stroke: stroke}
}

// VisualBoundingRect is the smallest rectangle containing everything
// the shape paints, stroke and feathering excluded.
func (s CircleShape) VisualBoundingRect() geom.Rect {
	if s.Fill == color.Transparent && s.Stroke.IsEmpty() {
		return geom.RectNothing
	}
	r := s.Radius + s.Stroke.Width/2
	return geom.RectFromCenterSize(s.Center, geom.V2(2*r, 2*r))
}

// RectShape is an axis-aligned rectangle with optional rounded
// corners, fill and outline.
type RectShape struct {
	Rect         geom.Rect
	CornerRadius CornerRadius
	Fill         color.Color32
	Stroke       Stroke

	// StrokeKind places the outline on, inside or outside the
	// rectangle edge.
	StrokeKind StrokeKind
}

// RectFilled returns a filled rectangle without an outline.
func RectFilled(rect geom.Rect, cr CornerRadius, fill color.Color32) RectShape {
	return RectShape{Rect: rect, CornerRadius: cr, Fill: fill}
}

// RectStroke returns an unfilled rectangle outline.
func RectStroke(rect geom.Rect, cr CornerRadius, stroke Stroke) RectShape {
	return RectShape{Rect: rect, CornerRadius: cr, Stroke: stroke}
}

// VisualBoundingRect is the smallest rectangle containing everything
// the shape paints.
func (s RectShape) VisualBoundingRect() geom.Rect {
	if s.Fill == color.Transparent && s.Stroke.IsEmpty() {
		return geom.RectNothing
	}
	switch s.StrokeKind {
	case StrokeKindInside:
		return s.Rect
	case StrokeKindOutside:
		return s.Rect.Expand(s.Stroke.Width)
	default:
		return s.Rect.Expand(s.Stroke.Width / 2)
	}
}

// LineSegmentShape is a single straight stroked line.
type LineSegmentShape struct {
	A, B   geom.Pos2
	Stroke Stroke
}

// LineSegment returns a stroked segment from a to b.
func LineSegment(a, b geom.Pos2, stroke Stroke) LineSegmentShape {
	return LineSegmentShape{A: a, B: b, Stroke: stroke}
}

// VisualBoundingRect is the smallest rectangle containing the segment
// and its stroke width.
func (s LineSegmentShape) VisualBoundingRect() geom.Rect {
	return geom.RectFromTwoPos(s.A, s.B).Expand(s.Stroke.Width / 2)
}

// PathShape is a series of points forming an open polyline or a
// closed polygon. Only closed paths may be filled, and filled paths
// must be convex: the fill tessellator fans from the first vertex and
// paints concave outlines incorrectly.
type PathShape struct {
	Points []geom.Pos2
	Closed bool
	Fill   color.Color32
	Stroke Stroke
}

// PathLine returns an open stroked polyline through the given points.
func PathLine(points []geom.Pos2, stroke Stroke) PathShape {
	return PathShape{Points: points, Stroke: stroke}
}

// PathConvexPolygon returns a closed, filled and stroked polygon.
// The points must describe a convex outline.
func PathConvexPolygon(points []geom.Pos2, fill color.Color32, stroke Stroke) PathShape {
	return PathShape{Points: points, Closed: true, Fill: fill, Stroke: stroke}
}

// VisualBoundingRect is the smallest rectangle containing all points
// and the stroke width.
func (s PathShape) VisualBoundingRect() geom.Rect {
	if s.Fill == color.Transparent && s.Stroke.IsEmpty() {
		return geom.RectNothing
	}
	b := geom.RectNothing
	for _, p := range s.Points {
		b = b.ExtendWith(p)
	}
	return b.Expand(s.Stroke.Width / 2)
}

// TextShape positions an already laid out galley.
type TextShape struct {
	// Pos is the top left corner of the first row.
	Pos geom.Pos2

	Galley *Galley

	// Underline, if non-empty, is stroked under each row.
	// Use a width of 1 for a typical underline.
	Underline Stroke

	// FallbackColor replaces any placeholder color in the galley.
	FallbackColor color.Color32

	// OverrideTextColor, if set, replaces every glyph color.
	OverrideTextColor *color.Color32

	// Opacity multiplies the alpha of all colors, including any
	// override. In (0, 1]. Non-positive values, including the zero
	// value of a literal TextShape, paint fully opaque; use a small
	// positive value to fade text towards invisible.
	Opacity float32

	// Angle rotates the text clockwise around Pos, in radians.
	Angle float32
}

// Text returns a galley placed with its top left corner at pos,
// with placeholder colors resolved to fallback.
func Text(pos geom.Pos2, galley *Galley, fallback color.Color32) TextShape {
	return TextShape{Pos: pos, Galley: galley, FallbackColor: fallback, Opacity: 1}
}

// VisualBoundingRect is the galley rectangle at the shape position.
// Rotation is accounted for conservatively.
func (s TextShape) VisualBoundingRect() geom.Rect {
	if s.Galley == nil {
		return geom.RectNothing
	}
	r := s.Galley.Rect
	if s.Angle != 0 {
		r = r.RotateBB(geom.Rot2FromAngle(s.Angle))
	}
	return r.Translate(s.Pos.ToVec2())
}

// MeshShape passes a prebuilt mesh through tessellation unchanged.
type MeshShape struct {
	Mesh *Mesh
}

// VisualBoundingRect is the bounding rectangle of all mesh vertices.
func (s MeshShape) VisualBoundingRect() geom.Rect {
	if s.Mesh == nil {
		return geom.RectNothing
	}
	return s.Mesh.CalcBounds()
}

// CallbackShape is rendered by the backend itself; the tessellator
// passes it through as an opaque primitive.
type CallbackShape struct {
	// Rect is where the backend should paint, also used for culling.
	Rect geom.Rect

	// Callback is backend-defined. The paint core never inspects it.
	Callback any
}

// ShapeGroup paints the nested shapes in order.
type ShapeGroup []Shape

func (Noop) isShape()             {}
func (CircleShape) isShape()      {}
func (RectShape) isShape()        {}
func (LineSegmentShape) isShape() {}
func (PathShape) isShape()        {}
func (TextShape) isShape()        {}
func (MeshShape) isShape()        {}
func (CallbackShape) isShape()    {}
func (ShapeGroup) isShape()       {}
func (QuadraticBezierShape) isShape() {}
func (CubicBezierShape) isShape()     {}

// shapeTexture returns the texture a shape's mesh will sample.
// Everything except prebuilt meshes uses the font atlas.
func shapeTexture(s Shape) TextureID {
	if m, ok := s.(MeshShape); ok && m.Mesh != nil {
		return m.Mesh.Texture
	}
	return TextureID{}
}

// ClippedShape is a shape together with the clip rectangle the
// renderer must scissor it to.
type ClippedShape struct {
	ClipRect geom.Rect
	Shape    Shape
}

// Primitive is what a frame hands to the renderer: either a mesh or
// an opaque callback.
type Primitive interface {
	isPrimitive()
}

func (*Mesh) isPrimitive()         {}
func (CallbackShape) isPrimitive() {}

// ClippedPrimitive is the final output unit of tessellation.
type ClippedPrimitive struct {
	ClipRect  geom.Rect
	Primitive Primitive
}

// ShapeIdx refers to a reserved slot in a [ShapeList].
type ShapeIdx int

// ShapeList collects the shapes of one frame in paint order. A slot
// can be reserved up front with [ShapeList.Reserve] while its content
// is still unknown, then backfilled with [ShapeList.Set]; until then
// the slot holds a Noop and paints nothing.
type ShapeList struct {
	shapes []ClippedShape
}

// Add appends a shape and returns its slot index.
func (l *ShapeList) Add(clipRect geom.Rect, shape Shape) ShapeIdx {
	idx := ShapeIdx(len(l.shapes))
	l.shapes = append(l.shapes, ClippedShape{ClipRect: clipRect, Shape: shape})
	return idx
}

// Reserve appends an empty slot to be backfilled later.
func (l *ShapeList) Reserve(clipRect geom.Rect) ShapeIdx {
	return l.Add(clipRect, Noop{})
}

// Set overwrites a previously reserved slot in place.
func (l *ShapeList) Set(idx ShapeIdx, clipRect geom.Rect, shape Shape) {
	if idx < 0 || int(idx) >= len(l.shapes) {
		Logger().Warn("shape slot out of range", "idx", int(idx), "len", len(l.shapes))
		return
	}
	l.shapes[idx] = ClippedShape{ClipRect: clipRect, Shape: shape}
}

// Len returns the number of shapes, reserved slots included.
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the collected shapes in paint order.
func (l *ShapeList) Shapes() []ClippedShape {
	return l.shapes
}

// Clear empties the list, keeping allocated capacity.
func (l *ShapeList) Clear() {
	l.shapes = l.shapes[:0]
}
