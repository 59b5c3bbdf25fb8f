package paint

import (
	"testing"

	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

func TestCircleVisualBoundingRect(t *testing.T) {
	invisible := CircleFilled(geom.P2(10, 10), 5, color.Transparent)
	if got := invisible.VisualBoundingRect(); got != geom.RectNothing {
		t.Errorf("invisible circle bounds = %v", got)
	}

	filled := CircleFilled(geom.P2(10, 10), 5, color.White)
	want := geom.RectFromMinMax(geom.P2(5, 5), geom.P2(15, 15))
	if got := filled.VisualBoundingRect(); got != want {
		t.Errorf("filled circle bounds = %v, want %v", got, want)
	}

	stroked := CircleStroke(geom.P2(10, 10), 5, NewStroke(2, color.White))
	want = geom.RectFromMinMax(geom.P2(4, 4), geom.P2(16, 16))
	if got := stroked.VisualBoundingRect(); got != want {
		t.Errorf("stroked circle bounds = %v, want %v", got, want)
	}
}

func TestRectVisualBoundingRect(t *testing.T) {
	rect := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(10, 10))
	stroke := NewStroke(4, color.White)

	tests := []struct {
		name string
		kind StrokeKind
		want geom.Rect
	}{
		{"middle", StrokeKindMiddle, rect.Expand(2)},
		{"inside", StrokeKindInside, rect},
		{"outside", StrokeKindOutside, rect.Expand(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := RectStroke(rect, CornerRadiusZero, stroke)
			s.StrokeKind = tt.kind
			if got := s.VisualBoundingRect(); got != tt.want {
				t.Errorf("bounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineSegmentVisualBoundingRect(t *testing.T) {
	s := LineSegment(geom.P2(10, 0), geom.P2(0, 10), NewStroke(2, color.White))
	want := geom.RectFromMinMax(geom.P2(-1, -1), geom.P2(11, 11))
	if got := s.VisualBoundingRect(); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestPathVisualBoundingRect(t *testing.T) {
	points := []geom.Pos2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}

	invisible := PathLine(points, Stroke{})
	if got := invisible.VisualBoundingRect(); got != geom.RectNothing {
		t.Errorf("strokeless path bounds = %v", got)
	}

	poly := PathConvexPolygon(points, color.White, Stroke{})
	want := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(10, 8))
	if got := poly.VisualBoundingRect(); got != want {
		t.Errorf("polygon bounds = %v, want %v", got, want)
	}
}

func TestTextVisualBoundingRect(t *testing.T) {
	var nilGalley TextShape
	if got := nilGalley.VisualBoundingRect(); got != geom.RectNothing {
		t.Errorf("nil galley bounds = %v", got)
	}

	galley := &Galley{Rect: geom.RectFromMinMax(geom.P2(0, 0), geom.P2(40, 12))}
	s := Text(geom.P2(100, 200), galley, color.White)
	want := geom.RectFromMinMax(geom.P2(100, 200), geom.P2(140, 212))
	if got := s.VisualBoundingRect(); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestShapeList(t *testing.T) {
	var list ShapeList
	clip := geom.RectEverything

	idx := list.Reserve(clip)
	list.Add(clip, CircleFilled(geom.P2(0, 0), 1, color.White))
	if list.Len() != 2 {
		t.Fatalf("Len = %d", list.Len())
	}

	// The reserved slot paints nothing until backfilled.
	if _, ok := list.Shapes()[idx].Shape.(Noop); !ok {
		t.Errorf("reserved slot holds %T", list.Shapes()[idx].Shape)
	}

	list.Set(idx, clip, LineSegment(geom.P2(0, 0), geom.P2(1, 1), NewStroke(1, color.White)))
	if _, ok := list.Shapes()[idx].Shape.(LineSegmentShape); !ok {
		t.Errorf("backfilled slot holds %T", list.Shapes()[idx].Shape)
	}

	// Out-of-range Set is reported, not fatal.
	list.Set(99, clip, Noop{})
	list.Set(-1, clip, Noop{})

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Len after Clear = %d", list.Len())
	}
}

func TestShapeTexture(t *testing.T) {
	circle := CircleFilled(geom.P2(0, 0), 1, color.White)
	if got := shapeTexture(circle); got != (TextureID{}) {
		t.Errorf("circle texture = %v, want the managed atlas", got)
	}

	mesh := &Mesh{Texture: UserTextureID(7)}
	if got := shapeTexture(MeshShape{Mesh: mesh}); got != UserTextureID(7) {
		t.Errorf("mesh texture = %v", got)
	}
}
