package paint

import (
	"testing"

	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

func TestAddCirclePointCounts(t *testing.T) {
	tests := []struct {
		radius float32
		want   int
	}{
		{1, 8},
		{2, 8},
		{3, 16},
		{5, 16},
		{10, 32},
		{17.9, 32},
		{18, 64},
		{49, 64},
		{50, 128},
		{500, 128},
	}

	for _, tt := range tests {
		var p Path
		p.AddCircle(geom.P2(0, 0), tt.radius)
		if got := len(p.points); got != tt.want {
			t.Errorf("AddCircle(r=%v) = %d points, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestAddCirclePointCountsMonotone(t *testing.T) {
	prev := 0
	for radius := float32(0.5); radius < 200; radius *= 1.3 {
		var p Path
		p.AddCircle(geom.P2(0, 0), radius)
		if len(p.points) < prev {
			t.Fatalf("point count dropped from %d to %d at radius %v",
				prev, len(p.points), radius)
		}
		prev = len(p.points)
	}
}

func TestAddCirclePointsOnCircle(t *testing.T) {
	const radius = 10
	center := geom.P2(3, 4)

	var p Path
	p.AddCircle(center, radius)
	for i, pt := range p.points {
		d := pt.Pos.Distance(center)
		if abs32(d-radius) > 1e-3 {
			t.Errorf("point %d at distance %v from center, want %v", i, d, radius)
		}
		// Normals point outward.
		outward := pt.Pos.Sub(center).Normalized()
		if pt.Normal.Sub(outward).Length() > 1e-3 {
			t.Errorf("point %d normal %v, want %v", i, pt.Normal, outward)
		}
	}
}

func TestRoundedRectPointsSharpCorners(t *testing.T) {
	rect := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(10, 20))
	pts := RoundedRectPoints(nil, rect, CornerRadiusZero)
	if len(pts) != 4 {
		t.Fatalf("zero radius should give 4 corner points, got %d", len(pts))
	}
	// Clockwise on screen, starting at the bottom right quadrant.
	if cw := signedAreaOf(pts); cw <= 0 {
		t.Errorf("corner loop not clockwise, signed area %v", cw)
	}
}

func TestRoundedRectPointsRounded(t *testing.T) {
	rect := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(100, 100))
	pts := RoundedRectPoints(nil, rect, CornerRadiusSame(10))
	if len(pts) <= 4 {
		t.Fatalf("rounded corners should add arc points, got %d", len(pts))
	}
	for i, pt := range pts {
		if pt.X < -1e-3 || pt.X > 100+1e-3 || pt.Y < -1e-3 || pt.Y > 100+1e-3 {
			t.Errorf("point %d = %v outside the rect", i, pt)
		}
	}
}

func TestRoundedRectPointsClampsRadius(t *testing.T) {
	// Radius larger than half the rect must be clamped, not overlap.
	rect := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(10, 10))
	pts := RoundedRectPoints(nil, rect, CornerRadiusSame(200))
	for i, pt := range pts {
		if pt.X < -1e-3 || pt.X > 10+1e-3 || pt.Y < -1e-3 || pt.Y > 10+1e-3 {
			t.Errorf("point %d = %v escapes the rect", i, pt)
		}
	}
}

func TestFillWindingIndependent(t *testing.T) {
	square := []geom.Pos2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	reversed := []geom.Pos2{
		{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0},
	}

	var a, b Mesh
	var p Path

	p.AddLineLoop(square)
	p.Fill(0, color.White, &a)

	p.Clear()
	p.AddLineLoop(reversed)
	p.Fill(0, color.White, &b)

	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		t.Errorf("winding changed output size: %d/%d vs %d/%d vertices/indices",
			len(a.Vertices), len(a.Indices), len(b.Vertices), len(b.Indices))
	}
	if a.CalcBounds() != b.CalcBounds() {
		t.Errorf("winding changed bounds: %v vs %v", a.CalcBounds(), b.CalcBounds())
	}
}

func TestFillWithoutFeathering(t *testing.T) {
	square := []geom.Pos2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	var p Path
	p.AddLineLoop(square)

	var m Mesh
	p.Fill(0, color.White, &m)
	if len(m.Vertices) != 4 {
		t.Errorf("unfeathered fan over 4 points = %d vertices, want 4", len(m.Vertices))
	}
	if len(m.Indices) != 6 {
		t.Errorf("unfeathered fan over 4 points = %d indices, want 6", len(m.Indices))
	}
}

func TestFillWithFeathering(t *testing.T) {
	square := []geom.Pos2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	var p Path
	p.AddLineLoop(square)

	const feathering = 1.0
	var m Mesh
	p.Fill(feathering, color.White, &m)

	// Inner + outer ring.
	if len(m.Vertices) != 8 {
		t.Fatalf("feathered fill = %d vertices, want 8", len(m.Vertices))
	}
	// Outer ring vertices are transparent; inner keep the fill color.
	opaque, transparent := 0, 0
	for _, v := range m.Vertices {
		switch v.Color {
		case color.White:
			opaque++
		case color.Transparent:
			transparent++
		}
	}
	if opaque != 4 || transparent != 4 {
		t.Errorf("feathered ring colors: %d opaque, %d transparent; want 4 and 4", opaque, transparent)
	}
	// No vertex strays more than the feathering from the edge, even
	// with miter extension at the corners.
	bounds := m.CalcBounds()
	limit := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(10, 10)).Expand(feathering)
	if !limit.ContainsRect(bounds) {
		t.Errorf("feathered bounds %v exceed %v", bounds, limit)
	}
}

func TestStrokeOpenPath(t *testing.T) {
	points := []geom.Pos2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 5}}
	stroke := NewStroke(2, color.White)

	var p Path
	p.AddOpenPoints(points)

	var m Mesh
	p.StrokeOpen(1.0, stroke, &m)
	if m.IsEmpty() {
		t.Fatal("stroking produced nothing")
	}
	if !m.IsValid() {
		t.Error("stroke mesh invalid")
	}
}

func TestStrokeEmptyStrokeNoOutput(t *testing.T) {
	var p Path
	p.AddLineSegment(geom.P2(0, 0), geom.P2(10, 0))

	var m Mesh
	p.StrokeOpen(1.0, Stroke{}, &m)
	if !m.IsEmpty() {
		t.Errorf("empty stroke emitted %d vertices", len(m.Vertices))
	}
}

func TestThinStrokeFades(t *testing.T) {
	// Width below the feathering renders as a faded feathering-wide line.
	var p Path
	p.AddLineSegment(geom.P2(0, 0), geom.P2(10, 0))

	var m Mesh
	p.StrokeOpen(2.0, NewStroke(0.5, color.White), &m)
	if m.IsEmpty() {
		t.Fatal("thin stroke produced nothing")
	}
	for _, v := range m.Vertices {
		if v.Color == color.White {
			t.Fatal("thin stroke should fade the color, found full white")
		}
	}
}

func signedAreaOf(pts []geom.Pos2) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += float64(pts[i].X)*float64(pts[j].Y) - float64(pts[j].X)*float64(pts[i].Y)
	}
	return area / 2
}
