package paint

import (
	"math"

	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// Precomputed unit circles at a few fixed point counts. Each table has
// one extra entry duplicating the first point so that quadrant slices
// can be taken inclusively.
var (
	circle8   [9]geom.Vec2
	circle16  [17]geom.Vec2
	circle32  [33]geom.Vec2
	circle64  [65]geom.Vec2
	circle128 [129]geom.Vec2
)

func init() {
	fillCircleTable(circle8[:])
	fillCircleTable(circle16[:])
	fillCircleTable(circle32[:])
	fillCircleTable(circle64[:])
	fillCircleTable(circle128[:])
}

func fillCircleTable(out []geom.Vec2) {
	n := len(out) - 1
	for i := 0; i <= n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		s, c := math.Sincos(angle)
		out[i] = geom.Vec2{X: float32(c), Y: float32(s)}
	}
}

// PathPoint is one vertex of a flattened outline together with its
// outward unit normal. Normals drive both stroke extrusion and
// feathering.
type PathPoint struct {
	Pos geom.Pos2

	// Normal is the outward edge normal, unit length except at miter
	// joins where it is scaled to preserve stroke width.
	Normal geom.Vec2
}

// PathType says whether a polyline returns to its first point.
type PathType uint8

const (
	// PathOpen is a polyline with two free ends.
	PathOpen PathType = iota
	// PathClosed is a loop: the last point connects back to the first.
	PathClosed
)

// Path is a connected line without thickness, used as a scratch-pad
// during tessellation. It can be stroked or filled as a convex area.
type Path struct {
	points []PathPoint
}

// Clear empties the path, keeping allocated capacity.
func (p *Path) Clear() {
	p.points = p.points[:0]
}

// Reserve grows capacity for additional points.
func (p *Path) Reserve(additional int) {
	p.points = growCap(p.points, additional)
}

// AddPoint appends one point with an explicit normal.
func (p *Path) AddPoint(pos geom.Pos2, normal geom.Vec2) {
	p.points = append(p.points, PathPoint{Pos: pos, Normal: normal})
}

// AddCircle appends a full circle outline. The point count scales with
// the radius: tiny circles become octagons, large ones use up to 128
// points.
func (p *Path) AddCircle(center geom.Pos2, radius float32) {
	table := circleTable(radius)
	// Skip the duplicated wrap-around entry.
	table = table[:len(table)-1]
	p.Reserve(len(table))
	for _, n := range table {
		p.AddPoint(center.Add(n.Mul(radius)), n)
	}
}

// circleTable picks the precomputed unit circle for a radius in points.
// The cutoffs assume a high-dpi display.
func circleTable(radius float32) []geom.Vec2 {
	switch {
	case radius <= 2:
		return circle8[:]
	case radius <= 5:
		return circle16[:]
	case radius < 18:
		return circle32[:]
	case radius < 50:
		return circle64[:]
	default:
		return circle128[:]
	}
}

// AddLineSegment appends a two-point open path.
func (p *Path) AddLineSegment(a, b geom.Pos2) {
	p.Reserve(2)
	normal := b.Sub(a).Normalized().Rot90()
	p.AddPoint(a, normal)
	p.AddPoint(b, normal)
}

// AddOpenPoints appends an open polyline, computing miter normals at
// interior points. Corners sharper than a right angle are cut off to
// keep the miters bounded.
func (p *Path) AddOpenPoints(points []geom.Pos2) {
	n := len(points)
	if n < 2 {
		return
	}
	if n == 2 {
		p.AddLineSegment(points[0], points[1])
		return
	}

	p.Reserve(n)
	p.AddPoint(points[0], points[1].Sub(points[0]).Normalized().Rot90())
	n0 := points[1].Sub(points[0]).Normalized().Rot90()
	for i := 1; i < n-1; i++ {
		n1 := points[i+1].Sub(points[i]).Normalized().Rot90()

		// Handle duplicated points (but not triplicated ones):
		if n0 == (geom.Vec2{}) {
			n0 = n1
		} else if n1 == (geom.Vec2{}) {
			n1 = n0
		}

		normal := n0.Add(n1).Mul(0.5)
		lengthSq := normal.LengthSq()
		const rightAngleLengthSq = 0.5
		if lengthSq < rightAngleLengthSq {
			// Cut off the sharp corner:
			centerNormal := normal.Normalized()
			n0c := n0.Add(centerNormal).Mul(0.5)
			n1c := n1.Add(centerNormal).Mul(0.5)
			p.AddPoint(points[i], n0c.Div(n0c.LengthSq()))
			p.AddPoint(points[i], n1c.Div(n1c.LengthSq()))
		} else {
			// Miter join:
			p.AddPoint(points[i], normal.Div(lengthSq))
		}

		n0 = n1
	}
	p.AddPoint(points[n-1], points[n-1].Sub(points[n-2]).Normalized().Rot90())
}

// AddLineLoop appends a closed polyline with miter normals at every
// point. Sharp corners are not cut off here: feathering both expands
// and contracts along the normals, and cutting would make the
// contracted points cross each other.
func (p *Path) AddLineLoop(points []geom.Pos2) {
	n := len(points)
	if n < 2 {
		return
	}
	p.Reserve(n)

	n0 := points[0].Sub(points[n-1]).Normalized().Rot90()
	for i := 0; i < n; i++ {
		nextI := i + 1
		if nextI == n {
			nextI = 0
		}
		n1 := points[nextI].Sub(points[i]).Normalized().Rot90()

		// Handle duplicated points (but not triplicated ones):
		if n0 == (geom.Vec2{}) {
			n0 = n1
		} else if n1 == (geom.Vec2{}) {
			n1 = n0
		}

		normal := n0.Add(n1).Mul(0.5)
		lengthSq := normal.LengthSq()
		p.AddPoint(points[i], normal.Div(lengthSq))

		n0 = n1
	}
}

// StrokeOpen tessellates the path as an open-ended stroke into out.
func (p *Path) StrokeOpen(feathering float32, stroke Stroke, out *Mesh) {
	strokePath(feathering, p.points, PathOpen, stroke, out)
}

// StrokeClosed tessellates the path as a closed stroke into out.
func (p *Path) StrokeClosed(feathering float32, stroke Stroke, out *Mesh) {
	strokePath(feathering, p.points, PathClosed, stroke, out)
}

// Stroke tessellates the path with the given end treatment.
func (p *Path) Stroke(feathering float32, pathType PathType, stroke Stroke, out *Mesh) {
	strokePath(feathering, p.points, pathType, stroke, out)
}

// Fill tessellates the path as a filled convex area. The path is taken
// to be closed. May reverse the stored points to fix winding order;
// the preferred winding is clockwise.
func (p *Path) Fill(feathering float32, fill color.Color32, out *Mesh) {
	fillClosedPath(feathering, p.points, fill, out)
}

// RoundedRectPoints overwrites out with the outline of a rectangle
// with rounded corners and returns it. A zero corner radius yields a
// plain right angle. The outline starts at the bottom right corner and
// runs clockwise on screen, the preferred winding for fills.
func RoundedRectPoints(out []geom.Pos2, rect geom.Rect, cr CornerRadius) []geom.Pos2 {
	out = out[:0]

	min := rect.Min
	max := rect.Max

	r := clampCornerRadius(cr, rect)

	if r == (cornerRadiusF32{}) {
		out = append(out,
			geom.P2(min.X, min.Y),
			geom.P2(max.X, min.Y),
			geom.P2(max.X, max.Y),
			geom.P2(min.X, max.Y),
		)
		return out
	}

	// Quadrant order: bottom right, bottom left, top left, top right.
	out = addCircleQuadrant(out, geom.P2(max.X-r.se, max.Y-r.se), r.se, 0)
	out = addCircleQuadrant(out, geom.P2(min.X+r.sw, max.Y-r.sw), r.sw, 1)
	out = addCircleQuadrant(out, geom.P2(min.X+r.nw, min.Y+r.nw), r.nw, 2)
	out = addCircleQuadrant(out, geom.P2(max.X-r.ne, min.Y+r.ne), r.ne, 3)
	return out
}

// addCircleQuadrant appends one quarter of a circle outline.
//
//   - quadrant 0: right bottom
//   - quadrant 1: left bottom
//   - quadrant 2: left top
//   - quadrant 3: right top
//
// A zero radius degenerates the arc to its corner point.
func addCircleQuadrant(out []geom.Pos2, center geom.Pos2, radius float32, quadrant int) []geom.Pos2 {
	if radius <= 0 {
		return append(out, center)
	}
	table := circleTable(radius)
	quarter := (len(table) - 1) / 4
	offset := quadrant * quarter
	for i := offset; i <= offset+quarter; i++ {
		n := table[i]
		out = append(out, center.Add(n.Mul(radius)))
	}
	return out
}

// cornerRadiusF32 is a corner radius clamped to fit a concrete rect.
type cornerRadiusF32 struct {
	nw, ne, sw, se float32
}

func clampCornerRadius(cr CornerRadius, rect geom.Rect) cornerRadiusF32 {
	halfWidth := rect.Width() * 0.5
	halfHeight := rect.Height() * 0.5
	maxCr := halfWidth
	if halfHeight < maxCr {
		maxCr = halfHeight
	}
	if maxCr < 0 {
		maxCr = 0
	}
	clamp := func(r uint8) float32 {
		f := float32(r)
		if f > maxCr {
			return maxCr
		}
		return f
	}
	return cornerRadiusF32{
		nw: clamp(cr.NW),
		ne: clamp(cr.NE),
		sw: clamp(cr.SW),
		se: clamp(cr.SE),
	}
}

// cwSignedArea is positive when the path winds clockwise in the
// y-down coordinate system.
func cwSignedArea(path []PathPoint) float64 {
	if len(path) == 0 {
		return 0
	}
	previous := path[len(path)-1].Pos
	area := 0.0
	for _, p := range path {
		area += float64(previous.X*p.Pos.Y - p.Pos.X*previous.Y)
		previous = p.Pos
	}
	return area
}

// fillClosedPath triangulates a convex area with a fan from the first
// vertex. With feathering, a second ring of transparent vertices is
// added just outside the outline so edges fade over one pixel.
//
// Concave paths are not detected and tessellate incorrectly; callers
// are expected to hand in convex or star-shaped outlines.
func fillClosedPath(feathering float32, path []PathPoint, fill color.Color32, out *Mesh) {
	if fill == color.Transparent {
		return
	}

	n := uint32(len(path))
	if n < 3 {
		return
	}

	if feathering > 0 {
		if cwSignedArea(path) < 0 {
			// Wrong winding order. Fix:
			reversePath(path)
		}

		out.Reserve(3*int(n), 2*int(n))
		colorOuter := color.Transparent
		idxInner := uint32(len(out.Vertices))
		idxOuter := idxInner + 1

		// The fill:
		for i := uint32(2); i < n; i++ {
			out.AddTriangle(idxInner+2*(i-1), idxInner, idxInner+2*i)
		}

		// The feathering:
		i0 := n - 1
		for i1 := uint32(0); i1 < n; i1++ {
			p1 := &path[i1]
			dm := p1.Normal.Mul(0.5 * feathering)
			out.Vertices = append(out.Vertices,
				ColoredVertex(p1.Pos.SubVec(dm), fill),
				ColoredVertex(p1.Pos.Add(dm), colorOuter),
			)
			out.AddTriangle(idxInner+i1*2, idxInner+i0*2, idxOuter+2*i0)
			out.AddTriangle(idxOuter+i0*2, idxOuter+i1*2, idxInner+2*i1)
			i0 = i1
		}
	} else {
		out.Reserve(int(n), int(n))
		idx := uint32(len(out.Vertices))
		for _, p := range path {
			out.Vertices = append(out.Vertices, ColoredVertex(p.Pos, fill))
		}
		for i := uint32(2); i < n; i++ {
			out.AddTriangle(idx, idx+i-1, idx+i)
		}
	}
}

func reversePath(path []PathPoint) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i := range path {
		path[i].Normal = path[i].Normal.Neg()
	}
}

// strokePath extrudes a polyline into a ribbon of the stroke's width.
// Strokes thinner than the feathering band are not made thinner but
// faded out instead, which reads better at subpixel widths.
func strokePath(feathering float32, path []PathPoint, pathType PathType, stroke Stroke, out *Mesh) {
	n := uint32(len(path))

	if stroke.Width <= 0 || stroke.Color == color.Transparent || n < 2 {
		return
	}

	idx := uint32(len(out.Vertices))

	if feathering > 0 {
		colorInner := stroke.Color
		colorOuter := color.Transparent

		thinLine := stroke.Width <= feathering
		if thinLine {
			// Three edges per point: outer, inner, outer.

			// Fade out as it gets thinner:
			colorInner = mulColor(colorInner, stroke.Width/feathering)
			if colorInner == color.Transparent {
				return
			}

			out.Reserve(4*int(n), 3*int(n))

			i0 := n - 1
			for i1 := uint32(0); i1 < n; i1++ {
				connectWithPrevious := pathType == PathClosed || i1 > 0
				p1 := &path[i1]
				p := p1.Pos
				nrm := p1.Normal
				out.Vertices = append(out.Vertices,
					ColoredVertex(p.Add(nrm.Mul(feathering)), colorOuter),
					ColoredVertex(p, colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(feathering)), colorOuter),
				)

				if connectWithPrevious {
					out.AddTriangle(idx+3*i0+0, idx+3*i0+1, idx+3*i1+0)
					out.AddTriangle(idx+3*i0+1, idx+3*i1+0, idx+3*i1+1)

					out.AddTriangle(idx+3*i0+1, idx+3*i0+2, idx+3*i1+1)
					out.AddTriangle(idx+3*i0+2, idx+3*i1+1, idx+3*i1+2)
				}
				i0 = i1
			}
			return
		}

		// Thick anti-aliased line: four edges per point, the outer
		// pair fading to transparent.
		innerRad := 0.5 * (stroke.Width - feathering)
		outerRad := 0.5 * (stroke.Width + feathering)

		switch pathType {
		case PathClosed:
			out.Reserve(6*int(n), 4*int(n))

			i0 := n - 1
			for i1 := uint32(0); i1 < n; i1++ {
				p1 := &path[i1]
				p := p1.Pos
				nrm := p1.Normal
				out.Vertices = append(out.Vertices,
					ColoredVertex(p.Add(nrm.Mul(outerRad)), colorOuter),
					ColoredVertex(p.Add(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(outerRad)), colorOuter),
				)

				out.AddTriangle(idx+4*i0+0, idx+4*i0+1, idx+4*i1+0)
				out.AddTriangle(idx+4*i0+1, idx+4*i1+0, idx+4*i1+1)

				out.AddTriangle(idx+4*i0+1, idx+4*i0+2, idx+4*i1+1)
				out.AddTriangle(idx+4*i0+2, idx+4*i1+1, idx+4*i1+2)

				out.AddTriangle(idx+4*i0+2, idx+4*i0+3, idx+4*i1+2)
				out.AddTriangle(idx+4*i0+3, idx+4*i1+2, idx+4*i1+3)

				i0 = i1
			}

		case PathOpen:
			// Anti-alias the ends by extruding the outer edge and
			// capping with two extra triangles per end.
			out.Reserve(6*int(n)+4, 4*int(n))

			{
				end := &path[0]
				p := end.Pos
				nrm := end.Normal
				backExtrude := nrm.Rot90().Mul(feathering)
				out.Vertices = append(out.Vertices,
					ColoredVertex(p.Add(nrm.Mul(outerRad)).Add(backExtrude), colorOuter),
					ColoredVertex(p.Add(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(outerRad)).Add(backExtrude), colorOuter),
				)

				out.AddTriangle(idx+0, idx+1, idx+2)
				out.AddTriangle(idx+0, idx+2, idx+3)
			}

			i0 := uint32(0)
			for i1 := uint32(1); i1 < n-1; i1++ {
				point := &path[i1]
				p := point.Pos
				nrm := point.Normal
				out.Vertices = append(out.Vertices,
					ColoredVertex(p.Add(nrm.Mul(outerRad)), colorOuter),
					ColoredVertex(p.Add(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(outerRad)), colorOuter),
				)

				out.AddTriangle(idx+4*i0+0, idx+4*i0+1, idx+4*i1+0)
				out.AddTriangle(idx+4*i0+1, idx+4*i1+0, idx+4*i1+1)

				out.AddTriangle(idx+4*i0+1, idx+4*i0+2, idx+4*i1+1)
				out.AddTriangle(idx+4*i0+2, idx+4*i1+1, idx+4*i1+2)

				out.AddTriangle(idx+4*i0+2, idx+4*i0+3, idx+4*i1+2)
				out.AddTriangle(idx+4*i0+3, idx+4*i1+2, idx+4*i1+3)

				i0 = i1
			}

			{
				i1 := n - 1
				end := &path[i1]
				p := end.Pos
				nrm := end.Normal
				backExtrude := nrm.Rot90().Mul(-feathering)
				out.Vertices = append(out.Vertices,
					ColoredVertex(p.Add(nrm.Mul(outerRad)).Add(backExtrude), colorOuter),
					ColoredVertex(p.Add(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(innerRad)), colorInner),
					ColoredVertex(p.SubVec(nrm.Mul(outerRad)).Add(backExtrude), colorOuter),
				)

				out.AddTriangle(idx+4*i0+0, idx+4*i0+1, idx+4*i1+0)
				out.AddTriangle(idx+4*i0+1, idx+4*i1+0, idx+4*i1+1)

				out.AddTriangle(idx+4*i0+1, idx+4*i0+2, idx+4*i1+1)
				out.AddTriangle(idx+4*i0+2, idx+4*i1+1, idx+4*i1+2)

				out.AddTriangle(idx+4*i0+2, idx+4*i0+3, idx+4*i1+2)
				out.AddTriangle(idx+4*i0+3, idx+4*i1+2, idx+4*i1+3)

				// The end cap:
				out.AddTriangle(idx+4*i1+0, idx+4*i1+1, idx+4*i1+2)
				out.AddTriangle(idx+4*i1+0, idx+4*i1+2, idx+4*i1+3)
			}
		}
		return
	}

	// Not anti-aliased:
	out.Reserve(2*int(n), 2*int(n))

	lastIndex := n - 1
	if pathType == PathClosed {
		lastIndex = n
	}
	for i := uint32(0); i < lastIndex; i++ {
		out.AddTriangle(
			idx+(2*i+0)%(2*n),
			idx+(2*i+1)%(2*n),
			idx+(2*i+2)%(2*n),
		)
		out.AddTriangle(
			idx+(2*i+2)%(2*n),
			idx+(2*i+1)%(2*n),
			idx+(2*i+3)%(2*n),
		)
	}

	radius := stroke.Width / 2
	for _, p := range path {
		out.Vertices = append(out.Vertices,
			ColoredVertex(p.Pos.Add(p.Normal.Mul(radius)), stroke.Color),
			ColoredVertex(p.Pos.SubVec(p.Normal.Mul(radius)), stroke.Color),
		)
	}
}

func mulColor(c color.Color32, factor float32) color.Color32 {
	// Premultiplied alpha means a round trip through linear space.
	return c.LinearMultiply(factor)
}

func roundF32(x float32) float32 {
	return float32(math.Round(float64(x)))
}
