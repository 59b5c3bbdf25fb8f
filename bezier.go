package paint

import (
	"math"

	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// QuadraticBezierShape is a quadratic Bézier curve.
//
// Points[0] is the start, Points[1] the control point and Points[2]
// the end of the curve.
type QuadraticBezierShape struct {
	Points [3]geom.Pos2
	Closed bool

	Fill   color.Color32
	Stroke Stroke
}

// QuadraticBezier builds a quadratic Bézier shape from its three
// points in [start, control, end] order.
func QuadraticBezier(points [3]geom.Pos2, closed bool, fill color.Color32, stroke Stroke) QuadraticBezierShape {
	return QuadraticBezierShape{
		Points: points,
		Closed: closed,
		Fill:   fill,
		Stroke: stroke,
	}
}

// Sample evaluates the curve at t in [0, 1].
func (s *QuadraticBezierShape) Sample(t float32) geom.Pos2 {
	h := 1 - t
	a := t * t
	b := 2 * t * h
	c := h * h
	v := s.Points[2].ToVec2().Mul(a).
		Add(s.Points[1].ToVec2().Mul(b)).
		Add(s.Points[0].ToVec2().Mul(c))
	return v.ToPos2()
}

// VisualBoundingRect includes the stroke width.
func (s *QuadraticBezierShape) VisualBoundingRect() geom.Rect {
	if s.Fill == color.Transparent && s.Stroke.IsEmpty() {
		return geom.RectNothing
	}
	return s.LogicalBoundingRect().Expand(s.Stroke.Width / 2)
}

// LogicalBoundingRect is the tight bounding rectangle of the curve
// itself, ignoring the stroke width.
func (s *QuadraticBezierShape) LogicalBoundingRect() geom.Rect {
	minX, maxX := minMax(s.Points[0].X, s.Points[2].X)
	minY, maxY := minMax(s.Points[0].Y, s.Points[2].Y)

	quadraticLocalExtrema(s.Points[0].X, s.Points[1].X, s.Points[2].X, func(t float32) {
		x := s.Sample(t).X
		minX = min(minX, x)
		maxX = max(maxX, x)
	})
	quadraticLocalExtrema(s.Points[0].Y, s.Points[1].Y, s.Points[2].Y, func(t float32) {
		y := s.Sample(t).Y
		minY = min(minY, y)
		maxY = max(maxY, y)
	})

	return geom.Rect{
		Min: geom.Pos2{X: minX, Y: minY},
		Max: geom.Pos2{X: maxX, Y: maxY},
	}
}

// ToPathShape flattens the curve into a PathShape.
// A tolerance <= 0 picks a default from the curve extent.
func (s *QuadraticBezierShape) ToPathShape(tolerance float32) PathShape {
	return PathShape{
		Points: s.Flatten(tolerance),
		Closed: s.Closed,
		Fill:   s.Fill,
		Stroke: s.Stroke,
	}
}

// Flatten approximates the curve with a polyline. The number of
// points grows as the tolerance shrinks; the t values are not evenly
// spaced. A tolerance <= 0 picks a default from the curve extent.
func (s *QuadraticBezierShape) Flatten(tolerance float32) []geom.Pos2 {
	if tolerance <= 0 {
		tolerance = abs32(s.Points[0].X-s.Points[2].X) * 0.001
	}
	result := []geom.Pos2{s.Points[0]}
	s.ForEachFlattened(tolerance, func(p geom.Pos2, _ float32) {
		result = append(result, p)
	})
	return result
}

// ForEachFlattened walks the flattened curve, invoking the callback
// with each point and its curve parameter. The start point at t=0 is
// not reported.
//
// This implements the analytic flattening described by Raph Levien at
// https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
func (s *QuadraticBezierShape) ForEachFlattened(tolerance float32, callback func(geom.Pos2, float32)) {
	params := flatteningParametersFor(s, tolerance)
	if params.isPoint {
		return
	}

	count := uint32(params.count)
	for i := uint32(1); i < count; i++ {
		t := params.tAtIteration(float32(i))
		callback(s.Sample(t), t)
	}
	callback(s.Sample(1), 1)
}

// CubicBezierShape is a cubic Bézier curve.
//
// Points[0] is the start and Points[3] the end of the curve; the two
// middle points are the control points.
type CubicBezierShape struct {
	Points [4]geom.Pos2
	Closed bool

	Fill   color.Color32
	Stroke Stroke
}

// CubicBezier builds a cubic Bézier shape from its four points in
// [start, control1, control2, end] order.
func CubicBezier(points [4]geom.Pos2, closed bool, fill color.Color32, stroke Stroke) CubicBezierShape {
	return CubicBezierShape{
		Points: points,
		Closed: closed,
		Fill:   fill,
		Stroke: stroke,
	}
}

// Sample evaluates the curve at t in [0, 1].
func (s *CubicBezierShape) Sample(t float32) geom.Pos2 {
	h := 1 - t
	a := t * t * t
	b := 3 * t * t * h
	c := 3 * t * h * h
	d := h * h * h
	v := s.Points[3].ToVec2().Mul(a).
		Add(s.Points[2].ToVec2().Mul(b)).
		Add(s.Points[1].ToVec2().Mul(c)).
		Add(s.Points[0].ToVec2().Mul(d))
	return v.ToPos2()
}

// VisualBoundingRect includes the stroke width.
func (s *CubicBezierShape) VisualBoundingRect() geom.Rect {
	if s.Fill == color.Transparent && s.Stroke.IsEmpty() {
		return geom.RectNothing
	}
	return s.LogicalBoundingRect().Expand(s.Stroke.Width / 2)
}

// LogicalBoundingRect is the tight bounding rectangle of the curve
// itself, ignoring the stroke width.
func (s *CubicBezierShape) LogicalBoundingRect() geom.Rect {
	minX, maxX := minMax(s.Points[0].X, s.Points[3].X)
	minY, maxY := minMax(s.Points[0].Y, s.Points[3].Y)

	cubicLocalExtrema(s.Points[0].X, s.Points[1].X, s.Points[2].X, s.Points[3].X, func(t float32) {
		x := s.Sample(t).X
		minX = min(minX, x)
		maxX = max(maxX, x)
	})
	cubicLocalExtrema(s.Points[0].Y, s.Points[1].Y, s.Points[2].Y, s.Points[3].Y, func(t float32) {
		y := s.Sample(t).Y
		minY = min(minY, y)
		maxY = max(maxY, y)
	})

	return geom.Rect{
		Min: geom.Pos2{X: minX, Y: minY},
		Max: geom.Pos2{X: maxX, Y: maxY},
	}
}

// ToPathShapes flattens the curve into one or two PathShapes. A closed
// curve that crosses its own base line is split at the crossing so
// each half can be filled on its own; any other curve yields a single
// shape. Non-positive tolerance and epsilon pick defaults.
func (s *CubicBezierShape) ToPathShapes(tolerance, epsilon float32) []PathShape {
	pointLists := s.FlattenClosed(tolerance, epsilon)
	shapes := make([]PathShape, 0, len(pointLists))
	for _, points := range pointLists {
		shapes = append(shapes, PathShape{
			Points: points,
			Closed: s.Closed,
			Fill:   s.Fill,
			Stroke: s.Stroke,
		})
	}
	return shapes
}

// Flatten approximates the curve with a polyline. The number of
// points grows as the tolerance shrinks; the t values are not evenly
// spaced. A tolerance <= 0 picks a default from the curve extent.
func (s *CubicBezierShape) Flatten(tolerance float32) []geom.Pos2 {
	if tolerance <= 0 {
		tolerance = abs32(s.Points[0].X-s.Points[3].X) * 0.001
	}
	result := []geom.Pos2{s.Points[0]}
	s.ForEachFlattened(tolerance, func(p geom.Pos2, _ float32) {
		result = append(result, p)
	})
	return result
}

// FlattenClosed flattens the curve like Flatten, but when the curve is
// closed and crosses the line from its start to its end point, the
// polyline is split at the crossing. Filling relies on a fan from the
// first point, which only works when each half stays on one side of
// the base line.
func (s *CubicBezierShape) FlattenClosed(tolerance, epsilon float32) [][]geom.Pos2 {
	if tolerance <= 0 {
		tolerance = abs32(s.Points[0].X-s.Points[3].X) * 0.001
	}
	if epsilon <= 0 {
		epsilon = 1.0e-5
	}

	firstHalf := []geom.Pos2{s.Points[0]}
	var secondHalf []geom.Pos2

	cross, hasCross := s.findCrossT(epsilon)
	if hasCross && s.Closed {
		flipped := false
		s.ForEachFlattened(tolerance, func(p geom.Pos2, t float32) {
			if t < cross {
				firstHalf = append(firstHalf, p)
				return
			}
			if !flipped {
				// The crossing point ends the first half and
				// starts the second.
				flipped = true
				crossPoint := s.Sample(cross)
				firstHalf = append(firstHalf, crossPoint)
				secondHalf = append(secondHalf, crossPoint)
			}
			secondHalf = append(secondHalf, p)
		})
	} else {
		s.ForEachFlattened(tolerance, func(p geom.Pos2, _ float32) {
			firstHalf = append(firstHalf, p)
		})
	}

	result := [][]geom.Pos2{firstHalf}
	if len(secondHalf) > 0 {
		result = append(result, secondHalf)
	}
	return result
}

// ForEachFlattened walks the flattened curve, invoking the callback
// with each point and its curve parameter. The start point at t=0 is
// not reported.
//
// The curve is first cut into quadratic segments, each of which is
// flattened analytically. 20% of the tolerance budget goes to the
// quadratic approximation and 80% to the flattening.
func (s *CubicBezierShape) ForEachFlattened(tolerance float32, callback func(geom.Pos2, float32)) {
	quadraticsTolerance := tolerance * 0.2
	flatteningTolerance := tolerance * 0.8

	numQuadratics := s.numQuadratics(quadraticsTolerance)
	step := 1 / float32(numQuadratics)
	t0 := float32(0)
	for i := uint32(0); i+1 < numQuadratics; i++ {
		t1 := t0 + step

		sub := s.splitRange(t0, t1)
		quadratic := singleCurveApproximation(&sub)
		quadratic.ForEachFlattened(flatteningTolerance, func(p geom.Pos2, tSub float32) {
			callback(p, t0+step*tSub)
		})

		t0 = t1
	}

	// Last segment runs to exactly t = 1.
	sub := s.splitRange(t0, 1)
	quadratic := singleCurveApproximation(&sub)
	quadratic.ForEachFlattened(flatteningTolerance, func(p geom.Pos2, tSub float32) {
		callback(p, t0+step*tSub)
	})
}

// splitRange cuts out the sub-curve over [t0, t1] as a new cubic.
func (s *CubicBezierShape) splitRange(t0, t1 float32) CubicBezierShape {
	from := s.Sample(t0)
	to := s.Sample(t1)

	dFrom := s.Points[1].SubVec(s.Points[0].ToVec2())
	dCtrl := s.Points[2].SubVec(s.Points[1].ToVec2())
	dTo := s.Points[3].SubVec(s.Points[2].ToVec2())
	q := QuadraticBezierShape{Points: [3]geom.Pos2{dFrom, dCtrl, dTo}}

	deltaT := t1 - t0
	ctrl1 := from.Add(q.Sample(t0).ToVec2().Mul(deltaT))
	ctrl2 := to.SubVec(q.Sample(t1).ToVec2().Mul(deltaT))
	return CubicBezierShape{
		Points: [4]geom.Pos2{from, ctrl1, ctrl2, to},
		Closed: s.Closed,
		Fill:   s.Fill,
		Stroke: s.Stroke,
	}
}

// numQuadratics is the number of quadratic segments needed to stay
// within the tolerance. Derived by Raph Levien from section 10.6 of
// Sederberg's CAGD notes.
func (s *CubicBezierShape) numQuadratics(tolerance float32) uint32 {
	x := s.Points[0].X - 3*s.Points[1].X + 3*s.Points[2].X - s.Points[3].X
	y := s.Points[0].Y - 3*s.Points[1].Y + 3*s.Points[2].Y - s.Points[3].Y
	err := x*x + y*y

	n := ceil32(powF32(err/(432*tolerance*tolerance), 1.0/6.0))
	if n < 1 {
		n = 1
	}
	return uint32(n)
}

// findCrossT looks for a curve parameter strictly inside (0, 1) where
// the curve crosses the line through its start and end points. Writing
// the crossing condition as a cubic in t and depressing it with
// x = t - b/(3a) gives x^3 + px + q = 0; only p < 0 can yield three
// distinct real roots, and the root inside (epsilon, 1-epsilon) is the
// interior crossing.
func (s *CubicBezierShape) findCrossT(epsilon float32) (float32, bool) {
	p0, p1, p2, p3 := s.Points[0], s.Points[1], s.Points[2], s.Points[3]

	a := (p3.X-3*p2.X+3*p1.X-p0.X)*(p3.Y-p0.Y) -
		(p3.Y-3*p2.Y+3*p1.Y-p0.Y)*(p3.X-p0.X)
	b := (3*p2.X-6*p1.X+3*p0.X)*(p3.Y-p0.Y) -
		(3*p2.Y-6*p1.Y+3*p0.Y)*(p3.X-p0.X)
	c := (3*p1.X-3*p0.X)*(p3.Y-p0.Y) - (3*p1.Y-3*p0.Y)*(p3.X-p0.X)
	d := p0.X*(p3.Y-p0.Y) - p0.Y*(p3.X-p0.X) +
		p0.X*(p0.Y-p3.Y) + p0.Y*(p3.X-p0.X)

	h := -b / (3 * a)
	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)

	if p > 0 {
		return 0, false
	}
	r := sqrt32(-(p / 3) * (p / 3) * (p / 3))
	theta := acos32(-q/(2*r)) / 3

	cbrtR := cbrt32(r)
	t1 := 2*cbrtR*cos32(theta) + h
	t2 := 2*cbrtR*cos32(theta+2*math.Pi/3) + h
	t3 := 2*cbrtR*cos32(theta+4*math.Pi/3) + h

	for _, t := range [3]float32{t1, t2, t3} {
		if t > epsilon && t < 1-epsilon {
			return t, true
		}
	}
	return 0, false
}

func (t *Tessellator) tessellateQuadraticBezier(shape QuadraticBezierShape, out *Mesh) {
	if t.options.CoarseTessellationCulling &&
		!shape.VisualBoundingRect().Intersects(t.clipRect) {
		return
	}

	points := shape.Flatten(t.options.BezierTolerance)
	t.tessellateFlattenedBezier(points, shape.Fill, shape.Closed, shape.Stroke, out)
}

func (t *Tessellator) tessellateCubicBezier(shape CubicBezierShape, out *Mesh) {
	if t.options.CoarseTessellationCulling &&
		!shape.VisualBoundingRect().Intersects(t.clipRect) {
		return
	}

	pointLists := shape.FlattenClosed(t.options.BezierTolerance, t.options.Epsilon)
	for _, points := range pointLists {
		t.tessellateFlattenedBezier(points, shape.Fill, shape.Closed, shape.Stroke, out)
	}
}

func (t *Tessellator) tessellateFlattenedBezier(points []geom.Pos2, fill color.Color32, closed bool, stroke Stroke, out *Mesh) {
	if len(points) < 2 {
		return
	}

	t.scratchPath.Clear()
	if closed {
		t.scratchPath.AddLineLoop(points)
	} else {
		t.scratchPath.AddOpenPoints(points)
	}
	if fill != color.Transparent {
		if !closed {
			Logger().Warn("fill requested for an open bezier curve; ignored")
		} else {
			t.scratchPath.Fill(t.feathering, fill, out)
		}
	}
	pathType := PathOpen
	if closed {
		pathType = PathClosed
	}
	t.scratchPath.Stroke(t.feathering, pathType, stroke, out)
}

// flatteningParameters maps a quadratic segment onto the y = x^2
// parabola, where the arc-length integral needed for even flattening
// has a cheap closed-form approximation.
type flatteningParameters struct {
	count              float32
	integralFrom       float32
	integralStep       float32
	invIntegralFrom    float32
	divInvIntegralDiff float32
	isPoint            bool
}

func flatteningParametersFor(curve *QuadraticBezierShape, tolerance float32) flatteningParameters {
	from := curve.Points[0]
	ctrl := curve.Points[1]
	to := curve.Points[2]

	ddx := 2*ctrl.X - from.X - to.X
	ddy := 2*ctrl.Y - from.Y - to.Y
	cross := (to.X-from.X)*ddy - (to.Y-from.Y)*ddx
	invCross := 1 / cross
	parabolaFrom := ((ctrl.X-from.X)*ddx + (ctrl.Y-from.Y)*ddy) * invCross
	parabolaTo := ((to.X-ctrl.X)*ddx + (to.Y-ctrl.Y)*ddy) * invCross
	// The scale is NaN for straight lines. The NaN propagates into
	// the count, which is caught below.
	scale := abs32(cross) / (hypot32(ddx, ddy) * abs32(parabolaTo-parabolaFrom))

	integralFrom := approxParabolaIntegral(parabolaFrom)
	integralTo := approxParabolaIntegral(parabolaTo)
	integralDiff := integralTo - integralFrom

	invIntegralFrom := approxParabolaInvIntegral(integralFrom)
	invIntegralTo := approxParabolaInvIntegral(integralTo)
	divInvIntegralDiff := 1 / (invIntegralTo - invIntegralFrom)

	count := ceil32(0.5 * abs32(integralDiff) * sqrt32(scale/tolerance))
	isPoint := false
	if !isFinite32(count) {
		count = 0
		isPoint = hypot32(to.X-from.X, to.Y-from.Y) < tolerance*tolerance
	}

	return flatteningParameters{
		count:              count,
		integralFrom:       integralFrom,
		integralStep:       integralDiff / count,
		invIntegralFrom:    invIntegralFrom,
		divInvIntegralDiff: divInvIntegralDiff,
		isPoint:            isPoint,
	}
}

func (p *flatteningParameters) tAtIteration(iteration float32) float32 {
	u := approxParabolaInvIntegral(p.integralFrom + p.integralStep*iteration)
	return (u - p.invIntegralFrom) * p.divInvIntegralDiff
}

// approxParabolaIntegral approximates the integral of
// (1 + 4x^2)^-0.25 dx used for arc-length parametrization.
func approxParabolaIntegral(x float32) float32 {
	const d = 0.67
	return x / (1 - d + sqrt32(sqrt32(d*d*d*d+0.25*x*x)))
}

// approxParabolaInvIntegral approximates the inverse of the above.
func approxParabolaInvIntegral(x float32) float32 {
	const b = 0.39
	return x * (1 - b + sqrt32(b*b+0.25*x*x))
}

// singleCurveApproximation replaces a cubic with the quadratic whose
// control point is the midpoint of the cubic's two projected control
// points.
func singleCurveApproximation(curve *CubicBezierShape) QuadraticBezierShape {
	c1x := (curve.Points[1].X*3 - curve.Points[0].X) * 0.5
	c1y := (curve.Points[1].Y*3 - curve.Points[0].Y) * 0.5
	c2x := (curve.Points[2].X*3 - curve.Points[3].X) * 0.5
	c2y := (curve.Points[2].Y*3 - curve.Points[3].Y) * 0.5
	c := geom.Pos2{X: (c1x + c2x) * 0.5, Y: (c1y + c2y) * 0.5}
	return QuadraticBezierShape{
		Points: [3]geom.Pos2{curve.Points[0], c, curve.Points[3]},
		Closed: curve.Closed,
		Fill:   curve.Fill,
		Stroke: curve.Stroke,
	}
}

// quadraticLocalExtrema reports the t of the local extremum of one
// coordinate of a quadratic curve, if it lies strictly inside (0, 1).
func quadraticLocalExtrema(p0, p1, p2 float32, cb func(float32)) {
	// The derivative is linear: 2(p2 - 2p1 + p0)t + 2(p1 - p0).
	a := p2 - 2*p1 + p0
	if a == 0 {
		return
	}

	t := (p0 - p1) / a
	if t > 0 && t < 1 {
		cb(t)
	}
}

// cubicLocalExtrema reports the t values of the local extrema of one
// coordinate of a cubic curve that lie within [0, 1]. The derivative
// is the quadratic 3(1-t)^2(p1-p0) + 6(1-t)t(p2-p1) + 3t^2(p3-p2).
func cubicLocalExtrema(p0, p1, p2, p3 float32, cb func(float32)) {
	a := 3 * (p3 + 3*(p1-p2) - p0)
	b := 6 * (p2 - 2*p1 + p0)
	c := 3 * (p1 - p0)

	inRange := func(t float32) bool { return t >= 0 && t <= 1 }

	if a == 0 {
		// Linear derivative.
		if b != 0 {
			if t := -c / b; inRange(t) {
				cb(t)
			}
		}
		return
	}

	discr := b*b - 4*a*c
	if discr < 0 {
		return
	}
	if discr == 0 {
		if t := -b / (2 * a); inRange(t) {
			cb(t)
		}
		return
	}

	sq := sqrt32(discr)
	if t := (-b - sq) / (2 * a); inRange(t) {
		cb(t)
	}
	if t := (-b + sq) / (2 * a); inRange(t) {
		cb(t)
	}
}

func minMax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func ceil32(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

func cbrt32(x float32) float32 {
	return float32(math.Cbrt(float64(x)))
}

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func hypot32(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

func isFinite32(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
