package paint

import (
	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// DottedLine turns a polyline into evenly spaced filled dots.
func DottedLine(path []geom.Pos2, fill color.Color32, spacing, radius float32) []Shape {
	var shapes []Shape
	pointsFromLine(path, spacing, radius, fill, &shapes)
	return shapes
}

// DashedLine turns a polyline into dashes.
func DashedLine(path []geom.Pos2, stroke Stroke, dashLength, gapLength float32) []Shape {
	var shapes []Shape
	dashesFromLine(path, stroke, dashLength, gapLength, 0, &shapes)
	return shapes
}

// DashedLineWithOffset turns a polyline into dashes, shifting the
// pattern forward by offset along the path. Use it to line up the
// pattern across several polylines, or to animate it.
func DashedLineWithOffset(path []geom.Pos2, stroke Stroke, dashLength, gapLength, offset float32) []Shape {
	var shapes []Shape
	dashesFromLine(path, stroke, dashLength, gapLength, offset, &shapes)
	return shapes
}

// DashedLineMany appends the dashes of a polyline to an existing slice.
// Use this instead of DashedLine when creating many dashed lines.
func DashedLineMany(points []geom.Pos2, stroke Stroke, dashLength, gapLength float32, shapes *[]Shape) {
	dashesFromLine(points, stroke, dashLength, gapLength, 0, shapes)
}

func pointsFromLine(path []geom.Pos2, spacing, radius float32, fill color.Color32, shapes *[]Shape) {
	positionOnSegment := float32(0)
	for i := 0; i+1 < len(path); i++ {
		start, end := path[i], path[i+1]
		vector := end.Sub(start)
		segmentLength := vector.Length()
		for positionOnSegment < segmentLength {
			point := start.Add(vector.Mul(positionOnSegment / segmentLength))
			*shapes = append(*shapes, CircleFilled(point, radius, fill))
			positionOnSegment += spacing
		}
		positionOnSegment -= segmentLength
	}
}

func dashesFromLine(path []geom.Pos2, stroke Stroke, dashLength, gapLength, offset float32, shapes *[]Shape) {
	positionOnSegment := offset
	drawingDash := false
	for i := 0; i+1 < len(path); i++ {
		start, end := path[i], path[i+1]
		vector := end.Sub(start)
		segmentLength := vector.Length()

		startPoint := start
		for positionOnSegment < segmentLength {
			point := start.Add(vector.Mul(positionOnSegment / segmentLength))
			if drawingDash {
				// End the current dash.
				*shapes = append(*shapes, LineSegment(startPoint, point, stroke))
				positionOnSegment += gapLength
			} else {
				// Start a new dash.
				startPoint = point
				positionOnSegment += dashLength
			}
			drawingDash = !drawingDash
		}

		// A dash cut short by the segment end continues on the next
		// segment.
		if drawingDash {
			*shapes = append(*shapes, LineSegment(startPoint, end, stroke))
		}

		positionOnSegment -= segmentLength
	}
}
