package paint

import (
	"fmt"
	"unsafe"
)

type elementSize int

const (
	elementSizeUnknown elementSize = iota
	elementSizeHomogeneous
	elementSizeHeterogeneous
)

// AllocInfo aggregates information about a group of allocations.
type AllocInfo struct {
	sizing      elementSize
	elementSize int
	numAllocs   int
	numElements int
	numBytes    int
}

func sliceInfo[T any](s []T) AllocInfo {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return AllocInfo{
		sizing:      elementSizeHomogeneous,
		elementSize: size,
		numAllocs:   1,
		numElements: len(s),
		numBytes:    len(s) * size,
	}
}

func meshInfo(mesh *Mesh) AllocInfo {
	return sliceInfo(mesh.Indices).Add(sliceInfo(mesh.Vertices))
}

func galleyInfo(galley *Galley) AllocInfo {
	info := sliceInfo([]byte(galley.Text)).Add(sliceInfo(galley.Rows))
	for i := range galley.Rows {
		info = info.Add(sliceInfo(galley.Rows[i].Glyphs))
	}
	return info
}

// Add combines two infos. Mixing element sizes makes the sum
// heterogeneous and NumElements meaningless.
func (a AllocInfo) Add(b AllocInfo) AllocInfo {
	var sizing elementSize
	var size int
	switch {
	case a.sizing == elementSizeHeterogeneous || b.sizing == elementSizeHeterogeneous:
		sizing = elementSizeHeterogeneous
	case a.sizing == elementSizeUnknown:
		sizing, size = b.sizing, b.elementSize
	case b.sizing == elementSizeUnknown:
		sizing, size = a.sizing, a.elementSize
	case a.elementSize == b.elementSize:
		sizing, size = elementSizeHomogeneous, a.elementSize
	default:
		sizing = elementSizeHeterogeneous
	}

	return AllocInfo{
		sizing:      sizing,
		elementSize: size,
		numAllocs:   a.numAllocs + b.numAllocs,
		numElements: a.numElements + b.numElements,
		numBytes:    a.numBytes + b.numBytes,
	}
}

// NumAllocs is the number of separate allocations counted.
func (a AllocInfo) NumAllocs() int { return a.numAllocs }

// NumElements is the total element count. It is only meaningful while
// every counted allocation holds elements of the same size.
func (a AllocInfo) NumElements() int {
	if a.sizing == elementSizeHeterogeneous {
		return 0
	}
	return a.numElements
}

// NumBytes is the total heap size of the counted allocations.
func (a AllocInfo) NumBytes() int { return a.numBytes }

// Megabytes formats the byte count for display.
func (a AllocInfo) Megabytes() string {
	return megabytes(a.numBytes)
}

// Format renders one line of a stats table.
func (a AllocInfo) Format(what string) string {
	switch {
	case a.numAllocs == 0:
		return fmt.Sprintf("%6d %-16s", 0, what)
	case a.numAllocs == 1:
		return fmt.Sprintf("%6d %-16s  %s       1 allocation", a.numElements, what, a.Megabytes())
	case a.sizing != elementSizeHeterogeneous:
		return fmt.Sprintf("%6d %-16s  %s     %3d allocations", a.numElements, what, a.Megabytes(), a.numAllocs)
	default:
		return fmt.Sprintf("%6s %-16s  %s     %3d allocations", "", what, a.Megabytes(), a.numAllocs)
	}
}

func megabytes(size int) string {
	return fmt.Sprintf("%.2f MB", float64(size)/1e6)
}

// PaintStats collects allocation statistics about the shapes handed to
// the tessellator and the meshes it produced.
type PaintStats struct {
	Shapes       AllocInfo
	ShapeText    AllocInfo
	ShapePath    AllocInfo
	ShapeMesh    AllocInfo
	ShapeGroups  AllocInfo
	NumCallbacks int

	// Number of separate clip rectangles.
	ClippedPrimitives AllocInfo
	Vertices          AllocInfo
	Indices           AllocInfo
}

// PaintStatsFromShapes tallies the input side of a frame.
func PaintStatsFromShapes(shapes []ClippedShape) PaintStats {
	var stats PaintStats
	// Paths and groups vary in size, so element counts are moot.
	stats.ShapePath.sizing = elementSizeHeterogeneous
	stats.ShapeGroups.sizing = elementSizeHeterogeneous

	stats.Shapes = sliceInfo(shapes)
	for i := range shapes {
		stats.add(shapes[i].Shape)
	}
	return stats
}

func (stats *PaintStats) add(shape Shape) {
	switch s := shape.(type) {
	case ShapeGroup:
		stats.Shapes = stats.Shapes.Add(sliceInfo([]Shape(s)))
		stats.ShapeGroups = stats.ShapeGroups.Add(sliceInfo([]Shape(s)))
		for _, sub := range s {
			stats.add(sub)
		}
	case PathShape:
		stats.ShapePath = stats.ShapePath.Add(sliceInfo(s.Points))
	case TextShape:
		if s.Galley != nil {
			stats.ShapeText = stats.ShapeText.Add(galleyInfo(s.Galley))
		}
	case MeshShape:
		stats.ShapeMesh = stats.ShapeMesh.Add(meshInfo(s.Mesh))
	case CallbackShape:
		stats.NumCallbacks++
	default:
		// Fixed-size shapes carry no heap allocations.
	}
}

// WithClippedPrimitives tallies the output side of a frame.
func (stats PaintStats) WithClippedPrimitives(primitives []ClippedPrimitive) PaintStats {
	stats.ClippedPrimitives = stats.ClippedPrimitives.Add(sliceInfo(primitives))
	for i := range primitives {
		if mesh, ok := primitives[i].Primitive.(*Mesh); ok {
			stats.Vertices = stats.Vertices.Add(sliceInfo(mesh.Vertices))
			stats.Indices = stats.Indices.Add(sliceInfo(mesh.Indices))
		}
	}
	return stats
}
