// Package paint converts high-level shape descriptions into triangle
// meshes ready for GPU upload.
//
// # Overview
//
// paint is a pure Go tessellation library for the GoGPU ecosystem. Shapes
// (circles, rectangles, paths, text) are described with a small value-type
// API and turned into anti-aliased vertex/index buffers by a [Tessellator].
// No GPU calls are made; the output meshes reference texture ids and are
// rendered by whatever backend the application uses.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	shapes := []paint.ClippedShape{
//	    {ClipRect: geom.RectEverything, Shape: paint.CircleFilled(
//	        geom.P2(256, 256), 100, color.RGB(255, 0, 0))},
//	}
//	primitives := paint.TessellateShapes(paint.DefaultTessellationOptions(),
//	    fontTexSize, preparedDiscs, shapes)
//
// # Architecture
//
// The library is organized into:
//   - paint: shapes, meshes, tessellation, the texture atlas, frame stats
//   - geom: positions, vectors, rectangles, rotations
//   - color: premultiplied sRGBA colors and gamma/linear conversion
//   - text: font loading, shaping and glyph layout into galleys
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Shape coordinates are logical points; multiply by pixels-per-point to
// get physical pixels. Anti-aliasing adds a one physical pixel feathering
// band around filled geometry.
package paint
