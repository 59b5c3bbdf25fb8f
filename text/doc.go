// Package text shapes and lays out text into galleys that the paint
// tessellator can turn into glyph quads.
//
// Glyphs are shaped with HarfBuzz via go-text/typesetting, rasterized
// from their sfnt outlines with x/image/vector, and stored in the
// shared font texture atlas. One Fonts store owns the default font,
// the glyph cache and the atlas bookkeeping for a frame pipeline.
package text
