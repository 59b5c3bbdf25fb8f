package text

import (
	"strings"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// Layout shapes and positions text in the default font, one row per
// \n-separated line. Size is in logical points. The color may be the
// placeholder, resolved against the text shape's fallback color at
// tessellation time; that lets one galley be repainted in different
// colors without re-laying it out.
func (f *Fonts) Layout(s string, size float32, textColor color.PaintColor) *paint.Galley {
	return f.LayoutWithFont(f.def, s, size, textColor)
}

// LayoutWithFont is Layout with an explicit font source.
func (f *Fonts) LayoutWithFont(source *FontSource, s string, size float32, textColor color.PaintColor) *paint.Galley {
	f.mu.Lock()
	defer f.mu.Unlock()

	metrics := f.metricsLocked(source, size)
	galley := &paint.Galley{Text: s, PixelsPerPoint: f.pixelsPerPoint}

	lines := strings.Split(s, "\n")
	y := float32(0)
	rect := geom.RectNothing
	for i, line := range lines {
		row := f.layoutRowLocked(source, line, size, textColor, y, metrics)
		row.EndsWithNewline = i+1 < len(lines)
		galley.Rows = append(galley.Rows, row)
		rect = rect.Union(row.Rect)
		y += metrics.RowHeight
	}
	galley.Rect = rect
	return galley
}

func (f *Fonts) layoutRowLocked(
	source *FontSource,
	line string,
	size float32,
	textColor color.PaintColor,
	top float32,
	metrics LineMetrics,
) paint.Row {
	row := paint.Row{
		Rect: geom.RectFromMinMax(geom.P2(0, top), geom.P2(0, top+metrics.RowHeight)),
	}
	if line == "" {
		return row
	}

	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(line),
		Face:      gtfont.NewFace(source.shaping),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := f.shaper.Shape(input)

	baseline := top + metrics.Ascent
	penX := float32(0)
	for _, g := range output.Glyphs {
		xOff := f26ToF32(g.XOffset)
		yOff := f26ToF32(g.YOffset)

		info := f.glyphLocked(source, uint16(g.GlyphID), size)
		if info.visible() {
			// Offsets are y-up in shaping space, hence the minus.
			pos := geom.P2(
				f.roundToPixel(penX+xOff+info.offset.X),
				f.roundToPixel(baseline-yOff+info.offset.Y),
			)
			chr := rune(0)
			if ti := g.TextIndex(); ti >= 0 && ti < len(runes) {
				chr = runes[ti]
			}
			row.Glyphs = append(row.Glyphs, paint.Glyph{
				Chr:   chr,
				Pos:   pos,
				Size:  info.size,
				UV:    info.uv,
				Color: textColor,
			})
		}

		penX += f26ToF32(g.Advance)
	}

	row.Rect.Max.X = penX
	return row
}
