package text

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paint"
)

// Fonts is the font store for one paint pipeline. It owns the font
// texture atlas, the registered font sources and the rasterized glyph
// cache, and lays text out into galleys.
//
// Fonts is safe for concurrent use; a single mutex covers shaping,
// rasterization and atlas writes, which all feed shared state.
type Fonts struct {
	mu             sync.Mutex
	pixelsPerPoint float32
	atlas          *paint.TextureAtlas
	def            *FontSource
	sources        []*FontSource
	shaper         shaping.HarfbuzzShaper
	cache          map[glyphKey]glyphInfo
	buf            sfnt.Buffer
}

// NewFonts creates a store rendering at the given scale, with a fresh
// texture atlas of the given size. The bundled Go Regular font is the
// default face.
func NewFonts(pixelsPerPoint float32, atlasSize [2]int) (*Fonts, error) {
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	def, err := NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("text: loading default font: %w", err)
	}
	return &Fonts{
		pixelsPerPoint: pixelsPerPoint,
		atlas:          paint.NewTextureAtlas(atlasSize),
		def:            def,
		sources:        []*FontSource{def},
		cache:          make(map[glyphKey]glyphInfo),
	}, nil
}

// AddSource registers an additional font.
func (f *Fonts) AddSource(s *FontSource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources = append(f.sources, s)
}

// Default is the fallback font source.
func (f *Fonts) Default() *FontSource {
	return f.def
}

// Atlas is the shared font texture atlas. Poll its TakeDelta each
// frame and upload the result before painting.
func (f *Fonts) Atlas() *paint.TextureAtlas {
	return f.atlas
}

// TexSize is the current atlas texture size, as the tessellator wants
// it.
func (f *Fonts) TexSize() [2]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.atlas.Size()
}

// PixelsPerPoint is the layout scale given at creation.
func (f *Fonts) PixelsPerPoint() float32 {
	return f.pixelsPerPoint
}

// LineMetrics are vertical font metrics in logical points.
type LineMetrics struct {
	// Ascent is the distance from the top of a row to its baseline.
	Ascent float32

	// Descent is the distance from the baseline to the row bottom.
	Descent float32

	// RowHeight is the recommended distance between baselines.
	RowHeight float32
}

// Metrics resolves the line metrics of a font at the given size in
// points.
func (f *Fonts) Metrics(source *FontSource, size float32) LineMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metricsLocked(source, size)
}

func (f *Fonts) metricsLocked(source *FontSource, size float32) LineMetrics {
	ppem := fixed.Int26_6(size * f.pixelsPerPoint * 64)
	m, err := source.outline.Metrics(&f.buf, ppem, xfont.HintingNone)
	if err != nil {
		// Degenerate but usable: treat the em square as the line.
		return LineMetrics{Ascent: size * 0.75, Descent: size * 0.25, RowHeight: size}
	}
	ppp := f.pixelsPerPoint
	return LineMetrics{
		Ascent:    f26ToF32(m.Ascent) / ppp,
		Descent:   f26ToF32(m.Descent) / ppp,
		RowHeight: f26ToF32(m.Height) / ppp,
	}
}

func (f *Fonts) roundToPixel(p float32) float32 {
	return roundF32(p*f.pixelsPerPoint) / f.pixelsPerPoint
}
