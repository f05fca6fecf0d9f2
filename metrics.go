package textgui

import "image"

// GlyphMetrics is the interface for measuring text in a single font family.
// It is the only capability the flow and editing engines need from a font,
// so fields can switch between bitmap and vector fonts without code changes.
//
// Implementations must be safe for concurrent use: several fields may
// measure through the same provider within a frame.
//
// Example usage:
//
//	m := fonts.NewBitmap()
//	w := m.MeasureWidth("hello", 13)
//	offs := m.CumulativeOffsets("hello", 13) // len 6, offs[5] == w
type GlyphMetrics interface {
	// MeasureWidth returns the pixel width of text at the given font size.
	MeasureWidth(text string, fontSize float32) float32

	// CumulativeOffsets returns the pixel offset before each character of
	// text plus a final entry for the full width, so the result always has
	// runeCount(text)+1 entries and is non-decreasing.
	CumulativeOffsets(text string, fontSize float32) []float32
}

// LineSpacer is implemented by metrics whose font family has a line pitch
// different from the default relative to nominal glyph height.
type LineSpacer interface {
	LineSpacing() float32
}

// DefaultLineSpacing is the inter-line pitch relative to the font size for
// metrics that do not implement LineSpacer.
const DefaultLineSpacing float32 = 0.9

// lineSpacingOf returns the line spacing factor for m.
func lineSpacingOf(m GlyphMetrics) float32 {
	if ls, ok := m.(LineSpacer); ok {
		if s := ls.LineSpacing(); s > 0 {
			return s
		}
	}
	return DefaultLineSpacing
}

// UVRect is a glyph's rectangle inside an atlas, in normalized texture coordinates.
type UVRect struct {
	U0, V0 float32
	U1, V1 float32
}

// GlyphAtlas is implemented by metrics that can supply a glyph texture for
// rendering. The renderer uploads AtlasImage once; DrawList.AddTextLine
// then maps each rune to its UV rectangle.
type GlyphAtlas interface {
	// AtlasImage returns the alpha-only glyph atlas.
	AtlasImage() *image.Alpha

	// GlyphUV returns the atlas rectangle for r. ok is false when the
	// atlas has no glyph for r.
	GlyphUV(r rune) (uv UVRect, ok bool)
}

// offsetsOf measures text and repairs provider output that violates the
// offsets contract (wrong length or decreasing entries).
func offsetsOf(m GlyphMetrics, text string, fontSize float32) []float32 {
	n := runeCount(text)
	offs := m.CumulativeOffsets(text, fontSize)
	if len(offs) != n+1 {
		fixed := make([]float32, n+1)
		copy(fixed, offs)
		offs = fixed
	}
	for i := 1; i < len(offs); i++ {
		if offs[i] < offs[i-1] {
			offs[i] = offs[i-1]
		}
	}
	return offs
}
