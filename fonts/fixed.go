// Package fonts provides glyph metrics providers for textgui fields: a
// synthetic fixed-advance font, the 7x13 bitmap font and OpenType vector
// fonts.
package fonts

import "unicode/utf8"

// Fixed gives every character the same advance of PerEm times the font
// size. It has no atlas, so fields using it measure but draw no glyphs.
// Offsets are computed by multiplication, so a width of exactly n
// characters compares equal to the n-th offset.
type Fixed struct {
	PerEm   float32
	Spacing float32
}

// NewFixed creates a fixed-advance font.
func NewFixed(perEm float32) *Fixed {
	return &Fixed{PerEm: perEm}
}

func (f *Fixed) advance(fontSize float32) float32 {
	return f.PerEm * fontSize
}

// MeasureWidth returns the width of text.
func (f *Fixed) MeasureWidth(text string, fontSize float32) float32 {
	return float32(utf8.RuneCountInString(text)) * f.advance(fontSize)
}

// CumulativeOffsets returns the offset before each character plus the total width.
func (f *Fixed) CumulativeOffsets(text string, fontSize float32) []float32 {
	n := utf8.RuneCountInString(text)
	adv := f.advance(fontSize)
	offs := make([]float32, n+1)
	for i := range offs {
		offs[i] = float32(i) * adv
	}
	return offs
}

// LineSpacing returns Spacing, or 0 to select the engine default.
func (f *Fixed) LineSpacing() float32 {
	return f.Spacing
}
