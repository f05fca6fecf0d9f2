package fonts

import (
	"image"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/textgui"
)

// Bitmap font constants for basicfont.Face7x13.
const (
	bitmapAdvance = 7
	bitmapHeight  = 13

	// BitmapLineSpacing is the line pitch of bitmap fields relative to the font size.
	BitmapLineSpacing float32 = 0.92
)

// Bitmap measures and draws with the 7x13 bitmap font, scaled uniformly
// from its native 13 pixel height. Every character has the same advance.
type Bitmap struct {
	once  sync.Once
	atlas glyphAtlas
}

// NewBitmap creates the bitmap font.
func NewBitmap() *Bitmap {
	return &Bitmap{}
}

func (b *Bitmap) advance(fontSize float32) float32 {
	return bitmapAdvance * fontSize / bitmapHeight
}

// MeasureWidth returns the width of text.
func (b *Bitmap) MeasureWidth(text string, fontSize float32) float32 {
	return float32(utf8.RuneCountInString(text)) * b.advance(fontSize)
}

// CumulativeOffsets returns the offset before each character plus the total width.
func (b *Bitmap) CumulativeOffsets(text string, fontSize float32) []float32 {
	n := utf8.RuneCountInString(text)
	adv := b.advance(fontSize)
	offs := make([]float32, n+1)
	for i := range offs {
		offs[i] = float32(i) * adv
	}
	return offs
}

// LineSpacing returns BitmapLineSpacing.
func (b *Bitmap) LineSpacing() float32 {
	return BitmapLineSpacing
}

// DefaultMargin returns textgui.BitmapMargin.
func (b *Bitmap) DefaultMargin() textgui.Margin {
	return textgui.BitmapMargin
}

func (b *Bitmap) build() {
	b.once.Do(func() {
		b.atlas = buildAtlas(basicfont.Face7x13, latin1())
	})
}

// AtlasImage returns the glyph atlas, rasterizing it on first use.
func (b *Bitmap) AtlasImage() *image.Alpha {
	b.build()
	return b.atlas.AtlasImage()
}

// GlyphUV returns the atlas cell of r.
func (b *Bitmap) GlyphUV(r rune) (textgui.UVRect, bool) {
	b.build()
	return b.atlas.GlyphUV(r)
}
