package textgui_test

import (
	"image"
	"unicode/utf8"

	"github.com/go-theft-auto/textgui"
	"github.com/go-theft-auto/textgui/fonts"
)

// Every test font measures 10px per character at size 20.
const (
	testSize    float32 = 20
	testAdvance float32 = 10
)

func fixedFont() *fonts.Fixed {
	return fonts.NewFixed(0.5)
}

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	uploads     int
	uploadErr   error
	lastVerts   int
}

func (m *mockRenderer) Render(dl *textgui.DrawList) error {
	m.renderCalls++
	dl.Finalize()
	m.lastVerts = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) Resize(width, height int) {}

func (m *mockRenderer) UploadAtlas(img *image.Alpha) (uint32, error) {
	if m.uploadErr != nil {
		return 0, m.uploadErr
	}
	m.uploads++
	return uint32(m.uploads), nil
}

// widthMetrics gives selected characters their own width; others are 10px.
// Font size is ignored.
type widthMetrics map[rune]float32

func (w widthMetrics) width(r rune) float32 {
	if v, ok := w[r]; ok {
		return v
	}
	return testAdvance
}

func (w widthMetrics) MeasureWidth(text string, _ float32) float32 {
	offs := w.CumulativeOffsets(text, 0)
	return offs[len(offs)-1]
}

func (w widthMetrics) CumulativeOffsets(text string, _ float32) []float32 {
	offs := make([]float32, 0, utf8.RuneCountInString(text)+1)
	var x float32
	for _, r := range text {
		offs = append(offs, x)
		x += w.width(r)
	}
	return append(offs, x)
}

// atlasMetrics is a fixed-advance font with a tiny atlas holding only 'a'.
type atlasMetrics struct {
	*fonts.Fixed
}

func (atlasMetrics) AtlasImage() *image.Alpha {
	return image.NewAlpha(image.Rect(0, 0, 8, 8))
}

func (atlasMetrics) GlyphUV(r rune) (textgui.UVRect, bool) {
	if r != 'a' {
		return textgui.UVRect{}, false
	}
	return textgui.UVRect{U0: 0, V0: 0, U1: 1, V1: 1}, true
}
