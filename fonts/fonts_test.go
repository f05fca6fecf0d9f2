package fonts_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/textgui"
	"github.com/go-theft-auto/textgui/fonts"
)

// Compile-time interface checks.
var (
	_ textgui.GlyphMetrics   = (*fonts.Fixed)(nil)
	_ textgui.GlyphMetrics   = (*fonts.Bitmap)(nil)
	_ textgui.GlyphMetrics   = (*fonts.Vector)(nil)
	_ textgui.GlyphAtlas     = (*fonts.Bitmap)(nil)
	_ textgui.GlyphAtlas     = (*fonts.Vector)(nil)
	_ textgui.LineSpacer     = (*fonts.Vector)(nil)
	_ textgui.MarginProvider = (*fonts.Bitmap)(nil)
	_ textgui.MarginProvider = (*fonts.Vector)(nil)
)

func goRegular(t *testing.T) *fonts.Vector {
	t.Helper()
	v, err := fonts.NewGoRegular()
	require.NoError(t, err)
	return v
}

func assertOffsetsValid(t *testing.T, m textgui.GlyphMetrics, text string, size float32) {
	t.Helper()
	offs := m.CumulativeOffsets(text, size)
	require.Len(t, offs, len([]rune(text))+1, text)
	assert.Zero(t, offs[0])
	for i := 1; i < len(offs); i++ {
		assert.GreaterOrEqual(t, offs[i], offs[i-1], "%q at %d", text, i)
	}
	assert.Equal(t, offs[len(offs)-1], m.MeasureWidth(text, size))
}

func TestFixed(t *testing.T) {
	f := fonts.NewFixed(0.5)
	assert.Equal(t, []float32{0, 10, 20, 30}, f.CumulativeOffsets("abc", 20))
	assert.Equal(t, float32(30), f.MeasureWidth("日本語", 20))
	assert.Zero(t, f.LineSpacing())
	assertOffsetsValid(t, f, "", 20)
}

func TestBitmapMetrics(t *testing.T) {
	b := fonts.NewBitmap()
	assert.Equal(t, []float32{0, 7, 14, 21}, b.CumulativeOffsets("abc", 13))
	assert.InDelta(t, 14, b.MeasureWidth("ab", 13), 1e-5)
	assert.InDelta(t, 28, b.MeasureWidth("ab", 26), 1e-5)
	assert.Equal(t, fonts.BitmapLineSpacing, b.LineSpacing())
	assert.Equal(t, textgui.BitmapMargin, b.DefaultMargin())
}

func TestBitmapAtlas(t *testing.T) {
	b := fonts.NewBitmap()
	img := b.AtlasImage()
	require.NotNil(t, img)

	uv, ok := b.GlyphUV('A')
	require.True(t, ok)
	assert.Less(t, uv.U0, uv.U1)
	assert.Less(t, uv.V0, uv.V1)

	_, ok = b.GlyphUV('é')
	assert.True(t, ok)
	_, ok = b.GlyphUV('日')
	assert.False(t, ok)

	// The 'A' cell has ink in it.
	bounds := img.Bounds()
	x0, x1 := int(uv.U0*float32(bounds.Dx())), int(uv.U1*float32(bounds.Dx()))
	y0, y1 := int(uv.V0*float32(bounds.Dy())), int(uv.V1*float32(bounds.Dy()))
	inked := false
	for y := y0; y < y1 && !inked; y++ {
		for x := x0; x < x1; x++ {
			if img.AlphaAt(x, y).A > 0 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked)
}

func TestVectorOffsets(t *testing.T) {
	v := goRegular(t)
	for _, text := range []string{"", "a", "hello world", "AVA Wave", "Crème brûlée", "日本"} {
		assertOffsetsValid(t, v, text, 16)
	}

	// Missing glyphs still advance.
	assert.Positive(t, v.MeasureWidth("日", 16))

	// A non-positive size measures as zero.
	assert.Equal(t, []float32{0, 0, 0}, v.CumulativeOffsets("ab", 0))
}

func TestVectorScalesWithSize(t *testing.T) {
	v := goRegular(t)
	text := "The quick brown fox"
	small := v.MeasureWidth(text, 16)
	large := v.MeasureWidth(text, 32)
	require.Positive(t, small)
	assert.InEpsilon(t, 2*small, large, 0.02)
}

func TestVectorDefaults(t *testing.T) {
	v := goRegular(t)
	assert.Equal(t, fonts.VectorLineSpacing, v.LineSpacing())
	assert.Equal(t, textgui.VectorMargin, v.DefaultMargin())
}

func TestVectorAtlas(t *testing.T) {
	v := goRegular(t)
	require.NotNil(t, v.AtlasImage())
	assert.Equal(t, 512, v.AtlasImage().Bounds().Dx())

	uv, ok := v.GlyphUV('A')
	require.True(t, ok)
	assert.Less(t, uv.U0, uv.U1)

	_, ok = v.GlyphUV('日')
	assert.False(t, ok)
}

func TestNewVectorRejectsGarbage(t *testing.T) {
	_, err := fonts.NewVector([]byte("not a font"))
	assert.ErrorContains(t, err, "failed to parse font")
}

func TestVectorConcurrentMeasurement(t *testing.T) {
	v := goRegular(t)
	want := v.MeasureWidth("concurrent measurement", 14)

	var wg sync.WaitGroup
	results := make([]float32, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Mix sizes so new faces are created while others measure.
			v.MeasureWidth("warm up", float32(10+i))
			results[i] = v.MeasureWidth("concurrent measurement", 14)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
