package fonts

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/textgui"
)

const (
	// VectorLineSpacing is the line pitch of vector fields relative to the font size.
	VectorLineSpacing float32 = 0.90

	// atlasPixelSize is the size glyphs are rasterized at for the atlas.
	atlasPixelSize = 32
)

// Vector measures with an OpenType font, including pair kerning. Faces are
// created per font size on demand and cached.
type Vector struct {
	font *opentype.Font

	mu    sync.Mutex // guards faces; opentype faces are not safe for concurrent use
	faces map[float32]font.Face

	once  sync.Once
	atlas glyphAtlas
}

// NewVector parses an OpenType or TrueType font.
func NewVector(data []byte) (*Vector, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Vector{font: f, faces: make(map[float32]font.Face)}, nil
}

// NewGoRegular returns the Go Regular font.
func NewGoRegular() (*Vector, error) {
	return NewVector(goregular.TTF)
}

// face returns the cached face for size. mu must be held.
func (v *Vector) face(size float32) (font.Face, error) {
	if f, ok := v.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(v.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	v.faces[size] = f
	return f, nil
}

// MeasureWidth returns the width of text.
func (v *Vector) MeasureWidth(text string, fontSize float32) float32 {
	offs := v.CumulativeOffsets(text, fontSize)
	return offs[len(offs)-1]
}

// CumulativeOffsets returns the offset before each character plus the
// total width. Kerning between a pair is applied before the second glyph.
// Characters the font has no glyph for advance like '?'.
func (v *Vector) CumulativeOffsets(text string, fontSize float32) []float32 {
	offs := make([]float32, 0, len(text)+1)
	if fontSize <= 0 {
		for range text {
			offs = append(offs, 0)
		}
		return append(offs, 0)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	face, err := v.face(fontSize)
	if err != nil {
		for range text {
			offs = append(offs, 0)
		}
		return append(offs, 0)
	}

	var x fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			x += face.Kern(prev, r)
		}
		offs = append(offs, toPixels(x))
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('?')
		}
		x += adv
		prev = r
	}
	return append(offs, toPixels(x))
}

// LineSpacing returns VectorLineSpacing.
func (v *Vector) LineSpacing() float32 {
	return VectorLineSpacing
}

// DefaultMargin returns textgui.VectorMargin.
func (v *Vector) DefaultMargin() textgui.Margin {
	return textgui.VectorMargin
}

func (v *Vector) build() {
	v.once.Do(func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		face, err := v.face(atlasPixelSize)
		if err != nil {
			v.atlas = glyphAtlas{img: image.NewAlpha(image.Rect(0, 0, 1, 1))}
			return
		}
		v.atlas = buildAtlas(face, latin1())
	})
}

// AtlasImage returns the Latin-1 glyph atlas, rasterizing it on first use.
func (v *Vector) AtlasImage() *image.Alpha {
	v.build()
	return v.atlas.AtlasImage()
}

// GlyphUV returns the atlas cell of r.
func (v *Vector) GlyphUV(r rune) (textgui.UVRect, bool) {
	v.build()
	return v.atlas.GlyphUV(r)
}

func toPixels(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
