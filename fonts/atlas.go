package fonts

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/textgui"
)

// atlasWidth is the width of generated atlases. Height grows to fit.
const atlasWidth = 512

// latin1 returns the printable ASCII and Latin-1 supplement characters.
func latin1() []rune {
	rs := make([]rune, 0, 0x7F-0x20+0x100-0xA0)
	for r := rune(0x20); r < 0x7F; r++ {
		rs = append(rs, r)
	}
	for r := rune(0xA0); r < 0x100; r++ {
		rs = append(rs, r)
	}
	return rs
}

// glyphAtlas is a rasterized set of glyph cells.
type glyphAtlas struct {
	img *image.Alpha
	uv  map[rune]textgui.UVRect
}

// buildAtlas rasterizes runes from face into cells packed in rows. Every
// cell is one advance wide and ascent+descent tall, with the baseline at
// the ascent, so a cell maps onto a line-height quad without offsets.
func buildAtlas(face font.Face, runes []rune) glyphAtlas {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := ascent + m.Descent.Ceil()

	type cell struct {
		r    rune
		x, y int
		w    int
	}
	cells := make([]cell, 0, len(runes))
	x, y := 0, 0
	for _, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		w := max(adv.Ceil(), 1)
		if x+w > atlasWidth {
			x = 0
			y += cellH + 1
		}
		cells = append(cells, cell{r: r, x: x, y: y, w: w})
		x += w + 1
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, y+cellH))
	uv := make(map[rune]textgui.UVRect, len(cells))
	fw, fh := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())
	for _, c := range cells {
		dot := fixed.P(c.x, c.y+ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, c.r)
		if !ok {
			continue
		}
		clip := dr.Intersect(image.Rect(c.x, c.y, c.x+c.w, c.y+cellH))
		draw.DrawMask(img, clip, image.Opaque, image.Point{}, mask, maskp.Add(clip.Min.Sub(dr.Min)), draw.Over)
		uv[c.r] = textgui.UVRect{
			U0: float32(c.x) / fw,
			V0: float32(c.y) / fh,
			U1: float32(c.x+c.w) / fw,
			V1: float32(c.y+cellH) / fh,
		}
	}
	return glyphAtlas{img: img, uv: uv}
}

// AtlasImage returns the atlas.
func (a *glyphAtlas) AtlasImage() *image.Alpha {
	return a.img
}

// GlyphUV returns the cell of r.
func (a *glyphAtlas) GlyphUV(r rune) (textgui.UVRect, bool) {
	uv, ok := a.uv[r]
	return uv, ok
}
