package textgui_test

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/textgui"
)

// Default padding is 4px per side and the scrollbar 12px, so this area
// wraps at 110px: eleven 10px characters. Its viewport is 100px tall and
// lines are 18px apart.
func newArea(cs textgui.CharacterSet) *textgui.TextArea {
	return textgui.NewTextArea(textgui.FieldConfig{
		Name:     "area",
		Bounds:   textgui.Rect{W: 8 + 12 + 110, H: 108},
		FontSize: testSize,
		Charset:  cs,
	}, textgui.NewFont("fixed", fixedFont()))
}

func TestTextAreaAddLine(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)

	a.AddLine("x")
	assert.Equal(t, 1, a.LineCount())
	assert.Equal(t, "x", a.Lines()[0].Content)

	a.AddLine("y")
	assert.Equal(t, 2, a.LineCount())
	assert.Equal(t, "x\ny", a.Text())
}

func TestTextAreaAddText(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)

	a.AddText("")
	assert.Zero(t, a.LineCount())

	a.AddText("hello")
	a.AddText(" world")
	assert.Equal(t, "hello world", a.Text())
	assert.Equal(t, 1, a.LineCount())
}

func TestTextAreaWrapsToWidth(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)
	assert.Equal(t, float32(110), a.WrapWidth())

	a.SetText("hello world foobar")
	assert.Equal(t, []string{"hello world", "foobar"}, lineContents(a.Flow()))

	a.SetSize(8+12+60, 108)
	assert.Equal(t, []string{"hello", "world", "foobar"}, lineContents(a.Flow()))
	assert.Equal(t, "hello world foobar", a.Text())
}

func TestTextAreaFoldsForASCII(t *testing.T) {
	a := newArea(textgui.CharsetASCII)
	a.SetText("Crème\nbrûlée")

	assert.Equal(t, []string{"Creme", "brulee"}, lineContents(a.Flow()))
	assert.Equal(t, "Crème\nbrûlée", a.Text())
}

func TestTextAreaFlowDescribesWrappedText(t *testing.T) {
	a := newArea(textgui.CharsetASCII)
	a.SetText("Crème\x01\nx")

	flow := a.Flow()
	assert.Equal(t, "Creme\nx", flow.Source)
	assert.Equal(t, utf8.RuneCountInString(flow.Source), flow.Length)
	assert.Equal(t, "Crème\x01\nx", a.Text())
}

func TestTextAreaFollowsTail(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)
	a.FollowTail = true

	for i := range 20 {
		a.AddLine(fmt.Sprintf("line %d", i))
	}
	s := a.ScrollModel()
	require.True(t, s.Overflows())
	assert.InDelta(t, 20*18-100+1, s.MaxOffset(), 1e-3)
	assert.True(t, s.AtEnd())

	// Once scrolled away from the end, new lines no longer move the view.
	a.Scroll(1)
	off := a.Offset()
	assert.Less(t, off, s.MaxOffset())
	a.AddLine("more")
	assert.Equal(t, off, a.Offset())

	a.HandleKey(textgui.KeyEnd, textgui.Modifiers{})
	a.AddLine("again")
	assert.True(t, s.AtEnd())
}

func TestTextAreaWithoutFollowStaysAtTop(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)
	for i := range 20 {
		a.AddLine(fmt.Sprintf("line %d", i))
	}
	assert.Zero(t, a.Offset())

	start, end := a.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)
}

func TestTextAreaKeysAndWheel(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)
	for i := range 20 {
		a.AddLine(fmt.Sprintf("line %d", i))
	}

	a.HandleWheel(-1)
	assert.Equal(t, float32(30), a.Offset())

	a.HandleKey(textgui.KeyHome, textgui.Modifiers{})
	assert.Zero(t, a.Offset())
	a.HandleKey(textgui.KeyDown, textgui.Modifiers{})
	assert.InDelta(t, 18, a.Offset(), 1e-4)
	a.HandleKey(textgui.KeyPageDown, textgui.Modifiers{})
	assert.InDelta(t, 118, a.Offset(), 1e-4)
	a.HandleKey(textgui.KeyUp, textgui.Modifiers{})
	assert.InDelta(t, 100, a.Offset(), 1e-4)
}

func TestTextAreaScrollbarTrackClick(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)
	for i := range 20 {
		a.AddLine(fmt.Sprintf("line %d", i))
	}

	// Clicking near the bottom of the track jumps to the end.
	a.HandlePointerDown(124, 107, textgui.Modifiers{})
	assert.True(t, a.ScrollModel().AtEnd())

	// Dragging the thumb back to the top scrolls to the start.
	b := a.Bounds()
	pos, size := a.Scrollbar()
	thumbY := b.Y + (pos+size/2)*b.H
	a.HandlePointerDown(124, thumbY, textgui.Modifiers{})
	a.HandlePointerMove(124, thumbY-200)
	a.HandlePointerUp(124, thumbY-200)
	assert.Zero(t, a.Offset())

	// Clicks outside the track do nothing.
	a.HandlePointerDown(10, 100, textgui.Modifiers{})
	assert.Zero(t, a.Offset())
}

func TestTextAreaClear(t *testing.T) {
	a := newArea(textgui.CharsetUnicode)
	for i := range 20 {
		a.AddLine(fmt.Sprintf("line %d", i))
	}
	a.ScrollTo(1)
	a.Clear()

	assert.Zero(t, a.LineCount())
	assert.Zero(t, a.Offset())
	assert.Empty(t, a.Text())
}

func TestTextAreaDrawsOnlyVisibleLines(t *testing.T) {
	a := textgui.NewTextArea(textgui.FieldConfig{
		Name:     "area",
		Bounds:   textgui.Rect{W: 130, H: 108},
		FontSize: testSize,
	}, textgui.NewFont("atlas", atlasMetrics{fixedFont()}))
	for range 50 {
		a.AddLine("a")
	}

	dl := textgui.AcquireDrawList()
	defer textgui.ReleaseDrawList(dl)
	style := textgui.DefaultStyle()
	a.Draw(dl, &style, false)

	start, end := a.VisibleRange()
	// Chrome is a background and four border edges; the scrollbar adds
	// track and thumb. Every visible line draws one glyph.
	assert.Len(t, dl.VtxBuffer, 4*(5+2+(end-start)))
}

func newInput(t *testing.T, cfg textgui.TextInputConfig) *textgui.TextInput {
	t.Helper()
	if cfg.Name == "" {
		cfg.Name = "input"
	}
	cfg.FontSize = testSize
	in, err := textgui.NewTextInput(cfg, textgui.NewFont("fixed", fixedFont()))
	require.NoError(t, err)
	return in
}

func TestTextInputBudgetFollowsBounds(t *testing.T) {
	in := newInput(t, textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{Bounds: textgui.Rect{W: 8 + 50, H: 30}},
	})
	assert.Equal(t, float32(50), in.Editor().Budget())

	for _, r := range "abcdef" {
		in.HandleChar(r)
	}
	assert.Equal(t, "abcde", in.Text())
	assert.Equal(t, textgui.InputNone, in.LastEvent())

	in.SetBounds(textgui.Rect{W: 8 + 100, H: 30})
	in.HandleChar('f')
	assert.Equal(t, "abcdef", in.Text())
	assert.Equal(t, textgui.InputChanged, in.LastEvent())
}

func TestTextInputMarginScalesWithHeight(t *testing.T) {
	in := newInput(t, textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{
			Bounds: textgui.Rect{W: 8 + 65, H: 30},
			Margin: textgui.BitmapMargin,
		},
	})
	assert.Equal(t, float32(50), in.Editor().Budget())
}

func TestTextInputSubmitAndCancel(t *testing.T) {
	in := newInput(t, textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{Bounds: textgui.Rect{W: 200, H: 30}},
	})
	var submitted string
	in.OnSubmit(func(text string) { submitted = text })
	in.SetText("go")

	in.HandleKey(textgui.KeyEnter, textgui.Modifiers{})
	assert.Equal(t, "go", submitted)
	assert.Equal(t, textgui.InputSubmitted, in.LastEvent())

	in.HandleKey(textgui.KeyEscape, textgui.Modifiers{})
	assert.Equal(t, textgui.InputCancelled, in.LastEvent())

	in.HandleKey(textgui.KeyBackspace, textgui.Modifiers{})
	assert.Equal(t, "g", in.Text())
	assert.Equal(t, textgui.InputChanged, in.LastEvent())
}

func TestTextInputPointerIsRelativeToText(t *testing.T) {
	in := newInput(t, textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{Bounds: textgui.Rect{X: 100, Y: 10, W: 200, H: 30}},
	})
	in.SetText("abcdefghij")

	// Text starts at x=104 after padding.
	in.HandlePointerDown(104+15, 20, textgui.Modifiers{})
	in.HandlePointerMove(104+45, 20)
	in.HandlePointerUp(104+45, 20)
	assert.Equal(t, "bcd", in.Editor().SelectedText())

	in.HandlePointerDown(104+75, 20, textgui.Modifiers{Shift: true})
	in.HandlePointerUp(104+75, 20)
	assert.Equal(t, "bcdefg", in.Editor().SelectedText())
}

func TestTextInputHidden(t *testing.T) {
	in := newInput(t, textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{Bounds: textgui.Rect{W: 200, H: 30}},
		Hidden:      true,
	})
	in.SetText("secret")
	assert.Equal(t, "******", in.DisplayText())
	assert.Equal(t, "secret", in.Text())

	in.SetHidden(false)
	assert.Equal(t, "secret", in.DisplayText())
}

func TestTextInputDrawsCursorOnlyWhenFocused(t *testing.T) {
	in := newInput(t, textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{Bounds: textgui.Rect{W: 200, H: 30}},
		Placeholder: "type here",
	})
	style := textgui.DefaultStyle()

	// Fixed fonts have no atlas: only chrome and the cursor produce quads.
	dl := textgui.AcquireDrawList()
	defer textgui.ReleaseDrawList(dl)
	in.Draw(dl, &style, false)
	assert.Len(t, dl.VtxBuffer, 4*5)

	dl.Clear()
	in.Draw(dl, &style, true)
	assert.Len(t, dl.VtxBuffer, 4*6)

	in.Compute(textgui.CursorBlinkPeriod)
	dl.Clear()
	in.Draw(dl, &style, true)
	assert.Len(t, dl.VtxBuffer, 4*5)
}

func TestLabelTruncates(t *testing.T) {
	cfg := textgui.FieldConfig{Name: "label", Bounds: textgui.Rect{W: 8 + 100, H: 20}, FontSize: testSize}
	font := textgui.NewFont("fixed", fixedFont())

	l := textgui.NewLabel(cfg, font, "abcdefghijklmnop")
	assert.Equal(t, "abcdefgh..", l.DisplayText())
	assert.Equal(t, "abcdefghijklmnop", l.Text())
	assert.Equal(t, float32(100), l.Line().Width)

	l.SetBounds(textgui.Rect{W: 8 + 200, H: 20})
	assert.Equal(t, "abcdefghijklmnop", l.DisplayText())

	l.Truncate = false
	l.SetBounds(textgui.Rect{W: 8 + 50, H: 20})
	assert.Equal(t, "abcdefghijklmnop", l.DisplayText())
}

func TestLabelFoldsAndReservesMargin(t *testing.T) {
	cfg := textgui.FieldConfig{
		Name:     "label",
		Bounds:   textgui.Rect{W: 8 + 110, H: 20},
		FontSize: testSize,
		Charset:  textgui.CharsetASCII,
		Margin:   textgui.BitmapMargin,
	}
	l := textgui.NewLabel(cfg, textgui.NewFont("fixed", fixedFont()), "Crème brûlée")
	assert.Equal(t, "Creme br..", l.DisplayText())
}

func TestTextInputRequiresMetrics(t *testing.T) {
	_, err := textgui.NewTextInput(textgui.TextInputConfig{
		FieldConfig: textgui.FieldConfig{Name: "cmd", FontSize: testSize},
	}, textgui.NewFont("empty", nil))
	assert.ErrorIs(t, err, textgui.ErrNoMetrics)
}
