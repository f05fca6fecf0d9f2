package textgui

// TextArea is a multi-line field that wraps its text to the field width and
// scrolls vertically. The unwrapped source text is kept so every re-wrap
// starts from the original string.
type TextArea struct {
	field

	source string
	flow   FlowedText
	scroll *ScrollModel

	// FollowTail keeps the view pinned to the last line when text is
	// appended while it was already scrolled to the end.
	FollowTail bool

	scrollbarW   float32
	dragging     bool
	dragGrab     float32 // pointer offset inside the thumb, in pixels
	thumbHovered bool
}

// NewTextArea creates an empty text area.
func NewTextArea(cfg FieldConfig, font *Font) *TextArea {
	t := &TextArea{
		field:      newField(cfg, font),
		scrollbarW: DefaultStyle().ScrollbarSize,
	}
	t.scroll = NewScrollModel(t.fontSize, font.LineSpacing(), t.inner().H)
	t.reflow()
	return t
}

// SetText replaces the whole text. The scroll offset is kept where possible.
func (t *TextArea) SetText(s string) {
	t.source = s
	t.reflow()
}

// Text returns the unwrapped text.
func (t *TextArea) Text() string {
	return t.source
}

// AddText appends s to the text without starting a new line.
func (t *TextArea) AddText(s string) {
	if s == "" {
		return
	}
	t.append(s)
}

// AddLine appends s as a new line. On an empty area the text simply
// becomes s; there is no preceding line to terminate.
func (t *TextArea) AddLine(s string) {
	if t.flow.LineCount() == 0 {
		t.append(s)
		return
	}
	t.append("\n" + s)
}

// append extends the source. Whether to follow the tail is decided from the
// scroll position before the new content changes MaxOffset.
func (t *TextArea) append(s string) {
	follow := t.FollowTail && t.scroll.AtEnd()
	t.source += s
	t.reflow()
	if follow {
		t.scroll.ScrollToEnd()
	}
}

// Clear removes all text and scrolls to the top.
func (t *TextArea) Clear() {
	t.source = ""
	t.reflow()
	t.scroll.SetOffset(0)
}

// Flow returns the current wrapped text.
func (t *TextArea) Flow() FlowedText {
	return t.flow
}

// Lines returns the wrapped lines.
func (t *TextArea) Lines() []TextLine {
	return t.flow.Lines
}

// LineCount returns the number of wrapped lines.
func (t *TextArea) LineCount() int {
	return t.flow.LineCount()
}

// ScrollModel exposes the area's scroll state.
func (t *TextArea) ScrollModel() *ScrollModel {
	return t.scroll
}

// SetSize resizes the field, keeping its position.
func (t *TextArea) SetSize(w, h float32) {
	t.SetBounds(Rect{X: t.bounds.X, Y: t.bounds.Y, W: w, H: h})
}

// SetBounds moves or resizes the field and re-wraps the text.
func (t *TextArea) SetBounds(r Rect) {
	t.bounds = r
	t.reflow()
}

// SetFontSize changes the font size and re-wraps the text.
func (t *TextArea) SetFontSize(size float32) {
	if size <= 0 {
		return
	}
	t.fontSize = size
	t.reflow()
}

// Scroll applies a wheel delta; positive deltas scroll towards the top.
func (t *TextArea) Scroll(delta float32) {
	t.scroll.Scroll(delta)
}

// ScrollTo jumps to a fraction of the scroll range.
func (t *TextArea) ScrollTo(fraction float32) {
	t.scroll.ScrollTo(fraction)
}

// Offset returns the scroll offset in pixels.
func (t *TextArea) Offset() float32 {
	return t.scroll.Offset()
}

// VisibleRange returns the lines that need drawing.
func (t *TextArea) VisibleRange() (start, end int) {
	return t.scroll.VisibleRange()
}

// Scrollbar returns the thumb position and size as track fractions.
func (t *TextArea) Scrollbar() (pos, size float32) {
	return t.scroll.Scrollbar()
}

// WrapWidth returns the bound lines are wrapped to.
func (t *TextArea) WrapWidth() float32 {
	return t.inner().W - t.reserved()
}

// reserved is the width kept free for the scrollbar and side margin.
func (t *TextArea) reserved() float32 {
	return t.margin.Reserved(t.fontSize) + t.scrollbarW
}

// reflow re-wraps the source and updates the scroll bounds.
func (t *TextArea) reflow() {
	t.flow = Wrap(t.metrics(), t.charset.ApplyLines(t.source), t.inner().W, t.fontSize, t.reserved())
	t.scroll.SetLineHeight(t.fontSize, t.font.LineSpacing())
	t.scroll.SetViewport(t.inner().H)
	t.scroll.SetLineCount(t.flow.LineCount())
}

// Compute is a no-op; text areas have no animated state.
func (t *TextArea) Compute(float32) {}

func (t *TextArea) applyStyle(s *Style) {
	t.padding = s.Padding
	t.scrollbarW = s.ScrollbarSize
	t.reflow()
}

// Focusable reports false; text areas are read-only.
func (t *TextArea) Focusable() bool { return false }

// Blur ends any scrollbar drag.
func (t *TextArea) Blur() { t.dragging = false }

// trackRect returns the scrollbar track.
func (t *TextArea) trackRect() Rect {
	b := t.bounds
	return Rect{X: b.X + b.W - t.scrollbarW, Y: b.Y, W: t.scrollbarW, H: b.H}
}

// thumbRect returns the scrollbar thumb.
func (t *TextArea) thumbRect() Rect {
	track := t.trackRect()
	pos, size := t.scroll.Scrollbar()
	return Rect{X: track.X, Y: track.Y + pos*track.H, W: track.W, H: size * track.H}
}

// HandlePointerDown starts a thumb drag or pages the track.
func (t *TextArea) HandlePointerDown(x, y float32, _ Modifiers) {
	if !t.scroll.Overflows() || !t.trackRect().Contains(Vec2{x, y}) {
		return
	}
	thumb := t.thumbRect()
	if thumb.Contains(Vec2{x, y}) {
		t.dragging = true
		t.dragGrab = y - thumb.Y
		return
	}
	// Click on the track centres the thumb on the pointer.
	t.dragGrab = thumb.H / 2
	t.dragTo(y)
}

// HandlePointerMove drags the thumb.
func (t *TextArea) HandlePointerMove(x, y float32) {
	t.thumbHovered = t.scroll.Overflows() && t.thumbRect().Contains(Vec2{x, y})
	if t.dragging {
		t.dragTo(y)
	}
}

// HandlePointerUp ends a thumb drag.
func (t *TextArea) HandlePointerUp(_, y float32) {
	if t.dragging {
		t.dragTo(y)
		t.dragging = false
	}
}

func (t *TextArea) dragTo(y float32) {
	track := t.trackRect()
	if track.H <= 0 {
		return
	}
	thumbTop := (y - t.dragGrab - track.Y) / track.H
	t.scroll.ScrollTo(t.scroll.ThumbToFraction(thumbTop))
}

// HandleWheel scrolls by a wheel delta.
func (t *TextArea) HandleWheel(delta float32) {
	t.Scroll(delta)
}

// HandleKey scrolls with the page and arrow keys.
func (t *TextArea) HandleKey(k Key, _ Modifiers) {
	switch k {
	case KeyUp:
		t.scroll.SetOffset(t.scroll.Offset() - t.scroll.Pitch())
	case KeyDown:
		t.scroll.SetOffset(t.scroll.Offset() + t.scroll.Pitch())
	case KeyPageUp:
		t.scroll.SetOffset(t.scroll.Offset() - t.scroll.ViewportHeight())
	case KeyPageDown:
		t.scroll.SetOffset(t.scroll.Offset() + t.scroll.ViewportHeight())
	case KeyHome:
		t.scroll.SetOffset(0)
	case KeyEnd:
		t.scroll.ScrollToEnd()
	}
}

// HandleChar ignores typed characters.
func (t *TextArea) HandleChar(rune) {}

// Draw renders the visible lines and, when the content overflows, the scrollbar.
func (t *TextArea) Draw(dl *DrawList, style *Style, focused bool) {
	t.drawChrome(dl, style, focused)

	in := t.inner()
	dl.PushClipRect(in.X, in.Y, in.X+in.W, in.Y+in.H)
	pitch := t.scroll.Pitch()
	start, end := t.scroll.VisibleRange()
	for i := start; i < end; i++ {
		y := in.Y + float32(i)*pitch - t.scroll.Offset()
		t.drawLine(dl, in.X, y, t.flow.Lines[i], style.TextColor)
	}
	dl.PopClipRect()

	if !t.scroll.Overflows() {
		return
	}
	track := t.trackRect()
	dl.AddRect(track.X, track.Y, track.W, track.H, style.ScrollbarBgColor)
	grab := style.ScrollbarGrabColor
	if t.dragging || t.thumbHovered {
		grab = style.ScrollbarGrabHovered
	}
	thumb := t.thumbRect()
	dl.AddRect(thumb.X+2, thumb.Y, thumb.W-4, thumb.H, grab)
}
