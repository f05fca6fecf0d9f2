package textgui

import "slices"

// EditState is the cursor and selection state of a single-line field.
// All indices count characters (runes), not bytes.
type EditState struct {
	// Cursor is the insertion point, always within [0, len].
	Cursor int

	// Anchor is where the current selection started. It only has meaning
	// while Selecting is true.
	Anchor int

	// Selecting is true while a non-empty selection exists. A selection
	// that shrinks back to the anchor collapses immediately.
	Selecting bool

	// HeldShift mirrors the Shift modifier; arrows and clicks extend the
	// selection while it is set.
	HeldShift bool

	// Hidden marks a password field whose display text is masked.
	Hidden bool

	// PointerHeld is true between a pointer press inside the field and its release.
	PointerHeld bool
}

// EditorConfig configures an Editor.
type EditorConfig struct {
	Metrics  GlyphMetrics
	Charset  CharacterSet
	FontSize float32

	// Budget is the widest the displayed text may grow, in pixels.
	// Zero or negative disables the check.
	Budget float32

	Hidden    bool
	MaskGlyph rune // defaults to DefaultMaskGlyph

	// MaxLength limits the number of characters; 0 means unlimited.
	MaxLength int

	// Accept filters typed characters. Nil accepts everything the
	// character set can display.
	Accept func(r rune) bool
}

// Editor is the editing engine behind single-line text inputs. It owns the
// true text, derives the displayed text through the field's character set
// and mask, and keeps EditState consistent across every operation.
//
// Out-of-range requests are clamped rather than rejected. The only refusal
// is an insertion that would overflow the width budget, exceed MaxLength or
// fail the Accept filter; such insertions leave the editor untouched.
type Editor struct {
	cfg EditorConfig

	text    []rune
	display string
	offsets []float32 // of display, len(text)+1 entries

	state EditState
	blink Blink

	onChange func(text string)
}

// NewEditor creates an empty editor. Metrics are required.
func NewEditor(cfg EditorConfig) (*Editor, error) {
	if cfg.Metrics == nil {
		return nil, ErrNoMetrics
	}
	if cfg.MaskGlyph == 0 {
		cfg.MaskGlyph = DefaultMaskGlyph
	}
	e := &Editor{cfg: cfg}
	e.state.Hidden = cfg.Hidden
	e.rebuild()
	return e, nil
}

// OnChange registers a callback invoked with the true text after every edit.
func (e *Editor) OnChange(fn func(text string)) {
	e.onChange = fn
}

// SetText replaces the whole text. The cursor moves to the end and any
// selection is dropped. Characters the character set cannot display one
// for one (control characters) are removed.
func (e *Editor) SetText(s string) {
	e.text = e.text[:0]
	for _, r := range s {
		if e.cfg.Charset.Accepts(r) {
			e.text = append(e.text, r)
		}
	}
	if e.cfg.MaxLength > 0 && len(e.text) > e.cfg.MaxLength {
		e.text = e.text[:e.cfg.MaxLength]
	}
	e.state.Cursor = len(e.text)
	e.clearSelection()
	e.rebuild()
	e.touch()
}

// HiddenText returns the true text. For hidden fields this is the only way
// to read what was typed.
func (e *Editor) HiddenText() string {
	return string(e.text)
}

// DisplayText returns the text as drawn: folded to the character set and
// masked for hidden fields.
func (e *Editor) DisplayText() string {
	return e.display
}

// Len returns the number of characters.
func (e *Editor) Len() int {
	return len(e.text)
}

// State returns a copy of the edit state.
func (e *Editor) State() EditState {
	return e.state
}

// Cursor returns the cursor index.
func (e *Editor) Cursor() int {
	return e.state.Cursor
}

// SetCursor moves the cursor to pos (clamped) and drops the selection.
func (e *Editor) SetCursor(pos int) {
	e.state.Cursor = e.clamp(pos)
	e.clearSelection()
	e.touch()
}

// Selection returns the ordered selection bounds. ok is false when nothing
// is selected.
func (e *Editor) Selection() (start, end int, ok bool) {
	if !e.state.Selecting {
		return e.state.Cursor, e.state.Cursor, false
	}
	return min(e.state.Anchor, e.state.Cursor), max(e.state.Anchor, e.state.Cursor), true
}

// SelectedText returns the true text inside the selection.
func (e *Editor) SelectedText() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}
	return string(e.text[start:end])
}

// SelectAll selects the whole text and puts the cursor at the end.
func (e *Editor) SelectAll() {
	e.state.Anchor = 0
	e.state.Cursor = len(e.text)
	e.state.Selecting = len(e.text) > 0
	e.touch()
}

// SetHidden switches password masking on or off.
func (e *Editor) SetHidden(hidden bool) {
	e.cfg.Hidden = hidden
	e.state.Hidden = hidden
	e.rebuild()
}

// SetShift records the Shift modifier state.
func (e *Editor) SetShift(down bool) {
	e.state.HeldShift = down
}

// SetFontSize changes the size used for measurement.
func (e *Editor) SetFontSize(size float32) {
	e.cfg.FontSize = size
	e.rebuild()
}

// SetMetrics changes the metrics provider. A nil provider is ignored.
func (e *Editor) SetMetrics(m GlyphMetrics) {
	if m == nil {
		return
	}
	e.cfg.Metrics = m
	e.rebuild()
}

// SetBudget changes the maximum displayed width. Existing text is kept even
// if it no longer fits; only later insertions are checked.
func (e *Editor) SetBudget(px float32) {
	e.cfg.Budget = px
}

// Budget returns the maximum displayed width.
func (e *Editor) Budget() float32 {
	return e.cfg.Budget
}

// Width returns the pixel width of the displayed text.
func (e *Editor) Width() float32 {
	return e.offsets[len(e.offsets)-1]
}

// Line returns the displayed text as a measured line.
func (e *Editor) Line() TextLine {
	return TextLine{Content: e.display, Offsets: e.offsets, Width: e.Width()}
}

// CursorPixelOffset returns the x offset of the cursor from the field's text origin.
func (e *Editor) CursorPixelOffset() float32 {
	return e.offsets[e.state.Cursor]
}

// SelectionPixelRange returns the x extent of the selection.
func (e *Editor) SelectionPixelRange() (x0, x1 float32, ok bool) {
	start, end, ok := e.Selection()
	if !ok {
		return 0, 0, false
	}
	return e.offsets[start], e.offsets[end], true
}

// HitTest maps an x offset relative to the text origin to a character
// index: the greatest index whose offset is <= x. Clicking exactly on a
// boundary selects the insertion point to its right.
func (e *Editor) HitTest(x float32) int {
	idx := 0
	for i, o := range e.offsets {
		if o > x {
			break
		}
		idx = i
	}
	return idx
}

// PointerDown places the cursor at x and starts a drag. With Shift held the
// existing anchor is kept so the click extends the selection.
func (e *Editor) PointerDown(x float32) {
	pos := e.HitTest(x)
	if e.state.HeldShift {
		if !e.state.Selecting {
			e.state.Anchor = e.state.Cursor
		}
		e.state.Cursor = pos
		e.state.Selecting = e.state.Cursor != e.state.Anchor
	} else {
		e.state.Cursor = pos
		e.state.Anchor = pos
		e.state.Selecting = false
	}
	e.state.PointerHeld = true
	e.touch()
}

// PointerMove extends the selection while the pointer is held.
func (e *Editor) PointerMove(x float32) {
	if !e.state.PointerHeld {
		return
	}
	if !e.state.Selecting {
		e.state.Anchor = e.state.Cursor
	}
	e.state.Cursor = e.HitTest(x)
	e.state.Selecting = e.state.Cursor != e.state.Anchor
	e.touch()
}

// PointerUp ends a drag.
func (e *Editor) PointerUp(x float32) {
	if !e.state.PointerHeld {
		return
	}
	e.PointerMove(x)
	e.state.PointerHeld = false
}

// HandleKey applies a navigation or deletion key. mods also updates
// HeldShift. It returns true when the text changed.
func (e *Editor) HandleKey(k Key, mods Modifiers) bool {
	e.state.HeldShift = mods.Shift

	switch k {
	case KeyLeft:
		if mods.Ctrl {
			e.moveTo(findWordBoundaryLeft(e.text, e.state.Cursor), mods.Shift)
		} else {
			e.moveBy(-1, mods.Shift)
		}
	case KeyRight:
		if mods.Ctrl {
			e.moveTo(findWordBoundaryRight(e.text, e.state.Cursor), mods.Shift)
		} else {
			e.moveBy(1, mods.Shift)
		}
	case KeyHome:
		e.moveTo(0, mods.Shift)
	case KeyEnd:
		e.moveTo(len(e.text), mods.Shift)
	case KeyBackspace:
		return e.DeleteLeft()
	case KeyDelete:
		return e.DeleteRight()
	case KeyA:
		if mods.Ctrl {
			e.SelectAll()
		}
	}
	return false
}

// moveBy moves the cursor one step. Without extend, an active selection
// collapses to its edge in the direction of travel instead of moving.
func (e *Editor) moveBy(delta int, extend bool) {
	if !extend && e.state.Selecting {
		start, end, _ := e.Selection()
		if delta < 0 {
			e.state.Cursor = start
		} else {
			e.state.Cursor = end
		}
		e.clearSelection()
		e.touch()
		return
	}
	e.moveTo(e.state.Cursor+delta, extend)
}

// moveTo moves the cursor to pos, extending or dropping the selection.
func (e *Editor) moveTo(pos int, extend bool) {
	pos = e.clamp(pos)
	if extend {
		if !e.state.Selecting {
			e.state.Anchor = e.state.Cursor
		}
		e.state.Cursor = pos
		e.state.Selecting = e.state.Cursor != e.state.Anchor
	} else {
		e.state.Cursor = pos
		e.clearSelection()
	}
	e.touch()
}

// InsertChar types r at the cursor, replacing the selection. It returns
// false, leaving the editor unchanged, when r is filtered out or the
// result would not fit the width budget or length limit.
func (e *Editor) InsertChar(r rune) bool {
	if !e.cfg.Charset.Accepts(r) {
		return false
	}
	if e.cfg.Accept != nil && !e.cfg.Accept(r) {
		return false
	}

	start, end, _ := e.Selection()
	base := slices.Concat(e.text[:start], e.text[end:])
	if e.cfg.MaxLength > 0 && len(base)+1 > e.cfg.MaxLength {
		return false
	}

	if e.cfg.Budget > 0 {
		m, size := e.cfg.Metrics, e.cfg.FontSize
		baseWidth := m.MeasureWidth(e.displayOf(string(base)), size)
		glyphWidth := m.MeasureWidth(e.displayOf(string(r)), size)
		if baseWidth+glyphWidth > e.cfg.Budget+wrapEpsilon {
			logger().Debug("insertion rejected: width budget",
				"char", string(r),
				"width", baseWidth+glyphWidth,
				"budget", e.cfg.Budget)
			return false
		}
	}

	e.text = slices.Insert(base, start, r)
	e.state.Cursor = start + 1
	e.clearSelection()
	e.rebuild()
	e.touch()
	e.changed()
	return true
}

// InsertText types each character of s in turn and returns how many were inserted.
func (e *Editor) InsertText(s string) int {
	n := 0
	for _, r := range s {
		if e.InsertChar(r) {
			n++
		}
	}
	return n
}

// DeleteLeft removes the selection or the character before the cursor.
func (e *Editor) DeleteLeft() bool {
	if e.state.Selecting {
		return e.deleteSelection()
	}
	e.touch()
	if e.state.Cursor == 0 {
		return false
	}
	e.text = slices.Delete(e.text, e.state.Cursor-1, e.state.Cursor)
	e.state.Cursor--
	e.rebuild()
	e.changed()
	return true
}

// DeleteRight removes the selection or the character after the cursor.
func (e *Editor) DeleteRight() bool {
	if e.state.Selecting {
		return e.deleteSelection()
	}
	e.touch()
	if e.state.Cursor >= len(e.text) {
		return false
	}
	e.text = slices.Delete(e.text, e.state.Cursor, e.state.Cursor+1)
	e.rebuild()
	e.changed()
	return true
}

// deleteSelection removes the selected characters and collapses the cursor.
func (e *Editor) deleteSelection() bool {
	start, end, ok := e.Selection()
	if !ok {
		return false
	}
	e.text = slices.Delete(e.text, start, end)
	e.state.Cursor = start
	e.clearSelection()
	e.rebuild()
	e.touch()
	e.changed()
	return true
}

// Compute advances the blink timer by dt seconds.
func (e *Editor) Compute(dt float32) {
	e.blink.Advance(dt)
}

// CursorVisible reports whether the cursor is in its visible blink phase.
func (e *Editor) CursorVisible() bool {
	return e.blink.Visible()
}

// clearSelection drops the selection, leaving the anchor on the cursor.
func (e *Editor) clearSelection() {
	e.state.Selecting = false
	e.state.Anchor = e.state.Cursor
}

// touch restarts the blink phase after user activity.
func (e *Editor) touch() {
	e.blink.Reset()
}

func (e *Editor) changed() {
	if e.onChange != nil {
		e.onChange(string(e.text))
	}
}

func (e *Editor) clamp(pos int) int {
	return min(max(pos, 0), len(e.text))
}

func (e *Editor) displayOf(s string) string {
	return displayText(s, e.cfg.Charset, e.cfg.Hidden, e.cfg.MaskGlyph)
}

// rebuild refreshes the display text and its offsets after a change.
func (e *Editor) rebuild() {
	e.display = e.displayOf(string(e.text))
	e.offsets = offsetsOf(e.cfg.Metrics, e.display, e.cfg.FontSize)
	if len(e.offsets) != len(e.text)+1 {
		// A display transform that changes the character count would break
		// index mapping; fall back to zero-width positions past the end.
		fixed := make([]float32, len(e.text)+1)
		copy(fixed, e.offsets)
		for i := len(e.offsets); i < len(fixed); i++ {
			fixed[i] = e.offsets[len(e.offsets)-1]
		}
		e.offsets = fixed
	}
	e.state.Cursor = e.clamp(e.state.Cursor)
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the start of the next word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}
