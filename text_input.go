package textgui

import "fmt"

// InputEvent reports what a TextInput did with the last key press.
type InputEvent int

const (
	InputNone InputEvent = iota
	InputChanged
	InputSubmitted // Enter
	InputCancelled // Escape
)

// TextInputConfig configures a TextInput beyond the shared field settings.
type TextInputConfig struct {
	FieldConfig
	Placeholder string
	Hidden      bool
	MaskGlyph   rune
	MaxLength   int
	Accept      func(r rune) bool
}

// TextInput is an editable single-line field. Editing is delegated to an
// Editor whose width budget follows the field size.
type TextInput struct {
	field

	editor      *Editor
	placeholder string
	lastEvent   InputEvent

	onSubmit func(text string)
}

// NewTextInput creates an empty text input.
func NewTextInput(cfg TextInputConfig, font *Font) (*TextInput, error) {
	t := &TextInput{
		field:       newField(cfg.FieldConfig, font),
		placeholder: cfg.Placeholder,
	}
	editor, err := NewEditor(EditorConfig{
		Metrics:   font.Metrics,
		Charset:   cfg.Charset,
		FontSize:  t.fontSize,
		Hidden:    cfg.Hidden,
		MaskGlyph: cfg.MaskGlyph,
		MaxLength: cfg.MaxLength,
		Accept:    cfg.Accept,
	})
	if err != nil {
		return nil, fmt.Errorf("text input %q: %w", cfg.Name, err)
	}
	t.editor = editor
	t.editor.SetBudget(t.budget())
	return t, nil
}

// Editor returns the editing engine behind the field.
func (t *TextInput) Editor() *Editor {
	return t.editor
}

// SetText replaces the text.
func (t *TextInput) SetText(s string) {
	t.editor.SetText(s)
}

// Text returns the true text, even for hidden fields.
func (t *TextInput) Text() string {
	return t.editor.HiddenText()
}

// DisplayText returns the text as drawn.
func (t *TextInput) DisplayText() string {
	return t.editor.DisplayText()
}

// SetHidden switches password masking.
func (t *TextInput) SetHidden(hidden bool) {
	t.editor.SetHidden(hidden)
}

// SetPlaceholder sets the text shown while the field is empty.
func (t *TextInput) SetPlaceholder(s string) {
	t.placeholder = s
}

// OnChange registers a callback run after every edit.
func (t *TextInput) OnChange(fn func(text string)) {
	t.editor.OnChange(fn)
}

// OnSubmit registers a callback run when Enter is pressed.
func (t *TextInput) OnSubmit(fn func(text string)) {
	t.onSubmit = fn
}

// LastEvent returns the outcome of the most recent key or character.
func (t *TextInput) LastEvent() InputEvent {
	return t.lastEvent
}

// SetBounds moves or resizes the field and updates the width budget.
func (t *TextInput) SetBounds(r Rect) {
	t.bounds = r
	t.editor.SetBudget(t.budget())
}

// SetFontSize changes the font size.
func (t *TextInput) SetFontSize(size float32) {
	if size <= 0 {
		return
	}
	t.fontSize = size
	t.editor.SetFontSize(size)
}

// budget is the widest the displayed text may become.
func (t *TextInput) budget() float32 {
	return maxf(0, t.inner().W-t.margin.Reserved(t.bounds.H))
}

// Compute advances the cursor blink.
func (t *TextInput) Compute(dt float32) {
	t.editor.Compute(dt)
}

func (t *TextInput) applyStyle(s *Style) {
	t.padding = s.Padding
	t.editor.SetBudget(t.budget())
}

// Focusable reports true.
func (t *TextInput) Focusable() bool { return true }

// Blur ends any pointer drag when focus moves elsewhere.
func (t *TextInput) Blur() {
	if t.editor.State().PointerHeld {
		t.editor.PointerUp(t.editor.CursorPixelOffset())
	}
}

// HandlePointerDown places the cursor, extending the selection with Shift.
func (t *TextInput) HandlePointerDown(x, _ float32, mods Modifiers) {
	t.editor.SetShift(mods.Shift)
	t.editor.PointerDown(x - t.inner().X)
}

// HandlePointerMove extends the selection while dragging.
func (t *TextInput) HandlePointerMove(x, _ float32) {
	t.editor.PointerMove(x - t.inner().X)
}

// HandlePointerUp finishes a drag.
func (t *TextInput) HandlePointerUp(x, _ float32) {
	t.editor.PointerUp(x - t.inner().X)
}

// HandleWheel ignores the wheel.
func (t *TextInput) HandleWheel(float32) {}

// HandleKey applies navigation, deletion, Enter and Escape.
func (t *TextInput) HandleKey(k Key, mods Modifiers) {
	switch k {
	case KeyEnter:
		t.lastEvent = InputSubmitted
		if t.onSubmit != nil {
			t.onSubmit(t.editor.HiddenText())
		}
	case KeyEscape:
		t.lastEvent = InputCancelled
	default:
		if t.editor.HandleKey(k, mods) {
			t.lastEvent = InputChanged
		} else {
			t.lastEvent = InputNone
		}
	}
}

// HandleChar types r at the cursor.
func (t *TextInput) HandleChar(r rune) {
	if t.editor.InsertChar(r) {
		t.lastEvent = InputChanged
	} else {
		t.lastEvent = InputNone
	}
}

// Draw renders the field, its selection and, when focused, the cursor.
func (t *TextInput) Draw(dl *DrawList, style *Style, focused bool) {
	t.drawChrome(dl, style, focused)

	in := t.inner()
	y := in.Y + (in.H-t.fontSize)/2
	dl.PushClipRect(in.X, in.Y, in.X+in.W, in.Y+in.H)
	defer dl.PopClipRect()

	if t.editor.Len() == 0 {
		if t.placeholder != "" && !focused {
			line := NewTextLine(t.metrics(), t.charset.Apply(t.placeholder), t.fontSize)
			t.drawLine(dl, in.X, y, line, style.PlaceholderColor)
		}
	} else {
		if x0, x1, ok := t.editor.SelectionPixelRange(); ok {
			dl.AddRect(in.X+x0, y, x1-x0, t.fontSize, style.SelectedBgColor)
		}
		t.drawLine(dl, in.X, y, t.editor.Line(), style.TextColor)
	}

	if focused && t.editor.CursorVisible() {
		cx := in.X + t.editor.CursorPixelOffset()
		dl.AddRect(cx, y, style.CursorWidth, t.fontSize, style.CursorColor)
	}
}
