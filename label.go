package textgui

// Label is a static single-line text field. Text wider than the field is
// cut and ends with ".." when Truncate is set, and clipped otherwise.
type Label struct {
	field

	text     string
	display  string
	line     TextLine
	Truncate bool
}

// NewLabel creates a label.
func NewLabel(cfg FieldConfig, font *Font, text string) *Label {
	l := &Label{field: newField(cfg, font), Truncate: true}
	l.SetText(text)
	return l
}

// SetText replaces the label text.
func (l *Label) SetText(s string) {
	l.text = s
	l.layout()
}

// Text returns the label text as given.
func (l *Label) Text() string {
	return l.text
}

// DisplayText returns the text as drawn after folding and truncation.
func (l *Label) DisplayText() string {
	return l.display
}

// Line returns the measured display line.
func (l *Label) Line() TextLine {
	return l.line
}

// SetFontSize changes the font size.
func (l *Label) SetFontSize(size float32) {
	if size <= 0 {
		return
	}
	l.fontSize = size
	l.layout()
}

// SetBounds moves or resizes the label.
func (l *Label) SetBounds(r Rect) {
	l.bounds = r
	l.layout()
}

// Compute is a no-op; labels have no animated state.
func (l *Label) Compute(float32) {}

func (l *Label) applyStyle(s *Style) {
	l.padding = s.Padding
	l.layout()
}

func (l *Label) layout() {
	s := l.charset.Apply(l.text)
	if l.Truncate {
		avail := l.inner().W - l.margin.Reserved(l.bounds.H)
		s = TruncateText(l.metrics(), s, avail, l.fontSize)
	}
	l.display = s
	l.line = NewTextLine(l.metrics(), s, l.fontSize)
}

// Draw renders the label. Labels have no chrome.
func (l *Label) Draw(dl *DrawList, style *Style, _ bool) {
	in := l.inner()
	dl.PushClipRect(l.bounds.X, l.bounds.Y, l.bounds.X+l.bounds.W, l.bounds.Y+l.bounds.H)
	y := in.Y + (in.H-l.fontSize)/2
	l.drawLine(dl, in.X, y, l.line, style.TextColor)
	dl.PopClipRect()
}
