package textgui

import (
	"fmt"
	"image"
	"log/slog"
	"slices"
)

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)

	// UploadAtlas creates an alpha texture from a glyph atlas and returns its ID.
	UploadAtlas(img *image.Alpha) (uint32, error)
}

// MarginProvider is implemented by metrics whose fields want a reserved
// margin other than VectorMargin.
type MarginProvider interface {
	DefaultMargin() Margin
}

// Toolkit owns a set of text fields, routes input to them and draws them
// once per frame.
type Toolkit struct {
	renderer Renderer
	style    Style
	log      *slog.Logger

	fonts     map[string]*Font
	fontOrder []string

	widgets []Widget
	byID    map[ID]Widget

	focused Interactive
	active  Interactive // receives pointer events until the button is released

	dl *DrawList
}

// Option configures a Toolkit instance.
type Option func(*Toolkit)

// WithFont registers a font under name. The first registered font is the
// default for fields that do not name one.
func WithFont(name string, m GlyphMetrics) Option {
	return func(t *Toolkit) {
		if _, dup := t.fonts[name]; !dup {
			t.fontOrder = append(t.fontOrder, name)
		}
		t.fonts[name] = NewFont(name, m)
	}
}

// WithStyle sets the style.
func WithStyle(style Style) Option {
	return func(t *Toolkit) { t.style = style }
}

// WithLogger routes this toolkit's logging to l. Engine logging from
// wrapping and editing stays on the package logger; see SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Toolkit) { t.log = l }
}

// New creates a Toolkit. A renderer and at least one font with metrics are
// required; font atlases are uploaded to the renderer here.
func New(renderer Renderer, opts ...Option) (*Toolkit, error) {
	if renderer == nil {
		return nil, ErrNoRenderer
	}

	t := &Toolkit{
		renderer: renderer,
		style:    DefaultStyle(),
		fonts:    make(map[string]*Font),
		byID:     make(map[ID]Widget),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.log == nil {
		t.log = logger()
	}

	if len(t.fonts) == 0 {
		return nil, ErrNoFonts
	}
	for _, name := range t.fontOrder {
		f := t.fonts[name]
		if f.Metrics == nil {
			return nil, fmt.Errorf("font %q: %w", name, ErrNoMetrics)
		}
		atlas := f.Atlas()
		if atlas == nil {
			continue
		}
		tex, err := renderer.UploadAtlas(atlas.AtlasImage())
		if err != nil {
			return nil, fmt.Errorf("failed to upload atlas for font %q: %w", name, err)
		}
		f.TextureID = tex
		t.log.Debug("font atlas uploaded", "font", name, "texture", tex)
	}

	return t, nil
}

// Font returns a registered font. An empty name selects the default font.
func (t *Toolkit) Font(name string) (*Font, error) {
	if name == "" {
		name = t.fontOrder[0]
	}
	f, ok := t.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return f, nil
}

// Style returns the current style.
func (t *Toolkit) Style() Style {
	return t.style
}

// SetStyle changes the style and re-lays out every field.
func (t *Toolkit) SetStyle(style Style) {
	t.style = style
	for _, w := range t.widgets {
		w.applyStyle(&t.style)
	}
}

// Resize notifies the renderer of a display size change.
func (t *Toolkit) Resize(width, height int) {
	t.renderer.Resize(width, height)
}

// Add registers a field. Field names must be unique.
func (t *Toolkit) Add(w Widget) error {
	if _, dup := t.byID[w.ID()]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateField, w.Name())
	}
	w.applyStyle(&t.style)
	t.widgets = append(t.widgets, w)
	t.byID[w.ID()] = w
	return nil
}

// Remove unregisters the named field.
func (t *Toolkit) Remove(name string) {
	id := IDOf(name)
	w, ok := t.byID[id]
	if !ok {
		return
	}
	delete(t.byID, id)
	t.widgets = slices.DeleteFunc(t.widgets, func(x Widget) bool { return x.ID() == id })
	if in, ok := w.(Interactive); ok {
		if t.focused == in {
			t.focused = nil
		}
		if t.active == in {
			t.active = nil
		}
	}
}

// Widget returns the named field.
func (t *Toolkit) Widget(name string) (Widget, bool) {
	w, ok := t.byID[IDOf(name)]
	return w, ok
}

// Widgets returns the fields in drawing order.
func (t *Toolkit) Widgets() []Widget {
	return t.widgets
}

// Find returns the named field if it has type T.
func Find[T Widget](t *Toolkit, name string) (T, bool) {
	var zero T
	w, ok := t.Widget(name)
	if !ok {
		return zero, false
	}
	typed, ok := w.(T)
	return typed, ok
}

// Focused returns the field with keyboard focus, or nil.
func (t *Toolkit) Focused() Widget {
	if t.focused == nil {
		return nil
	}
	return t.focused
}

// Focus gives keyboard focus to the named field. An unknown or
// non-focusable name clears focus.
func (t *Toolkit) Focus(name string) {
	w, _ := t.Widget(name)
	in, ok := w.(Interactive)
	if !ok || !in.Focusable() {
		t.setFocus(nil)
		return
	}
	t.setFocus(in)
}

func (t *Toolkit) setFocus(in Interactive) {
	if t.focused == in {
		return
	}
	if t.focused != nil {
		t.focused.Blur()
	}
	t.focused = in
	if in != nil {
		t.log.Debug("focus changed", "field", in.Name())
	}
}

// focusNext moves focus to the next focusable field, wrapping around.
func (t *Toolkit) focusNext(reverse bool) {
	var order []Interactive
	for _, w := range t.widgets {
		if in, ok := w.(Interactive); ok && in.Focusable() {
			order = append(order, in)
		}
	}
	if len(order) == 0 {
		return
	}
	if reverse {
		slices.Reverse(order)
	}
	idx := slices.Index(order, t.focused)
	t.setFocus(order[(idx+1)%len(order)])
}

// hitTest returns the topmost interactive field under p.
func (t *Toolkit) hitTest(p Vec2) Interactive {
	for _, w := range slices.Backward(t.widgets) {
		if in, ok := w.(Interactive); ok && in.Bounds().Contains(p) {
			return in
		}
	}
	return nil
}

// navKeys are delivered with key repeat.
var navKeys = []Key{
	KeyLeft, KeyRight, KeyUp, KeyDown,
	KeyPageUp, KeyPageDown, KeyHome, KeyEnd,
	KeyBackspace, KeyDelete,
}

// Begin starts a frame: input is routed to the fields and blink timers
// advance by dt seconds. input may be nil for frames without input.
func (t *Toolkit) Begin(input *InputState, dt float32) {
	if input != nil {
		input.UpdateKeyRepeat(dt)
		t.dispatch(input)
	}
	for _, w := range t.widgets {
		w.Compute(dt)
	}
}

func (t *Toolkit) dispatch(input *InputState) {
	mouse := Vec2{input.MouseX, input.MouseY}
	hit := t.hitTest(mouse)

	if input.MouseClicked(MouseButtonLeft) {
		switch {
		case hit == nil:
			t.setFocus(nil)
		case hit.Focusable():
			t.setFocus(hit)
		}
		if hit != nil {
			hit.HandlePointerDown(mouse.X, mouse.Y, input.Mods)
			t.active = hit
		}
	}

	if t.active != nil {
		t.active.HandlePointerMove(mouse.X, mouse.Y)
	} else if hit != nil {
		hit.HandlePointerMove(mouse.X, mouse.Y)
	}

	if input.MouseReleased(MouseButtonLeft) && t.active != nil {
		t.active.HandlePointerUp(mouse.X, mouse.Y)
		t.active = nil
	}

	if input.MouseWheelY != 0 && hit != nil {
		hit.HandleWheel(input.MouseWheelY)
	}

	if input.KeyPressed(KeyTab) {
		t.focusNext(input.Mods.Shift)
	}

	target := t.focused
	if target == nil {
		target = hit
	}
	if target == nil {
		return
	}

	for _, k := range navKeys {
		if input.KeyRepeated(k) {
			target.HandleKey(k, input.Mods)
		}
	}
	for _, k := range []Key{KeyEnter, KeyEscape} {
		if input.KeyPressed(k) {
			t.log.Debug("key", "key", k, "field", target.Name())
			target.HandleKey(k, input.Mods)
		}
	}
	if input.Mods.Ctrl && input.KeyPressed(KeyA) {
		target.HandleKey(KeyA, input.Mods)
	}
	if target == t.focused {
		for _, r := range input.InputChars {
			target.HandleChar(r)
		}
	}
}

// End draws every field and submits the frame to the renderer.
func (t *Toolkit) End() error {
	t.dl = AcquireDrawList()
	defer func() {
		ReleaseDrawList(t.dl)
		t.dl = nil
	}()

	for _, w := range t.widgets {
		focused := t.focused != nil && w.ID() == t.focused.ID()
		w.Draw(t.dl, &t.style, focused)
	}
	return t.renderer.Render(t.dl)
}

// Build creates and registers the fields described by cfg, and applies its
// style. Fields built before an error stay registered.
func (t *Toolkit) Build(cfg Config) error {
	if cfg.Style != "" {
		t.SetStyle(StyleByName(cfg.Style))
	}
	if cfg.Verbose {
		SetVerbose(true)
	}

	for _, spec := range cfg.Fields {
		w, err := t.buildField(spec)
		if err != nil {
			return fmt.Errorf("field %q: %w", spec.Name, err)
		}
		if err := t.Add(w); err != nil {
			return err
		}
	}
	t.log.Debug("fields built", "count", len(cfg.Fields))
	return nil
}

func (t *Toolkit) buildField(spec FieldSpec) (Widget, error) {
	font, err := t.Font(spec.Font)
	if err != nil {
		return nil, err
	}

	margin := VectorMargin
	if mp, ok := font.Metrics.(MarginProvider); ok {
		margin = mp.DefaultMargin()
	}
	if spec.Margin != nil {
		margin = *spec.Margin
	}

	fc := FieldConfig{
		Name:     spec.Name,
		Bounds:   spec.Bounds(),
		FontSize: spec.FontSize,
		Charset:  ParseCharacterSet(spec.Charset),
		Margin:   margin,
	}

	switch spec.Kind {
	case KindLabel:
		l := NewLabel(fc, font, "")
		if spec.Truncate != nil {
			l.Truncate = *spec.Truncate
		}
		l.SetText(spec.Text)
		return l, nil
	case KindArea:
		a := NewTextArea(fc, font)
		a.FollowTail = spec.FollowTail
		a.SetText(spec.Text)
		return a, nil
	case KindInput, "":
		in, err := NewTextInput(TextInputConfig{
			FieldConfig: fc,
			Placeholder: spec.Placeholder,
			Hidden:      spec.Hidden,
			MaxLength:   spec.MaxLength,
		}, font)
		if err != nil {
			return nil, err
		}
		in.SetText(spec.Text)
		return in, nil
	default:
		return nil, fmt.Errorf("unknown field kind %q", spec.Kind)
	}
}
