package textgui

// Font pairs a glyph metrics provider with the texture its atlas was
// uploaded to. Fonts are shared by every field that names them.
type Font struct {
	Name    string
	Metrics GlyphMetrics

	// TextureID is the renderer texture holding the atlas, 0 until uploaded.
	TextureID uint32
}

// NewFont creates a font from a metrics provider.
func NewFont(name string, m GlyphMetrics) *Font {
	return &Font{Name: name, Metrics: m}
}

// Atlas returns the font's glyph atlas, or nil when the metrics provider
// has none (measurement-only fonts draw no glyphs).
func (f *Font) Atlas() GlyphAtlas {
	if a, ok := f.Metrics.(GlyphAtlas); ok {
		return a
	}
	return nil
}

// LineSpacing returns the inter-line pitch relative to the font size.
func (f *Font) LineSpacing() float32 {
	return lineSpacingOf(f.Metrics)
}

// Margin is the horizontal space a field reserves before wrap and
// width-budget checks. It is Fixed pixels plus HeightFactor times the
// field's reference height.
type Margin struct {
	Fixed        float32 `toml:"fixed" yaml:"fixed"`
	HeightFactor float32 `toml:"height_factor" yaml:"height_factor"`
}

// Reserved returns the reserved width for a field of the given height.
func (m Margin) Reserved(height float32) float32 {
	return maxf(0, m.Fixed+m.HeightFactor*height)
}

// Default margins for the two font families. Vector fields keep a fixed
// side margin; bitmap fields scale it with their height.
var (
	VectorMargin = Margin{Fixed: 8}
	BitmapMargin = Margin{HeightFactor: 0.5}
)

// FieldConfig holds the settings shared by all text fields.
type FieldConfig struct {
	Name     string
	Bounds   Rect
	FontSize float32
	Charset  CharacterSet
	Margin   Margin
}

// Widget is a text field managed by a Toolkit.
type Widget interface {
	ID() ID
	Name() string
	Bounds() Rect
	SetBounds(r Rect)

	// Compute advances time-based state by dt seconds.
	Compute(dt float32)

	// Draw emits the field's primitives.
	Draw(dl *DrawList, style *Style, focused bool)

	applyStyle(style *Style)
}

// Interactive is implemented by widgets that react to pointer and keyboard
// input. Pointer coordinates are in screen space.
type Interactive interface {
	Widget
	Focusable() bool
	HandlePointerDown(x, y float32, mods Modifiers)
	HandlePointerMove(x, y float32)
	HandlePointerUp(x, y float32)
	HandleWheel(delta float32)
	HandleKey(k Key, mods Modifiers)
	HandleChar(r rune)
	Blur()
}

// field is the state shared by all text widgets.
type field struct {
	id       ID
	name     string
	font     *Font
	bounds   Rect
	fontSize float32
	charset  CharacterSet
	margin   Margin
	padding  float32
}

func newField(cfg FieldConfig, font *Font) field {
	if cfg.FontSize <= 0 {
		cfg.FontSize = 13
	}
	return field{
		id:       IDOf(cfg.Name),
		name:     cfg.Name,
		font:     font,
		bounds:   cfg.Bounds,
		fontSize: cfg.FontSize,
		charset:  cfg.Charset,
		margin:   cfg.Margin,
		padding:  DefaultStyle().Padding,
	}
}

// ID returns the field's identifier.
func (f *field) ID() ID { return f.id }

// Name returns the name the field was created with.
func (f *field) Name() string { return f.name }

// Bounds returns the field's screen rectangle.
func (f *field) Bounds() Rect { return f.bounds }

// Font returns the field's font.
func (f *field) Font() *Font { return f.font }

// FontSize returns the font size in pixels.
func (f *field) FontSize() float32 { return f.fontSize }

// Charset returns the field's character set.
func (f *field) Charset() CharacterSet { return f.charset }

// inner returns the text rectangle inside the padding.
func (f *field) inner() Rect {
	return f.bounds.Inset(f.padding)
}

func (f *field) metrics() GlyphMetrics {
	return f.font.Metrics
}

// drawChrome draws the background and border.
func (f *field) drawChrome(dl *DrawList, style *Style, focused bool) {
	b := f.bounds
	bg, border := style.FieldBgColor, style.FieldBorderColor
	if focused {
		bg, border = style.FieldFocusedBgColor, style.FocusColor
	}
	dl.AddRect(b.X, b.Y, b.W, b.H, bg)
	dl.AddRectOutline(b.X, b.Y, b.W, b.H, border, style.BorderSize)
}

// drawLine draws one measured line at (x, y).
func (f *field) drawLine(dl *DrawList, x, y float32, line TextLine, color uint32) {
	dl.AddTextLine(x, y, line, f.font.Atlas(), f.font.TextureID, f.fontSize, color)
}
