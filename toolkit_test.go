package textgui_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/textgui"
	"github.com/go-theft-auto/textgui/fonts"
)

const frame = float32(1.0 / 60.0)

func newToolkit(t *testing.T, opts ...textgui.Option) (*textgui.Toolkit, *mockRenderer) {
	t.Helper()
	r := &mockRenderer{}
	opts = append([]textgui.Option{textgui.WithFont("fixed", fixedFont())}, opts...)
	ui, err := textgui.New(r, opts...)
	require.NoError(t, err)
	return ui, r
}

func twoInputs() textgui.Config {
	return textgui.Config{Fields: []textgui.FieldSpec{
		{Kind: textgui.KindInput, Name: "a", W: 200, H: 30, FontSize: testSize},
		{Kind: textgui.KindInput, Name: "b", Y: 40, W: 200, H: 30, FontSize: testSize},
	}}
}

func TestNewRequiresRendererAndFonts(t *testing.T) {
	_, err := textgui.New(nil, textgui.WithFont("fixed", fixedFont()))
	assert.ErrorIs(t, err, textgui.ErrNoRenderer)

	_, err = textgui.New(&mockRenderer{})
	assert.ErrorIs(t, err, textgui.ErrNoFonts)

	_, err = textgui.New(&mockRenderer{}, textgui.WithFont("broken", nil))
	assert.ErrorIs(t, err, textgui.ErrNoMetrics)
}

func TestNewUploadsAtlases(t *testing.T) {
	ui, r := newToolkit(t, textgui.WithFont("bitmap", fonts.NewBitmap()))
	assert.Equal(t, 1, r.uploads)

	f, err := ui.Font("bitmap")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), f.TextureID)

	def, err := ui.Font("")
	require.NoError(t, err)
	assert.Equal(t, "fixed", def.Name)
	assert.Zero(t, def.TextureID)

	_, err = ui.Font("missing")
	assert.ErrorIs(t, err, textgui.ErrUnknownFont)
}

func TestNewReportsUploadFailure(t *testing.T) {
	uploadErr := errors.New("out of texture memory")
	_, err := textgui.New(&mockRenderer{uploadErr: uploadErr},
		textgui.WithFont("bitmap", fonts.NewBitmap()))
	assert.ErrorIs(t, err, uploadErr)
}

func TestBuildErrors(t *testing.T) {
	ui, _ := newToolkit(t)

	err := ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
		{Kind: textgui.KindLabel, Name: "x", Font: "nope"},
	}})
	assert.ErrorIs(t, err, textgui.ErrUnknownFont)

	err = ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
		{Kind: "slider", Name: "y"},
	}})
	assert.ErrorContains(t, err, "unknown field kind")

	err = ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
		{Name: "dup"}, {Name: "dup"},
	}})
	assert.ErrorIs(t, err, textgui.ErrDuplicateField)
}

func TestBuildCreatesFields(t *testing.T) {
	ui, _ := newToolkit(t, textgui.WithFont("bitmap", fonts.NewBitmap()))
	noTruncate := false

	err := ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
		{Kind: textgui.KindLabel, Name: "title", W: 58, H: 20, FontSize: testSize,
			Text: "a long title", Truncate: &noTruncate},
		{Kind: textgui.KindArea, Name: "log", W: 130, H: 108, FontSize: testSize,
			Text: "one\ntwo", FollowTail: true},
		{Kind: textgui.KindInput, Name: "plain", W: 108, H: 30, FontSize: testSize,
			Margin: &textgui.Margin{}},
		{Kind: textgui.KindInput, Name: "pw", Font: "bitmap", W: 108, H: 30, FontSize: 13,
			Charset: "ascii", Hidden: true, Text: "pässword"},
	}})
	require.NoError(t, err)
	assert.Len(t, ui.Widgets(), 4)

	title, ok := textgui.Find[*textgui.Label](ui, "title")
	require.True(t, ok)
	assert.Equal(t, "a long title", title.DisplayText())

	area, ok := textgui.Find[*textgui.TextArea](ui, "log")
	require.True(t, ok)
	assert.True(t, area.FollowTail)
	assert.Equal(t, 2, area.LineCount())

	plain, ok := textgui.Find[*textgui.TextInput](ui, "plain")
	require.True(t, ok)
	assert.Equal(t, float32(100), plain.Editor().Budget())

	pw, ok := textgui.Find[*textgui.TextInput](ui, "pw")
	require.True(t, ok)
	assert.Equal(t, "pässword", pw.Text())
	assert.Equal(t, "********", pw.DisplayText())
	assert.Equal(t, textgui.CharsetASCII, pw.Charset())
	// Bitmap fonts reserve half the field height.
	assert.Equal(t, float32(100-15), pw.Editor().Budget())

	_, ok = textgui.Find[*textgui.Label](ui, "plain")
	assert.False(t, ok)
}

func TestSetStyleRelaysFields(t *testing.T) {
	ui, _ := newToolkit(t)
	require.NoError(t, ui.Build(twoInputs()))
	a, _ := textgui.Find[*textgui.TextInput](ui, "a")
	assert.Equal(t, float32(200-8-8), a.Editor().Budget())

	ui.SetStyle(textgui.GTAStyle())
	assert.Equal(t, float32(200-12-8), a.Editor().Budget())

	require.NoError(t, ui.Build(textgui.Config{Style: "default"}))
	assert.Equal(t, float32(200-8-8), a.Editor().Budget())
}

func TestClickFocusesAndTypes(t *testing.T) {
	ui, _ := newToolkit(t)
	require.NoError(t, ui.Build(twoInputs()))
	input := textgui.NewInputState()

	input.SetMousePos(10, 10)
	input.SetMouseButton(textgui.MouseButtonLeft, true)
	ui.Begin(input, frame)
	require.NotNil(t, ui.Focused())
	assert.Equal(t, "a", ui.Focused().Name())

	input.Reset()
	input.SetMouseButton(textgui.MouseButtonLeft, false)
	ui.Begin(input, frame)

	input.Reset()
	input.AddInputChar('h')
	input.AddInputChar('i')
	ui.Begin(input, frame)

	input.Reset()
	input.SetKey(textgui.KeyBackspace, true)
	ui.Begin(input, frame)
	input.Reset()
	input.SetKey(textgui.KeyBackspace, false)
	ui.Begin(input, frame)

	a, _ := textgui.Find[*textgui.TextInput](ui, "a")
	assert.Equal(t, "h", a.Text())

	// Clicking empty space clears focus; typed characters go nowhere.
	input.Reset()
	input.SetMousePos(500, 500)
	input.SetMouseButton(textgui.MouseButtonLeft, true)
	input.AddInputChar('x')
	ui.Begin(input, frame)
	assert.Nil(t, ui.Focused())
	assert.Equal(t, "h", a.Text())
}

func TestTabCyclesFocus(t *testing.T) {
	ui, _ := newToolkit(t)
	require.NoError(t, ui.Build(twoInputs()))
	input := textgui.NewInputState()

	press := func(mods textgui.Modifiers) {
		input.Reset()
		input.Mods = mods
		input.SetKey(textgui.KeyTab, true)
		ui.Begin(input, frame)
		input.Reset()
		input.SetKey(textgui.KeyTab, false)
		ui.Begin(input, frame)
	}

	press(textgui.Modifiers{})
	assert.Equal(t, "a", ui.Focused().Name())
	press(textgui.Modifiers{})
	assert.Equal(t, "b", ui.Focused().Name())
	press(textgui.Modifiers{})
	assert.Equal(t, "a", ui.Focused().Name())
	press(textgui.Modifiers{Shift: true})
	assert.Equal(t, "b", ui.Focused().Name())
}

func TestFocusByName(t *testing.T) {
	ui, _ := newToolkit(t)
	require.NoError(t, ui.Build(twoInputs()))
	require.NoError(t, ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
		{Kind: textgui.KindLabel, Name: "caption", Y: 80, W: 200, H: 20},
	}}))

	ui.Focus("b")
	assert.Equal(t, "b", ui.Focused().Name())

	// Labels can't take focus.
	ui.Focus("caption")
	assert.Nil(t, ui.Focused())

	ui.Focus("a")
	ui.Remove("a")
	assert.Nil(t, ui.Focused())
	_, ok := ui.Widget("a")
	assert.False(t, ok)
	assert.Len(t, ui.Widgets(), 2)
}

func TestWheelScrollsHoveredArea(t *testing.T) {
	ui, _ := newToolkit(t)
	require.NoError(t, ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
		{Kind: textgui.KindArea, Name: "log", W: 130, H: 108, FontSize: testSize,
			Text: strings.Repeat("line\n", 20)},
	}}))
	area, _ := textgui.Find[*textgui.TextArea](ui, "log")

	input := textgui.NewInputState()
	input.SetMousePos(50, 50)
	input.SetMouseWheel(-1)
	ui.Begin(input, frame)
	assert.Equal(t, float32(30), area.Offset())

	// Keys reach the hovered area when nothing has focus.
	input.Reset()
	input.SetKey(textgui.KeyEnd, true)
	ui.Begin(input, frame)
	assert.True(t, area.ScrollModel().AtEnd())

	// The wheel is ignored away from the field.
	input.Reset()
	input.SetKey(textgui.KeyEnd, false)
	input.SetMousePos(500, 500)
	input.SetMouseWheel(5)
	ui.Begin(input, frame)
	assert.True(t, area.ScrollModel().AtEnd())
}

func TestEndRendersOnce(t *testing.T) {
	ui, r := newToolkit(t)
	require.NoError(t, ui.Build(twoInputs()))

	ui.Begin(nil, frame)
	require.NoError(t, ui.End())
	assert.Equal(t, 1, r.renderCalls)
	// Two fields with a background and four border edges each.
	assert.Equal(t, 2*5*4, r.lastVerts)
}

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	ui, _ := newToolkit(t, textgui.WithLogger(debugLogger(&buf)))
	require.NoError(t, ui.Build(twoInputs()))
	ui.Focus("b")

	assert.Contains(t, buf.String(), "focus changed")
	assert.Contains(t, buf.String(), "field=b")
}

func TestWithLoggerIsPerToolkit(t *testing.T) {
	var first, second bytes.Buffer
	a, _ := newToolkit(t, textgui.WithLogger(debugLogger(&first)))
	require.NoError(t, a.Build(twoInputs()))
	first.Reset()

	b, _ := newToolkit(t, textgui.WithLogger(debugLogger(&second)))
	require.NoError(t, b.Build(twoInputs()))
	second.Reset()

	a.Focus("b")
	assert.Contains(t, first.String(), "focus changed")
	assert.Empty(t, second.String())
}
