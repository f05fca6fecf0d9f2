package textgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/textgui"
)

func TestDiacriticFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Crème brûlée", "Creme brulee"},
		{"façade naïve", "facade naive"},
		{"Ā ō ű", "A o u"},
		{"日本", "??"},
		{"“quoted” – dash…", "\"quoted\" - dash."},
		{"a\tb\x00c", "abc"},
		{"plain ASCII ~", "plain ASCII ~"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textgui.DiacriticFold(tt.in), tt.in)
	}
}

func TestFoldRune(t *testing.T) {
	r, ok := textgui.FoldRune('é')
	assert.True(t, ok)
	assert.Equal(t, 'e', r)

	_, ok = textgui.FoldRune('\n')
	assert.False(t, ok)

	r, ok = textgui.FoldRune('☃')
	assert.True(t, ok)
	assert.Equal(t, '?', r)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "*****", textgui.Mask("héllo", 0))
	assert.Equal(t, "••", textgui.Mask("ab", '•'))
	assert.Empty(t, textgui.Mask("", '*'))
}

func TestParseCharacterSet(t *testing.T) {
	tests := []struct {
		name string
		want textgui.CharacterSet
	}{
		{"ascii", textgui.CharsetASCII},
		{" Bitmap ", textgui.CharsetASCII},
		{"fold", textgui.CharsetASCII},
		{"unicode", textgui.CharsetUnicode},
		{"", textgui.CharsetUnicode},
		{"nonsense", textgui.CharsetUnicode},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textgui.ParseCharacterSet(tt.name), tt.name)
	}
	assert.Equal(t, "ascii", textgui.CharsetASCII.String())
	assert.Equal(t, "unicode", textgui.CharsetUnicode.String())
}

func TestCharacterSetAccepts(t *testing.T) {
	assert.True(t, textgui.CharsetUnicode.Accepts('日'))
	assert.True(t, textgui.CharsetASCII.Accepts('日'))
	assert.True(t, textgui.CharsetASCII.Accepts('é'))

	for _, cs := range []textgui.CharacterSet{textgui.CharsetUnicode, textgui.CharsetASCII} {
		assert.False(t, cs.Accepts('\n'), cs.String())
		assert.False(t, cs.Accepts('\x1b'), cs.String())
	}
}

func TestCharacterSetApply(t *testing.T) {
	assert.Equal(t, "Crème", textgui.CharsetUnicode.Apply("Crème"))
	assert.Equal(t, "Creme", textgui.CharsetASCII.Apply("Crème"))

	// Multi-line text keeps its line breaks.
	assert.Equal(t, "Creme\nbrulee", textgui.CharsetASCII.ApplyLines("Crème\nbrûlée"))
	assert.Equal(t, "Creme", textgui.CharsetASCII.Apply("Crè\nme"))
}
