package textgui_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/textgui"
)

func TestMouseEdges(t *testing.T) {
	s := textgui.NewInputState()

	s.SetMouseButton(textgui.MouseButtonLeft, true)
	assert.True(t, s.MouseClicked(textgui.MouseButtonLeft))
	assert.True(t, s.MouseDown(textgui.MouseButtonLeft))

	s.Reset()
	assert.False(t, s.MouseClicked(textgui.MouseButtonLeft))
	assert.True(t, s.MouseDown(textgui.MouseButtonLeft))

	s.SetMouseButton(textgui.MouseButtonLeft, false)
	assert.True(t, s.MouseReleased(textgui.MouseButtonLeft))
	assert.False(t, s.MouseDown(textgui.MouseButtonLeft))

	// Out-of-range buttons are ignored.
	s.SetMouseButton(textgui.MouseButtonCount, true)
	assert.False(t, s.MouseDown(textgui.MouseButtonCount))
}

func TestResetClearsFrameInput(t *testing.T) {
	s := textgui.NewInputState()
	s.AddInputChar('x')
	s.SetMouseWheel(2)
	s.SetKey(textgui.KeyEnter, true)

	s.Reset()
	assert.Empty(t, s.InputChars)
	assert.Zero(t, s.MouseWheelY)
	assert.False(t, s.KeyPressed(textgui.KeyEnter))
}

func TestKeyRepeat(t *testing.T) {
	s := textgui.NewInputState()
	k := textgui.KeyLeft

	s.SetKey(k, true)
	assert.True(t, s.KeyRepeated(k))

	s.Reset()
	s.UpdateKeyRepeat(0.2)
	assert.False(t, s.KeyRepeated(k))

	// Past the delay, each interval yields one pulse however often it is polled.
	s.UpdateKeyRepeat(0.25)
	assert.True(t, s.KeyRepeated(k))
	assert.False(t, s.KeyRepeated(k))

	s.UpdateKeyRepeat(textgui.KeyRepeatInterval)
	assert.True(t, s.KeyRepeated(k))

	// Releasing and pressing again restarts the delay.
	s.SetKey(k, false)
	assert.False(t, s.KeyRepeated(k))
	s.SetKey(k, true)
	s.Reset()
	s.UpdateKeyRepeat(0.1)
	assert.False(t, s.KeyRepeated(k))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "Backspace", textgui.KeyName(textgui.KeyBackspace))
	assert.Equal(t, "PgDn", textgui.KeyPageDown.String())
	assert.Equal(t, "Esc", fmt.Sprint(textgui.KeyEscape))
	assert.Equal(t, "?", textgui.KeyCount.String())
}
