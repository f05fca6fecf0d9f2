package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textgui"
)

// GLFWInputAdapter feeds GLFW window events into a textgui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *textgui.InputState
	wheel  float32 // accumulated between frames
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  textgui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update returns the input collected since the previous call. Call it once
// per frame after glfw.PollEvents and before textgui.Toolkit.Begin. The
// per-frame parts of the state stay set until EndFrame.
func (a *GLFWInputAdapter) Update() *textgui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.SetMouseWheel(a.wheel)
	a.wheel = 0

	a.input.Mods = textgui.Modifiers{
		Ctrl:  a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl),
		Shift: a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift),
		Alt:   a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt),
		Super: a.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper),
	}

	return a.input
}

// EndFrame clears per-frame input. Call it after textgui.Toolkit.Begin.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *textgui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == textgui.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, _, yoff float64) {
	a.wheel += float32(yoff)
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps GLFW keys to textgui keys.
func glfwKeyToKey(key glfw.Key) textgui.Key {
	switch key {
	case glfw.KeyTab:
		return textgui.KeyTab
	case glfw.KeyLeft:
		return textgui.KeyLeft
	case glfw.KeyRight:
		return textgui.KeyRight
	case glfw.KeyUp:
		return textgui.KeyUp
	case glfw.KeyDown:
		return textgui.KeyDown
	case glfw.KeyPageUp:
		return textgui.KeyPageUp
	case glfw.KeyPageDown:
		return textgui.KeyPageDown
	case glfw.KeyHome:
		return textgui.KeyHome
	case glfw.KeyEnd:
		return textgui.KeyEnd
	case glfw.KeyDelete:
		return textgui.KeyDelete
	case glfw.KeyBackspace:
		return textgui.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return textgui.KeyEnter
	case glfw.KeyEscape:
		return textgui.KeyEscape
	case glfw.KeyA:
		return textgui.KeyA
	default:
		return textgui.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons to textgui buttons.
func glfwMouseButton(button glfw.MouseButton) textgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return textgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return textgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return textgui.MouseButtonMiddle
	default:
		return -1
	}
}
