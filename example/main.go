// Example demonstrates a console-style window built from a TOML field layout.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window with a scrolling output area, a command
// input that appends to it on Enter, and a masked password input.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textgui"
	"github.com/go-theft-auto/textgui/backend/opengl"
	"github.com/go-theft-auto/textgui/fonts"
)

const (
	windowWidth  = 800
	windowHeight = 520
	windowTitle  = "textgui example"
)

//go:embed fields.toml
var defaultLayout []byte

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	layout := flag.String("layout", "", "field layout file (.toml or .yaml); defaults to the embedded layout")
	flag.Parse()
	textgui.SetVerbose(*verbose)

	if err := run(*layout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadLayout(path string) (textgui.Config, error) {
	if path == "" {
		return textgui.ParseConfig(defaultLayout, "toml")
	}
	return textgui.LoadConfig(path)
}

func run(layoutPath string) error {
	cfg, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	vector, err := fonts.NewGoRegular()
	if err != nil {
		return err
	}

	ui, err := textgui.New(renderer,
		textgui.WithFont("vector", vector),
		textgui.WithFont("bitmap", fonts.NewBitmap()),
	)
	if err != nil {
		return fmt.Errorf("toolkit: %w", err)
	}
	if err := ui.Build(cfg); err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	wireConsole(ui)
	ui.Focus("command")

	input := opengl.NewGLFWInputAdapter(window)
	last := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.Begin(input.Update(), dt)
		input.EndFrame()

		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// wireConsole echoes submitted commands into the console area.
func wireConsole(ui *textgui.Toolkit) {
	console, ok := textgui.Find[*textgui.TextArea](ui, "console")
	if !ok {
		return
	}
	console.AddLine("Welcome. Long lines wrap to the console width; scroll with the wheel or drag the bar.")

	if cmd, ok := textgui.Find[*textgui.TextInput](ui, "command"); ok {
		cmd.OnSubmit(func(text string) {
			if text == "" {
				return
			}
			console.AddLine("> " + text)
			cmd.SetText("")
		})
	}
	if pw, ok := textgui.Find[*textgui.TextInput](ui, "password"); ok {
		pw.OnSubmit(func(text string) {
			console.AddLine(fmt.Sprintf("password set (%d characters)", len([]rune(text))))
			pw.SetText("")
		})
	}
}
