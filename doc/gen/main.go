// Command gen renders every field kind with sample data, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textgui"
	"github.com/go-theft-auto/textgui/backend/opengl"
	"github.com/go-theft-auto/textgui/fonts"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single screenshot to capture.
type screenshot struct {
	name   string                          // filename without extension
	width  int                             // viewport width
	height int                             // viewport height
	setup  func(ui *textgui.Toolkit) error // adds and prepares the fields
	focus  string                          // field to focus, if any
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	vector, err := fonts.NewGoRegular()
	if err != nil {
		return err
	}
	bitmap := fonts.NewBitmap()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		// Fresh toolkit per screenshot to avoid state leaking between captures.
		ui, err := textgui.New(renderer,
			textgui.WithStyle(textgui.GTAStyle()),
			textgui.WithFont("vector", vector),
			textgui.WithFont("bitmap", bitmap),
		)
		if err != nil {
			return err
		}
		if err := capture(renderer, ui, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, ui *textgui.Toolkit, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at 800x600.
	renderer.Resize(s.width, s.height)

	if err := s.setup(ui); err != nil {
		return err
	}
	if s.focus != "" {
		ui.Focus(s.focus)
	}

	for range 2 {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.Begin(nil, 1.0/60.0)
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

const sampleText = "The quick brown fox jumps over the lazy dog. " +
	"Crème brûlée, façade and naïve fold to plain letters in bitmap fields.\n" +
	"Explicit newlines always start a new line; long lines wrap at the last space."

// buildScreenshots returns the list of all screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "label", width: 400, height: 90,
			setup: func(ui *textgui.Toolkit) error {
				return ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
					{Kind: textgui.KindLabel, Name: "vector", Font: "vector", X: 8, Y: 8, W: 384, H: 28, FontSize: 16,
						Text: "Vector label with kerning: AVA Wave"},
					{Kind: textgui.KindLabel, Name: "bitmap", Font: "bitmap", Charset: "ascii", X: 8, Y: 48, W: 220, H: 28, FontSize: 13,
						Text: "Bitmap label truncated when it is too long"},
				}})
			},
		},
		{
			name: "text_area", width: 420, height: 220,
			setup: func(ui *textgui.Toolkit) error {
				return ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
					{Kind: textgui.KindArea, Name: "area", Font: "vector", X: 8, Y: 8, W: 404, H: 204, FontSize: 15,
						Text: sampleText},
				}})
			},
		},
		{
			name: "text_area_scrolled", width: 420, height: 160,
			setup: func(ui *textgui.Toolkit) error {
				if err := ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
					{Kind: textgui.KindArea, Name: "log", Font: "bitmap", Charset: "ascii", X: 8, Y: 8, W: 404, H: 144, FontSize: 13,
						FollowTail: true},
				}}); err != nil {
					return err
				}
				area, _ := textgui.Find[*textgui.TextArea](ui, "log")
				for i := range 30 {
					area.AddLine(fmt.Sprintf("[%02d] log line appended while following the tail", i))
				}
				return nil
			},
		},
		{
			name: "text_input", width: 400, height: 90,
			focus: "input",
			setup: func(ui *textgui.Toolkit) error {
				if err := ui.Build(textgui.Config{Fields: []textgui.FieldSpec{
					{Kind: textgui.KindInput, Name: "input", Font: "vector", X: 8, Y: 8, W: 384, H: 30, FontSize: 16,
						Text: "Hello, world!"},
					{Kind: textgui.KindInput, Name: "password", Font: "bitmap", Charset: "ascii", X: 8, Y: 50, W: 200, H: 30, FontSize: 13,
						Text: "hunter2", Hidden: true},
				}}); err != nil {
					return err
				}
				in, _ := textgui.Find[*textgui.TextInput](ui, "input")
				e := in.Editor()
				e.SetCursor(7)
				for range 5 {
					e.HandleKey(textgui.KeyRight, textgui.Modifiers{Shift: true})
				}
				return nil
			},
		},
	}
}
