// Package window owns the GLFW window and its OpenGL 4.1 core context.
package window

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrCreate = errors.New("failed to create GLFW window")
	ErrLoadGL = errors.New("failed to load OpenGL functions")
)

type Window struct {
	win   *glfw.Window
	title string
}

// New creates the window, makes its context current and loads the GL
// function pointers. It must be called from the OS thread locked in main.
// On failure every GLFW resource is already released.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreate, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrCreate, err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrLoadGL, err)
	}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
	})

	return &Window{win: win, title: title}, nil
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) ShouldClose() bool     { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }
func (w *Window) SwapBuffers()          { w.win.SwapBuffers() }
func (w *Window) PollEvents()           { glfw.PollEvents() }

func (w *Window) GetCursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

// GetSize is the window size in screen coordinates, the space cursor
// positions are reported in.
func (w *Window) GetSize() (int, int) {
	return w.win.GetSize()
}

// Aspect is the framebuffer width over height.
func (w *Window) Aspect() float32 {
	fw, fh := w.win.GetFramebufferSize()
	if fh == 0 {
		return 1
	}
	return float32(fw) / float32(fh)
}

func (w *Window) KeyDown(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

// CaptureCursor hides the pointer and reports unbounded motion, which a
// free-look camera needs.
func (w *Window) CaptureCursor() {
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func (w *Window) OnCursorMove(fn func(x, y float64)) {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(x, y)
	})
}

func (w *Window) OnKey(fn func(key glfw.Key, action glfw.Action)) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fn(key, action)
	})
}

func (w *Window) OnMouseButton(fn func(button glfw.MouseButton, action glfw.Action)) {
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		fn(button, action)
	})
}
