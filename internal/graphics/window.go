package graphics

import (
	"fmt"

	"mini-rt/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window created at startup.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Window owns the glfw window and its GL context. Create and use it from the
// main goroutine only (callers lock the OS thread in init).
type Window struct {
	glfw *glfw.Window
}

// CreateWindow initializes glfw, opens a non-resizable 4.1 core window and loads GL.
func CreateWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		// the frame driver has its own limiter
		glfw.SwapInterval(0)
	}

	return &Window{glfw: window}, nil
}

// GLFW exposes the underlying window for input wiring.
func (w *Window) GLFW() *glfw.Window { return w.glfw }

// PollEvents pumps the event queue and reports whether a close was requested.
func (w *Window) PollEvents() bool {
	defer profiling.Track("frame.PollEvents")()
	glfw.PollEvents()
	return w.glfw.ShouldClose()
}

// SetCursorCaptured hides and locks the cursor for mouse look.
func (w *Window) SetCursorCaptured(captured bool) {
	if captured {
		w.glfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.glfw.GetSize()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// Size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

func (w *Window) SwapBuffers() {
	w.glfw.SwapBuffers()
}

// Destroy closes the window and shuts glfw down.
func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}
