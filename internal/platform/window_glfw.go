//go:build !js

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/cloth/internal/config"
	"github.com/kjkrol/cloth/internal/driver"
	"github.com/kjkrol/cloth/pkg/gfx"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// GLFWWindow is a desktop window with an OpenGL 3.3 core context.
type GLFWWindow struct {
	win    *glfw.Window
	conf   config.Window
	driver *driver.GL
}

func NewWindow(conf config.Window) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw window: %w", err)
	}
	win.SetPos(conf.PositionX, conf.PositionY)
	return &GLFWWindow{win: win, conf: conf}, nil
}

// Context makes the window context current and loads the GL driver on
// first use.
func (w *GLFWWindow) Context() (gfx.Context, error) {
	if w.driver != nil {
		return w.driver, nil
	}
	w.win.MakeContextCurrent()
	if w.conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	d, err := driver.NewGL()
	if err != nil {
		return nil, err
	}
	w.driver = d
	return d, nil
}

// Size returns the framebuffer size in pixels.
func (w *GLFWWindow) Size() (uint32, uint32) {
	return pixelSize(w.win.GetFramebufferSize())
}

func (w *GLFWWindow) OnResize(fn func(width, height uint32)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(pixelSize(width, height))
	})
}

// Run calls frame once per swap until the window is asked to close.
func (w *GLFWWindow) Run(frame func()) error {
	for !w.win.ShouldClose() {
		frame()
		w.win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func (w *GLFWWindow) Close() {
	if w.driver != nil {
		w.driver.Release()
		w.driver = nil
	}
	w.win.Destroy()
	glfw.Terminate()
}
