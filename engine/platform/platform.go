package platform

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/prisma/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the native window and the OpenGL context attached to it.
// It is the seam between the engine and the windowing system: the gfx
// backend receives only the proc-addr loader and the swap callback.
type Platform struct {
	Window *glfw.Window

	// OnResize receives framebuffer size changes in device pixels.
	OnResize func(width, height int32)
	// OnContentScale receives DPI scale changes.
	OnContentScale func(scale float64)
}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) Startup(applicationName string, x, y, width, height uint32, vsync bool) error {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True) // Required on darwin.

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
		return err
	}
	window.MakeContextCurrent()
	p.Window = window

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	p.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if p.OnResize != nil {
			p.OnResize(int32(w), int32(h))
		}
	})
	p.Window.SetContentScaleCallback(func(_ *glfw.Window, sx, _ float32) {
		if p.OnContentScale != nil {
			p.OnContentScale(float64(sx))
		}
	})

	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	return nil
}

// ProcAddress resolves native GL function pointers; handed to the gfx
// backend at construction.
func (p *Platform) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// SwapBuffers presents the window's back buffer.
func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// FramebufferSize returns the drawable size in device pixels.
func (p *Platform) FramebufferSize() (int32, int32) {
	w, h := p.Window.GetFramebufferSize()
	return int32(w), int32(h)
}

// ContentScale returns the window DPI scale factor.
func (p *Platform) ContentScale() float64 {
	sx, _ := p.Window.GetContentScale()
	return float64(sx)
}

// ShouldClose reports whether the user requested the window to close.
func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

// PumpMessages processes pending window events.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}
