package app

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/philipparndt/objwire/pkg/render"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// forwardCompatible is only requested where the platform refuses a core
// context without it. Forward-compatible contexts reject line widths
// above 1.
func forwardCompatible(goos string) int {
	if goos == "darwin" {
		return glfw.True
	}
	return glfw.False
}

// openWindow creates a fixed-size window with a current 4.1 core context
// and a depth buffer. The returned func destroys it and terminates GLFW.
func openWindow(width, height int, title string) (*glfw.Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to initialize GLFW: %w", render.ErrSetup, err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, forwardCompatible(runtime.GOOS))
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("%w: failed to create window: %w", render.ErrSetup, err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, func() {
		window.Destroy()
		glfw.Terminate()
	}, nil
}
