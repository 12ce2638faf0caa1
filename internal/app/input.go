package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/philipparndt/objwire/pkg/render"
)

// KeySource reports the state of a keyboard key. *glfw.Window satisfies it.
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

func down(keys KeySource, alternatives ...glfw.Key) bool {
	for _, k := range alternatives {
		if a := keys.GetKey(k); a == glfw.Press || a == glfw.Repeat {
			return true
		}
	}
	return false
}

// ReadSignals samples the arrow keys and WASD.
// Right/D and Left/A turn about axis 1, Up/W and Down/S about axis 2.
func ReadSignals(keys KeySource) render.Signals {
	return render.Signals{
		Axis1Inc: down(keys, glfw.KeyRight, glfw.KeyD),
		Axis1Dec: down(keys, glfw.KeyLeft, glfw.KeyA),
		Axis2Inc: down(keys, glfw.KeyUp, glfw.KeyW),
		Axis2Dec: down(keys, glfw.KeyDown, glfw.KeyS),
	}
}

// closeRequested reports whether Escape is held
func closeRequested(keys KeySource) bool {
	return down(keys, glfw.KeyEscape)
}

// frameSignals returns the keyboard signals, or a constant spin about
// axis 1 when the viewer is not interactive
func frameSignals(opts Options, keys KeySource) render.Signals {
	if !opts.Interactive {
		return render.Signals{Axis1Inc: true}
	}
	return ReadSignals(keys)
}
