package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/render"
	"github.com/philipparndt/objwire/pkg/render/gldevice"
	"github.com/philipparndt/objwire/pkg/watcher"
)

// Run loads the mesh at path and shows it until the window is closed or
// Escape is pressed. The mesh is loaded before any window exists, so load
// failures return without touching the display.
func Run(path string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	mesh, err := loadMesh(path, opts)
	if err != nil {
		return err
	}
	cam, err := CameraFor(mesh, opts)
	if err != nil {
		return err
	}

	window, closeWindow, err := openWindow(opts.Width, opts.Height, fmt.Sprintf("%s - %s", opts.Title, filepath.Base(path)))
	if err != nil {
		return err
	}
	defer closeWindow()

	dev, err := gldevice.New(window.GetFramebufferSize)
	if err != nil {
		return fmt.Errorf("%w: %w", render.ErrSetup, err)
	}
	defer dev.Close()
	slog.Info("OpenGL context ready", "version", gldevice.Version())

	renderer, err := render.New(dev, mesh, opts.RenderOptions())
	if err != nil {
		return err
	}
	defer func() { renderer.Release() }()

	var changes <-chan string
	if opts.Watch {
		fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
		if err != nil {
			return err
		}
		defer fw.Close()
		if err := fw.Watch(path, materialPath(path, mesh, opts)); err != nil {
			return err
		}
		changes = fw.Changes()
	}

	var state render.FrameState
	for !window.ShouldClose() {
		glfw.PollEvents()
		if closeRequested(window) {
			window.SetShouldClose(true)
		}

		select {
		case changed := <-changes:
			slog.Info("reloading mesh", "changed", changed)
			next, err := reload(dev, renderer, path, opts)
			if err != nil {
				return err
			}
			if next != nil {
				renderer = next.renderer
				cam = next.camera
			}
		default:
		}

		elapsed := state.Tick(seconds(glfw.GetTime()))
		state.Apply(frameSignals(opts, window), opts.Rotation.Speed, elapsed)

		renderer.RenderFrame(cam, opts.Rotation, state)
		window.SwapBuffers()
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// reloaded is the state swapped in after a file change
type reloaded struct {
	renderer *render.Renderer
	mesh     *obj.Mesh
	camera   render.CameraConfig
}

// reload replaces the renderer with one built from the current file
// contents. A file that fails to load, or that cannot be framed, keeps the
// old renderer and returns nil; a renderer that fails to build is fatal.
func reload(dev render.Device, current *render.Renderer, path string, opts Options) (*reloaded, error) {
	mesh, err := loadMesh(path, opts)
	if err == nil {
		err = mesh.Validate()
	}
	var cam render.CameraConfig
	if err == nil {
		cam, err = CameraFor(mesh, opts)
	}
	if err != nil {
		slog.Warn("reload failed, keeping previous mesh", "error", err)
		return nil, nil
	}

	current.Release()
	next, err := render.New(dev, mesh, opts.RenderOptions())
	if err != nil {
		return nil, err
	}
	return &reloaded{renderer: next, mesh: mesh, camera: cam}, nil
}
