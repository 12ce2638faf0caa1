package app

import (
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/render"
)

// CameraFor returns the configured camera, or one framing the mesh when
// Fit is set. An empty mesh keeps the configured camera. The fitted camera
// keeps the configured up vector, so it is validated again.
func CameraFor(mesh *obj.Mesh, opts Options) (render.CameraConfig, error) {
	if !opts.Fit || mesh.IsEmpty() {
		return opts.Camera, nil
	}
	cam := render.FitCamera(mesh.BoundingBox(), opts.Camera.FieldOfViewDegrees)
	cam.Up = opts.Camera.Up
	if err := cam.Validate(); err != nil {
		return render.CameraConfig{}, err
	}
	return cam, nil
}
