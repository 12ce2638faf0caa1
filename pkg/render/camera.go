package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
)

// ErrInvalidCamera is returned for a camera that cannot produce a projection
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig holds the fixed projection and view parameters
type CameraConfig struct {
	FieldOfViewDegrees float32    `toml:"fov"`
	NearPlane          float32    `toml:"near"`
	FarPlane           float32    `toml:"far"`
	Eye                mgl32.Vec3 `toml:"eye"`
	Target             mgl32.Vec3 `toml:"target"`
	Up                 mgl32.Vec3 `toml:"up"`
}

// DefaultCamera looks at the origin from five units down +Z
func DefaultCamera() CameraConfig {
	return CameraConfig{
		FieldOfViewDegrees: 45,
		NearPlane:          0.1,
		FarPlane:           100,
		Eye:                mgl32.Vec3{0, 0, 5},
		Target:             mgl32.Vec3{0, 0, 0},
		Up:                 mgl32.Vec3{0, 1, 0},
	}
}

// Validate rejects parameters that yield a degenerate transform
func (c CameraConfig) Validate() error {
	switch {
	case c.FieldOfViewDegrees <= 0 || c.FieldOfViewDegrees >= 180:
		return fmt.Errorf("%w: field of view %v", ErrInvalidCamera, c.FieldOfViewDegrees)
	case c.NearPlane <= 0:
		return fmt.Errorf("%w: near plane %v", ErrInvalidCamera, c.NearPlane)
	case c.FarPlane <= c.NearPlane:
		return fmt.Errorf("%w: far plane %v not beyond near plane %v", ErrInvalidCamera, c.FarPlane, c.NearPlane)
	case c.Up.Len() == 0:
		return fmt.Errorf("%w: zero up vector", ErrInvalidCamera)
	case c.Eye.ApproxEqual(c.Target):
		return fmt.Errorf("%w: eye and target coincide", ErrInvalidCamera)
	case parallel(c.Target.Sub(c.Eye), c.Up):
		return fmt.Errorf("%w: up vector %v parallel to view direction", ErrInvalidCamera, c.Up)
	}
	return nil
}

// parallel reports whether a and b point along the same line; LookAt has
// no defined roll for such an up vector
func parallel(a, b mgl32.Vec3) bool {
	return a.Normalize().Cross(b.Normalize()).Len() < 1e-6
}

// FitCamera places the eye on +Z far enough that a sphere around the
// bounding box fills the vertical field of view
func FitCamera(bbox obj.BoundingBox, fovDegrees float32) CameraConfig {
	cam := DefaultCamera()
	cam.FieldOfViewDegrees = fovDegrees
	if bbox.IsEmpty() {
		return cam
	}

	radius := bbox.Diagonal() / 2
	if radius == 0 {
		radius = 1
	}
	distance := radius / math32.Sin(mgl32.DegToRad(fovDegrees)/2)

	center := bbox.Center()
	cam.Target = center
	cam.Eye = center.Add(mgl32.Vec3{0, 0, distance})
	cam.NearPlane = math32.Max(distance-radius*2, distance/100)
	cam.FarPlane = distance + radius*2
	return cam
}

// RotationConfig holds the two model rotation axes and the angular speed
// in radians per second
type RotationConfig struct {
	Axis1 mgl32.Vec3 `toml:"axis1"`
	Axis2 mgl32.Vec3 `toml:"axis2"`
	Speed float32    `toml:"speed"`
}

// DefaultRotation spins about Y first, then tilts about X
func DefaultRotation() RotationConfig {
	return RotationConfig{
		Axis1: mgl32.Vec3{0, 1, 0},
		Axis2: mgl32.Vec3{1, 0, 0},
		Speed: 1.5,
	}
}
