package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection builds the perspective projection for a viewport aspect ratio
func Projection(cam CameraConfig, aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(cam.FieldOfViewDegrees), aspect, cam.NearPlane, cam.FarPlane)
}

// View builds the look-at transform. Rotation never affects it.
func View(cam CameraConfig) mgl32.Mat4 {
	return mgl32.LookAtV(cam.Eye, cam.Target, cam.Up)
}

// Model rotates about axis 1 in the model's local frame, then about axis 2.
// The composition order is significant.
func Model(rot RotationConfig, state FrameState) mgl32.Mat4 {
	inner := rotate(rot.Axis1, state.Angle1)
	outer := rotate(rot.Axis2, state.Angle2)
	return outer.Mul4(inner)
}

// MVP composes projection * view * model
func MVP(cam CameraConfig, rot RotationConfig, state FrameState, aspect float32) mgl32.Mat4 {
	return Projection(cam, aspect).Mul4(View(cam)).Mul4(Model(rot, state))
}

func rotate(axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	if angle == 0 || axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}

// aspectRatio returns width/height, treating an empty viewport as square
func aspectRatio(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
