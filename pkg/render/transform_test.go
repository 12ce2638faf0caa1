package render

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMVPIdentityRotation(t *testing.T) {
	cam := DefaultCamera()
	aspect := float32(16) / 9

	got := MVP(cam, DefaultRotation(), FrameState{}, aspect)
	want := Projection(cam, aspect).Mul4(View(cam))
	assert.Equal(t, want, got)
	assert.Equal(t, mgl32.Ident4(), Model(DefaultRotation(), FrameState{}))
}

func TestModelZeroSecondAngleIsNoop(t *testing.T) {
	rot := DefaultRotation()
	withAxis2 := Model(rot, FrameState{Angle1: math.Pi, Angle2: 0})

	rot.Axis2 = mgl32.Vec3{0.3, 0.4, 0.5}
	otherAxis2 := Model(rot, FrameState{Angle1: math.Pi, Angle2: 0})

	assert.Equal(t, withAxis2, otherAxis2)
	assert.True(t, withAxis2.ApproxEqual(mgl32.HomogRotate3D(math.Pi, rot.Axis1)))
}

func TestModelCompositionOrder(t *testing.T) {
	rot := DefaultRotation() // axis1 = Y, axis2 = X
	state := FrameState{Angle1: math.Pi / 2, Angle2: math.Pi / 2}
	model := Model(rot, state)

	// +X spun about Y lands on -Z, then tilting about X takes -Z to +Y.
	p := model.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDelta(t, 0, p.X(), 1e-5, "got %v", p)
	assert.InDelta(t, 1, p.Y(), 1e-5, "got %v", p)
	assert.InDelta(t, 0, p.Z(), 1e-5, "got %v", p)

	// The swapped order sends +X somewhere else.
	swapped := mgl32.HomogRotate3DY(math.Pi / 2).Mul4(mgl32.HomogRotate3DX(math.Pi / 2))
	q := swapped.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.Greater(t, q.Sub(p).Len(), float32(0.5), "got %v", q)
}

func TestProjectionHandlesEmptyViewport(t *testing.T) {
	assert.Equal(t, float32(1), aspectRatio(800, 0))
	assert.Equal(t, float32(2), aspectRatio(800, 400))
	assert.Equal(t, Projection(DefaultCamera(), 1), Projection(DefaultCamera(), 0))
}

func TestCameraValidate(t *testing.T) {
	require.NoError(t, DefaultCamera().Validate())

	tests := []struct {
		name   string
		mutate func(c *CameraConfig)
	}{
		{"zero fov", func(c *CameraConfig) { c.FieldOfViewDegrees = 0 }},
		{"negative near", func(c *CameraConfig) { c.NearPlane = -1 }},
		{"far before near", func(c *CameraConfig) { c.FarPlane = 0.05 }},
		{"zero up", func(c *CameraConfig) { c.Up = mgl32.Vec3{} }},
		{"eye on target", func(c *CameraConfig) { c.Eye = c.Target }},
		{"up parallel to view", func(c *CameraConfig) { c.Eye = mgl32.Vec3{0, 5, 0} }},
		{"up opposite to view", func(c *CameraConfig) { c.Up = mgl32.Vec3{0, 0, 3} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := DefaultCamera()
			tt.mutate(&cam)
			assert.ErrorIs(t, cam.Validate(), ErrInvalidCamera)
		})
	}
}

func TestParallelUpYieldsNoTransform(t *testing.T) {
	cam := DefaultCamera()
	cam.Eye = mgl32.Vec3{0, 5, 0}
	require.ErrorIs(t, cam.Validate(), ErrInvalidCamera)

	// what Validate guards against: LookAt degenerates to NaN
	view := View(cam)
	assert.True(t, math.IsNaN(float64(view[0])), "got %v", view)
}

func TestFitCamera(t *testing.T) {
	bbox := obj.NewBoundingBox()
	bbox.Extend(mgl32.Vec3{1, 1, 1})
	bbox.Extend(mgl32.Vec3{3, 3, 3})

	cam := FitCamera(bbox, 45)
	require.NoError(t, cam.Validate())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, cam.Target)
	assert.Greater(t, cam.Eye.Z(), float32(3))

	// The whole box lies between the clip planes.
	distance := cam.Eye.Sub(cam.Target).Len()
	radius := bbox.Diagonal() / 2
	assert.Less(t, cam.NearPlane, distance-radius)
	assert.Greater(t, cam.FarPlane, distance+radius)

	assert.Equal(t, DefaultCamera(), FitCamera(obj.NewBoundingBox(), 45))
}

func TestFrameStateTick(t *testing.T) {
	var s FrameState
	assert.Zero(t, s.Tick(2*time.Second))
	assert.InDelta(t, 0.5, s.Tick(2500*time.Millisecond), 1e-6)
	assert.Zero(t, s.Tick(2*time.Second), "clock going backwards")
	assert.InDelta(t, 0.016, s.Tick(2016*time.Millisecond), 1e-6)
}

func TestFrameStateApply(t *testing.T) {
	var s FrameState
	all := Signals{Axis1Inc: true, Axis2Dec: true}

	s.Apply(all, 2, 0)
	assert.Zero(t, s.Angle1)
	assert.Zero(t, s.Angle2)

	s.Apply(all, 2, 0.25)
	assert.InDelta(t, 0.5, s.Angle1, 1e-6)
	assert.InDelta(t, -0.5, s.Angle2, 1e-6)

	s.Apply(Signals{Axis1Inc: true, Axis1Dec: true}, 2, 1)
	assert.InDelta(t, 0.5, s.Angle1, 1e-6)

	// Frame-rate independent: one long frame equals many short ones.
	var a, b FrameState
	a.Apply(Signals{Axis1Inc: true}, 1.5, 1)
	for i := 0; i < 100; i++ {
		b.Apply(Signals{Axis1Inc: true}, 1.5, 0.01)
	}
	assert.InDelta(t, a.Angle1, b.Angle1, 1e-4)
}
