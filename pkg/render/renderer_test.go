package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDevice logs every call so tests can assert on the draw sequence
type recordingDevice struct {
	calls    []string
	next     uint32
	failOn   string
	matrices map[Program]mgl32.Mat4
	colors   map[Program]obj.Color
	indices  map[Buffer][]uint32
	live     map[string]bool
	width    int
	height   int
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		matrices: make(map[Program]mgl32.Mat4),
		colors:   make(map[Program]obj.Color),
		indices:  make(map[Buffer][]uint32),
		live:     make(map[string]bool),
		width:    800,
		height:   600,
	}
}

func (d *recordingDevice) handle(kind string) (uint32, error) {
	if d.failOn == kind {
		return 0, errors.New("boom")
	}
	d.next++
	d.live[fmt.Sprintf("%s:%d", kind, d.next)] = true
	return d.next, nil
}

func (d *recordingDevice) CreateVertexBuffer(positions []float32) (Buffer, error) {
	d.calls = append(d.calls, "vertex-buffer")
	id, err := d.handle("buffer")
	return Buffer(id), err
}

func (d *recordingDevice) CreateIndexBuffer(indices []uint32) (Buffer, error) {
	d.calls = append(d.calls, "index-buffer")
	id, err := d.handle("buffer")
	if err == nil {
		d.indices[Buffer(id)] = indices
	}
	return Buffer(id), err
}

func (d *recordingDevice) CreateProgram(src ProgramSource) (Program, error) {
	d.calls = append(d.calls, "program:"+src.Name)
	if d.failOn == src.Name {
		return 0, errors.New("link failed")
	}
	id, err := d.handle("program")
	return Program(id), err
}

func (d *recordingDevice) Viewport() (int, int) { return d.width, d.height }
func (d *recordingDevice) EnableDepthTest()     { d.calls = append(d.calls, "depth") }
func (d *recordingDevice) Clear(bg obj.Color)   { d.calls = append(d.calls, "clear") }

func (d *recordingDevice) UseProgram(p Program) {
	d.calls = append(d.calls, fmt.Sprintf("use:%d", p))
}

func (d *recordingDevice) SetMatrix(p Program, name string, m mgl32.Mat4) {
	d.calls = append(d.calls, "matrix:"+name)
	d.matrices[p] = m
}

func (d *recordingDevice) SetColor(p Program, name string, c obj.Color) {
	d.calls = append(d.calls, "color:"+name)
	d.colors[p] = c
}

func (d *recordingDevice) SetLineWidth(w float32) {
	d.calls = append(d.calls, fmt.Sprintf("line-width:%g", w))
}

func (d *recordingDevice) DrawIndexed(mode Primitive, vertices, indices Buffer, count int) {
	d.calls = append(d.calls, fmt.Sprintf("draw:%s:%d", mode, count))
}

func (d *recordingDevice) DeleteBuffer(b Buffer) {
	d.calls = append(d.calls, "delete-buffer")
	delete(d.live, fmt.Sprintf("buffer:%d", b))
}

func (d *recordingDevice) DeleteProgram(p Program) {
	d.calls = append(d.calls, "delete-program")
	delete(d.live, fmt.Sprintf("program:%d", p))
}

func cubeMesh(t *testing.T) *obj.Mesh {
	t.Helper()
	src := `v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3 4
f 5 8 7 6
f 1 5 6 2
f 2 6 7 3
f 3 7 8 4
f 5 1 4 8
`
	mesh, _, err := obj.Parse(strings.NewReader(src))
	require.NoError(t, err)
	mesh.BaseColor = obj.Color{R: 1, G: 0.5, B: 0}
	return mesh
}

func TestRendererSetup(t *testing.T) {
	dev := newRecordingDevice()
	r, err := New(dev, cubeMesh(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"vertex-buffer", "index-buffer", "index-buffer",
		"program:solid", "program:outline", "depth",
	}, dev.calls)
	assert.Len(t, dev.indices[r.triangles], 18)
	assert.Len(t, dev.indices[r.edges], 24)
}

func TestRenderFrameDualPass(t *testing.T) {
	dev := newRecordingDevice()
	r, err := New(dev, cubeMesh(t), DefaultOptions())
	require.NoError(t, err)
	dev.calls = nil

	state := FrameState{Angle1: 0.3, Angle2: -0.7}
	r.RenderFrame(DefaultCamera(), DefaultRotation(), state)

	assert.Equal(t, []string{
		"clear",
		fmt.Sprintf("use:%d", r.solid), "matrix:mvp", "color:color", "draw:triangles:18",
		fmt.Sprintf("use:%d", r.outline), "matrix:mvp", "line-width:2", "draw:lines:24",
	}, dev.calls)

	// Both passes see the identical transform.
	assert.Equal(t, dev.matrices[r.solid], dev.matrices[r.outline])
	assert.Equal(t, MVP(DefaultCamera(), DefaultRotation(), state, 800.0/600.0), dev.matrices[r.solid])
	assert.Equal(t, obj.Color{R: 1, G: 0.5, B: 0}, dev.colors[r.solid])
	_, outlineHasColor := dev.colors[r.outline]
	assert.False(t, outlineHasColor)
}

func TestRenderFrameEmptyMesh(t *testing.T) {
	dev := newRecordingDevice()
	r, err := New(dev, obj.NewMesh(), DefaultOptions())
	require.NoError(t, err)
	dev.calls = nil

	r.RenderFrame(DefaultCamera(), DefaultRotation(), FrameState{})
	assert.Equal(t, []string{"clear"}, dev.calls)
}

func TestReleaseOnce(t *testing.T) {
	dev := newRecordingDevice()
	r, err := New(dev, cubeMesh(t), DefaultOptions())
	require.NoError(t, err)
	dev.calls = nil

	r.Release()
	r.Release()
	r.RenderFrame(DefaultCamera(), DefaultRotation(), FrameState{})

	assert.Equal(t, []string{
		"delete-program", "delete-program",
		"delete-buffer", "delete-buffer", "delete-buffer",
	}, dev.calls)
	assert.Empty(t, dev.live)
}

func TestSetupFailureReleasesResources(t *testing.T) {
	for _, failOn := range []string{"solid", "outline", "buffer"} {
		t.Run(failOn, func(t *testing.T) {
			dev := newRecordingDevice()
			dev.failOn = failOn

			var reported []string
			opts := DefaultOptions()
			opts.Diagnostics = func(program string, err error) {
				reported = append(reported, program)
			}

			r, err := New(dev, cubeMesh(t), opts)
			require.ErrorIs(t, err, ErrSetup)
			assert.Nil(t, r)
			assert.Empty(t, dev.live)
			assert.NotContains(t, dev.calls, "depth")
			if failOn != "buffer" {
				assert.Equal(t, []string{failOn}, reported)
			} else {
				assert.Empty(t, reported)
			}
		})
	}
}

func TestSetupRejectsInvalidMesh(t *testing.T) {
	mesh := cubeMesh(t)
	mesh.Triangles = append(mesh.Triangles, obj.Triangle{0, 1, 42})

	dev := newRecordingDevice()
	_, err := New(dev, mesh, DefaultOptions())
	require.ErrorIs(t, err, ErrInvalidMesh)
	require.ErrorIs(t, err, ErrSetup)
	assert.Empty(t, dev.calls)
}
