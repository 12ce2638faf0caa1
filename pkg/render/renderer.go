package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/objwire/pkg/obj"
)

var (
	// ErrSetup wraps every failure while creating device resources
	ErrSetup = errors.New("renderer setup failed")

	// ErrInvalidMesh is returned for a mesh that breaks its index invariants
	ErrInvalidMesh = errors.New("invalid mesh")
)

// DefaultBackground is the clear color used when none is configured
var DefaultBackground = obj.Color{R: 0.2, G: 0.2, B: 0.2}

// DefaultLineWidth is the outline width in pixels
const DefaultLineWidth float32 = 3

// Options tune the renderer
type Options struct {
	Background obj.Color
	LineWidth  float32
	// Diagnostics receives program compile and link failures.
	// Defaults to an error log entry.
	Diagnostics func(program string, err error)
}

// DefaultOptions returns the standard background and outline width
func DefaultOptions() Options {
	return Options{
		Background: DefaultBackground,
		LineWidth:  DefaultLineWidth,
	}
}

// Renderer draws a mesh twice per frame: filled with its base color, then
// as a black outline over the same vertex buffer and transform
type Renderer struct {
	dev  Device
	opts Options

	vertices  Buffer
	triangles Buffer
	edges     Buffer

	triangleCount int
	edgeCount     int

	solid   Program
	outline Program

	baseColor obj.Color
	released  bool
}

// New uploads the mesh and builds both programs. On error every resource
// created so far has been released.
func New(dev Device, mesh *obj.Mesh, opts Options) (*Renderer, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrSetup, ErrInvalidMesh, err)
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultLineWidth
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = func(program string, err error) {
			slog.Error("program build failed", "program", program, "error", err)
		}
	}

	r := &Renderer{
		dev:           dev,
		opts:          opts,
		triangleCount: len(mesh.Triangles) * 3,
		edgeCount:     len(mesh.Edges) * 2,
		baseColor:     mesh.BaseColor,
	}

	if err := r.setup(mesh); err != nil {
		r.Release()
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	dev.EnableDepthTest()
	return r, nil
}

func (r *Renderer) setup(mesh *obj.Mesh) error {
	var err error

	if r.vertices, err = r.dev.CreateVertexBuffer(mesh.Vertices); err != nil {
		return fmt.Errorf("vertex buffer: %w", err)
	}
	if r.triangles, err = r.dev.CreateIndexBuffer(mesh.TriangleIndices()); err != nil {
		return fmt.Errorf("triangle index buffer: %w", err)
	}
	if r.edges, err = r.dev.CreateIndexBuffer(mesh.EdgeIndices()); err != nil {
		return fmt.Errorf("edge index buffer: %w", err)
	}

	if r.solid, err = r.program(SolidProgram); err != nil {
		return err
	}
	if r.outline, err = r.program(OutlineProgram); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) program(src ProgramSource) (Program, error) {
	p, err := r.dev.CreateProgram(src)
	if err != nil {
		r.opts.Diagnostics(src.Name, err)
		return 0, fmt.Errorf("%s program: %w", src.Name, err)
	}
	return p, nil
}

// RenderFrame clears the framebuffer and issues the solid and outline
// passes with one shared MVP. Presenting the frame is up to the caller.
func (r *Renderer) RenderFrame(cam CameraConfig, rot RotationConfig, state FrameState) {
	if r.released {
		return
	}

	r.dev.Clear(r.opts.Background)

	mvp := MVP(cam, rot, state, aspectRatio(r.dev.Viewport()))

	if r.triangleCount > 0 {
		r.dev.UseProgram(r.solid)
		r.dev.SetMatrix(r.solid, UniformMVP, mvp)
		r.dev.SetColor(r.solid, UniformColor, r.baseColor)
		r.dev.DrawIndexed(Triangles, r.vertices, r.triangles, r.triangleCount)
	}

	if r.edgeCount > 0 {
		r.dev.UseProgram(r.outline)
		r.dev.SetMatrix(r.outline, UniformMVP, mvp)
		r.dev.SetLineWidth(r.opts.LineWidth)
		r.dev.DrawIndexed(Lines, r.vertices, r.edges, r.edgeCount)
	}
}

// Release frees the buffers and programs. Calling it again is a no-op.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true

	for _, p := range []Program{r.solid, r.outline} {
		if p != 0 {
			r.dev.DeleteProgram(p)
		}
	}
	for _, b := range []Buffer{r.vertices, r.triangles, r.edges} {
		if b != 0 {
			r.dev.DeleteBuffer(b)
		}
	}
}
