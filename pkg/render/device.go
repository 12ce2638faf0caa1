package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
)

// Buffer is a device-side vertex or index buffer handle
type Buffer uint32

// Program is a device-side linked program handle
type Program uint32

// Primitive selects how an index buffer is assembled
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

func (p Primitive) String() string {
	if p == Lines {
		return "lines"
	}
	return "triangles"
}

// Device is the GPU surface the renderer draws through.
// Valid handles are non-zero. Implementations must be used from a single
// goroutine.
type Device interface {
	// CreateVertexBuffer uploads tightly packed x, y, z positions
	CreateVertexBuffer(positions []float32) (Buffer, error)
	CreateIndexBuffer(indices []uint32) (Buffer, error)
	CreateProgram(src ProgramSource) (Program, error)

	Viewport() (width, height int)
	EnableDepthTest()
	Clear(bg obj.Color)

	UseProgram(p Program)
	SetMatrix(p Program, name string, m mgl32.Mat4)
	SetColor(p Program, name string, c obj.Color)
	SetLineWidth(w float32)
	DrawIndexed(mode Primitive, vertices, indices Buffer, count int)

	DeleteBuffer(b Buffer)
	DeleteProgram(p Program)
}
