// Package gldevice implements render.Device on an OpenGL 4.1 core context.
// Every call must happen on the thread that owns the current context.
package gldevice

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/render"
)

// Device issues GL calls against the current context
type Device struct {
	vao        uint32
	viewport   func() (int, int)
	uniforms   map[uniformKey]int32
	lineWidths [2]float32
}

type uniformKey struct {
	program render.Program
	name    string
}

// New loads the GL function pointers and creates the vertex array all
// draws share. viewport reports the framebuffer size in pixels.
func New(viewport func() (int, int)) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{
		viewport: viewport,
		uniforms: make(map[uniformKey]int32),
	}
	gl.GenVertexArrays(1, &d.vao)
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &d.lineWidths[0])
	return d, nil
}

// Version returns the GL version string of the current context
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Close deletes the shared vertex array
func (d *Device) Close() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Device) CreateVertexBuffer(positions []float32) (render.Buffer, error) {
	return d.createBuffer(gl.ARRAY_BUFFER, len(positions)*4, positions)
}

func (d *Device) CreateIndexBuffer(indices []uint32) (render.Buffer, error) {
	gl.BindVertexArray(d.vao)
	defer gl.BindVertexArray(0)
	return d.createBuffer(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, indices)
}

func (d *Device) createBuffer(target uint32, size int, data any) (render.Buffer, error) {
	drainErrors(gl.GetError)

	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenBuffers returned no buffer")
	}

	gl.BindBuffer(target, id)
	if size > 0 {
		gl.BufferData(target, size, gl.Ptr(data), gl.STATIC_DRAW)
	} else {
		gl.BufferData(target, 0, nil, gl.STATIC_DRAW)
	}
	if err := checkError(); err != nil {
		gl.DeleteBuffers(1, &id)
		return 0, err
	}
	return render.Buffer(id), nil
}

func (d *Device) CreateProgram(src render.ProgramSource) (render.Program, error) {
	id, err := buildProgram(src.Vertex, src.Fragment)
	if err != nil {
		return 0, err
	}
	return render.Program(id), nil
}

func (d *Device) Viewport() (int, int) {
	return d.viewport()
}

func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (d *Device) Clear(bg obj.Color) {
	w, h := d.viewport()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) UseProgram(p render.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) SetMatrix(p render.Program, name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(d.location(p, name), 1, false, &m[0])
}

func (d *Device) SetColor(p render.Program, name string, c obj.Color) {
	gl.Uniform3f(d.location(p, name), c.R, c.G, c.B)
}

// SetLineWidth clamps w to the range the context supports; wider lines
// would raise GL_INVALID_VALUE and leave nothing drawn wider anyway
func (d *Device) SetLineWidth(w float32) {
	gl.LineWidth(clampLineWidth(w, d.lineWidths))
}

func clampLineWidth(w float32, supported [2]float32) float32 {
	lo, hi := supported[0], supported[1]
	if hi < 1 {
		lo, hi = 1, 1
	}
	if lo < 1 {
		lo = 1
	}
	return max(lo, min(w, hi))
}

// drainErrors clears flags left behind by earlier calls so the next
// checkError only sees errors from the call under test
func drainErrors(getError func() uint32) {
	for i := 0; i < 16; i++ {
		if getError() == gl.NO_ERROR {
			return
		}
	}
}

func (d *Device) DrawIndexed(mode render.Primitive, vertices, indices render.Buffer, count int) {
	glMode := uint32(gl.TRIANGLES)
	if mode == render.Lines {
		glMode = gl.LINES
	}

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(vertices))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(indices))

	gl.DrawElements(glMode, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (d *Device) DeleteBuffer(b render.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (d *Device) DeleteProgram(p render.Program) {
	gl.DeleteProgram(uint32(p))
	for key := range d.uniforms {
		if key.program == p {
			delete(d.uniforms, key)
		}
	}
}

// location caches uniform lookups; -1 means the program has no such
// uniform and GL silently ignores the upload
func (d *Device) location(p render.Program, name string) int32 {
	key := uniformKey{program: p, name: name}
	if loc, ok := d.uniforms[key]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	d.uniforms[key] = loc
	return loc
}

func checkError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

var _ render.Device = (*Device)(nil)
