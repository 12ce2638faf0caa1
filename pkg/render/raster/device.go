// Package raster implements render.Device on the CPU. It emulates the
// position-only vertex stage and both fragment fill modes so the render
// pipeline can produce images without a GPU context.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/render"
)

// LineDepthBias lets outline fragments win against the surface they lie on
const LineDepthBias float32 = 1e-4

// minClipW discards primitives touching or behind the eye plane
const minClipW float32 = 1e-6

type program struct {
	src   render.ProgramSource
	mvp   mgl32.Mat4
	color obj.Color
}

// Device rasterizes into an in-memory RGBA image
type Device struct {
	target *target

	next     uint32
	vertices map[render.Buffer][]float32
	indices  map[render.Buffer][]uint32
	programs map[render.Program]*program

	current   render.Program
	lineWidth float32
	depthTest bool
}

// New creates a device with a width x height framebuffer
func New(width, height int) (*Device, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	return &Device{
		target:    newTarget(width, height),
		vertices:  make(map[render.Buffer][]float32),
		indices:   make(map[render.Buffer][]uint32),
		programs:  make(map[render.Program]*program),
		lineWidth: 1,
	}, nil
}

// Image returns the framebuffer. It is overwritten by the next frame.
func (d *Device) Image() *image.RGBA {
	return d.target.img
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateVertexBuffer(positions []float32) (render.Buffer, error) {
	if len(positions)%3 != 0 {
		return 0, fmt.Errorf("vertex data length %d is not a multiple of 3", len(positions))
	}
	b := render.Buffer(d.handle())
	d.vertices[b] = append([]float32(nil), positions...)
	return b, nil
}

func (d *Device) CreateIndexBuffer(indices []uint32) (render.Buffer, error) {
	b := render.Buffer(d.handle())
	d.indices[b] = append([]uint32(nil), indices...)
	return b, nil
}

func (d *Device) CreateProgram(src render.ProgramSource) (render.Program, error) {
	switch src.Fill {
	case render.FillUniformColor, render.FillBlack:
	default:
		return 0, fmt.Errorf("program %s: unsupported fill mode %d", src.Name, src.Fill)
	}
	p := render.Program(d.handle())
	d.programs[p] = &program{src: src, mvp: mgl32.Ident4()}
	return p, nil
}

func (d *Device) Viewport() (int, int) {
	b := d.target.img.Bounds()
	return b.Dx(), b.Dy()
}

func (d *Device) EnableDepthTest() {
	d.depthTest = true
}

func (d *Device) Clear(bg obj.Color) {
	d.target.clear(toRGBA(bg))
}

func (d *Device) UseProgram(p render.Program) {
	d.current = p
}

func (d *Device) SetMatrix(p render.Program, name string, m mgl32.Mat4) {
	if prog, ok := d.programs[p]; ok && name == render.UniformMVP {
		prog.mvp = m
	}
}

func (d *Device) SetColor(p render.Program, name string, c obj.Color) {
	if prog, ok := d.programs[p]; ok && name == render.UniformColor {
		prog.color = c
	}
}

func (d *Device) SetLineWidth(w float32) {
	d.lineWidth = w
}

func (d *Device) DrawIndexed(mode render.Primitive, vertices, indices render.Buffer, count int) {
	prog, ok := d.programs[d.current]
	if !ok {
		return
	}
	positions := d.vertices[vertices]
	idx := d.indices[indices]
	if count > len(idx) {
		count = len(idx)
	}

	col := color.RGBA{A: 255}
	if prog.src.Fill == render.FillUniformColor {
		col = toRGBA(prog.color)
	}

	bias := float32(0)
	if !d.depthTest {
		bias = math32.Inf(1)
	}

	w, h := d.Viewport()
	project := func(i uint32) (screenVertex, bool) {
		o := int(i) * 3
		if o+2 >= len(positions) {
			return screenVertex{}, false
		}
		clip := prog.mvp.Mul4x1(mgl32.Vec4{positions[o], positions[o+1], positions[o+2], 1})
		if clip.W() <= minClipW {
			return screenVertex{}, false
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		return screenVertex{
			x: (ndc.X() + 1) / 2 * float32(w),
			y: (1 - ndc.Y()) / 2 * float32(h),
			z: ndc.Z(),
		}, true
	}

	switch mode {
	case render.Triangles:
		for i := 0; i+2 < count; i += 3 {
			a, okA := project(idx[i])
			b, okB := project(idx[i+1])
			c, okC := project(idx[i+2])
			if okA && okB && okC {
				d.fill(a, b, c, col)
			}
		}
	case render.Lines:
		width := int(math32.Round(d.lineWidth))
		for i := 0; i+1 < count; i += 2 {
			a, okA := project(idx[i])
			b, okB := project(idx[i+1])
			if okA && okB {
				d.target.drawLine(a, b, width, bias+LineDepthBias, col)
			}
		}
	}
}

func (d *Device) fill(a, b, c screenVertex, col color.RGBA) {
	if !d.depthTest {
		// Later primitives overwrite earlier ones, as with depth testing off.
		a.z, b.z, c.z = -1, -1, -1
	}
	d.target.fillTriangle(a, b, c, col)
}

func (d *Device) DeleteBuffer(b render.Buffer) {
	delete(d.vertices, b)
	delete(d.indices, b)
}

func (d *Device) DeleteProgram(p render.Program) {
	delete(d.programs, p)
	if d.current == p {
		d.current = 0
	}
}

// Live reports how many buffers and programs have not been deleted
func (d *Device) Live() int {
	return len(d.vertices) + len(d.indices) + len(d.programs)
}

func toRGBA(c obj.Color) color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(math32.Round(c.R * 255)),
		G: uint8(math32.Round(c.G * 255)),
		B: uint8(math32.Round(c.B * 255)),
		A: 255,
	}
}

var _ render.Device = (*Device)(nil)
