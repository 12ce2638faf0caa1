package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// screenVertex is a vertex after perspective divide and viewport mapping.
// z is normalized device depth in [-1, 1], smaller is closer.
type screenVertex struct {
	x, y, z float32
}

// target is a color image with a depth buffer of the same size
type target struct {
	img   *image.RGBA
	depth []float32
}

func newTarget(width, height int) *target {
	return &target{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float32, width*height),
	}
}

func (t *target) clear(col color.RGBA) {
	pix := t.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
	for i := range t.depth {
		t.depth[i] = math32.Inf(1)
	}
}

// plot writes col at (x, y) if z passes the depth test against the stored
// depth plus bias. Fragments outside the clip volume are dropped.
func (t *target) plot(x, y int, z, bias float32, col color.RGBA) {
	bounds := t.img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Max.X || y >= bounds.Max.Y {
		return
	}
	if z < -1 || z > 1 {
		return
	}
	idx := y*bounds.Max.X + x
	if z <= t.depth[idx]+bias {
		if z < t.depth[idx] {
			t.depth[idx] = z
		}
		t.img.SetRGBA(x, y, col)
	}
}

// fillTriangle fills a triangle with the scanline algorithm, interpolating
// depth along the edges and across each span
func (t *target) fillTriangle(a, b, c screenVertex, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	bounds := t.img.Bounds()
	yStart := int(math32.Ceil(math32.Max(0, a.y)))
	yEnd := int(math32.Floor(math32.Min(float32(bounds.Max.Y-1), c.y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float32(y)

		// Long edge a-c always spans this row; the short edge is a-b above
		// the middle vertex and b-c below it.
		xStart, zStart := interpolateEdge(a, c, fy)
		var xEnd, zEnd float32
		if fy < b.y {
			xEnd, zEnd = interpolateEdge(a, b, fy)
		} else {
			xEnd, zEnd = interpolateEdge(b, c, fy)
		}

		// Ensure xStart < xEnd
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		xFrom := int(math32.Ceil(math32.Max(0, xStart)))
		xTo := int(math32.Floor(math32.Min(float32(bounds.Max.X-1), xEnd)))
		for x := xFrom; x <= xTo; x++ {
			s := float32(0)
			if xEnd != xStart {
				s = (float32(x) - xStart) / (xEnd - xStart)
			}
			t.plot(x, y, zStart+s*(zEnd-zStart), 0, col)
		}
	}
}

func interpolateEdge(from, to screenVertex, y float32) (x, z float32) {
	if to.y == from.y {
		return from.x, from.z
	}
	s := (y - from.y) / (to.y - from.y)
	return from.x + s*(to.x-from.x), from.z + s*(to.z-from.z)
}

// drawLine draws a depth-tested line with Bresenham's algorithm, stamping a
// square brush of the given width at every step
func (t *target) drawLine(a, b screenVertex, width int, bias float32, col color.RGBA) {
	x1, y1 := int(math32.Round(a.x)), int(math32.Round(a.y))
	x2, y2 := int(math32.Round(b.x)), int(math32.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	if width < 1 {
		width = 1
	}
	half := width / 2

	err := dx - dy
	for step := 0; ; step++ {
		z := a.z
		if steps > 0 {
			z = a.z + float32(step)/float32(steps)*(b.z-a.z)
		}
		for oy := -half; oy < width-half; oy++ {
			for ox := -half; ox < width-half; ox++ {
				t.plot(x1+ox, y1+oy, z, bias, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
