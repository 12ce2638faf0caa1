package obj

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterialName is the material block looked up in a companion MTL file
const DefaultMaterialName = "Material"

// DefaultColor is used when no material provides a diffuse color
var DefaultColor = Color{R: 0, G: 0, B: 1}

// VertexID is a zero-based index into a mesh's vertex list
type VertexID uint32

// Triangle holds three vertex ids in winding order
type Triangle [3]VertexID

// Edge is an undirected edge stored in canonical form (A < B)
type Edge struct {
	A, B VertexID
}

// NewEdge returns the canonical edge between a and b
func NewEdge(a, b VertexID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Less orders edges by (A, B)
func (e Edge) Less(other Edge) bool {
	if e.A != other.A {
		return e.A < other.A
	}
	return e.B < other.B
}

// Color is an RGB triple with channels in [0,1]
type Color struct {
	R, G, B float32
}

// Clamp limits every channel to [0,1]
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Vec3 returns the color as a vector, the layout shaders expect
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Mesh is the renderable result of loading a geometry file.
// It is not mutated after loading.
type Mesh struct {
	Name            string
	Vertices        []float32 // flat x, y, z triples
	Triangles       []Triangle
	Edges           []Edge // canonical, unique, sorted by (A, B)
	BaseColor       Color
	MaterialLibrary string
	Material        string
}

// NewMesh creates an empty mesh with the default base color
func NewMesh() *Mesh {
	return &Mesh{
		Vertices:  make([]float32, 0),
		Triangles: make([]Triangle, 0),
		Edges:     make([]Edge, 0),
		BaseColor: DefaultColor,
	}
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// IsEmpty reports whether the mesh has nothing to draw
func (m *Mesh) IsEmpty() bool {
	return m.VertexCount() == 0 || (len(m.Triangles) == 0 && len(m.Edges) == 0)
}

// Contains reports whether id refers to a vertex of the mesh
func (m *Mesh) Contains(id VertexID) bool {
	return int(id) < m.VertexCount()
}

// Vertex returns the position of the vertex with the given id
func (m *Mesh) Vertex(id VertexID) mgl32.Vec3 {
	i := int(id) * 3
	return mgl32.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]}
}

// TriangleIndices flattens the triangle list into an index buffer
func (m *Mesh) TriangleIndices() []uint32 {
	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return indices
}

// EdgeIndices flattens the edge list into a line index buffer
func (m *Mesh) EdgeIndices() []uint32 {
	indices := make([]uint32, 0, len(m.Edges)*2)
	for _, e := range m.Edges {
		indices = append(indices, uint32(e.A), uint32(e.B))
	}
	return indices
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for i := 0; i < m.VertexCount(); i++ {
		bbox.Extend(m.Vertex(VertexID(i)))
	}
	return bbox
}

// Validate checks the invariants the renderer relies on
func (m *Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of 3", len(m.Vertices))
	}
	for i, t := range m.Triangles {
		for _, id := range t {
			if !m.Contains(id) {
				return fmt.Errorf("triangle %d references vertex %d of %d", i, id, m.VertexCount())
			}
		}
	}
	for i, e := range m.Edges {
		if !m.Contains(e.A) || !m.Contains(e.B) {
			return fmt.Errorf("edge %d references vertex outside %d vertices", i, m.VertexCount())
		}
		if e.A >= e.B {
			return fmt.Errorf("edge %d (%d,%d) is not canonical", i, e.A, e.B)
		}
		if i > 0 && !m.Edges[i-1].Less(e) {
			return fmt.Errorf("edge %d (%d,%d) is duplicated or out of order", i, e.A, e.B)
		}
	}
	if m.BaseColor != m.BaseColor.Clamp() {
		return errors.New("base color outside [0,1]")
	}
	return nil
}
