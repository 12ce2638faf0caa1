package obj

import "slices"

// Builder accumulates vertices and faces into a Mesh. Faces follow the
// same rules as OBJ "f" lines: the first three ids form the triangle and
// every cyclic pair forms an edge.
type Builder struct {
	mesh  *Mesh
	edges map[Edge]struct{}
}

// NewBuilder starts an empty mesh with the default color
func NewBuilder() *Builder {
	return &Builder{
		mesh:  NewMesh(),
		edges: make(map[Edge]struct{}),
	}
}

// AddVertex appends a position and returns its id
func (b *Builder) AddVertex(x, y, z float32) VertexID {
	id := VertexID(b.mesh.VertexCount())
	b.mesh.Vertices = append(b.mesh.Vertices, x, y, z)
	return id
}

// VertexCount returns the number of vertices added so far
func (b *Builder) VertexCount() int {
	return b.mesh.VertexCount()
}

// AddFace records a polygon. Every id must already exist.
func (b *Builder) AddFace(ids ...VertexID) {
	// Higher-order polygons are not fan triangulated: only the first three
	// references become a triangle. Edges still cover the whole polygon.
	if len(ids) >= 3 {
		b.mesh.Triangles = append(b.mesh.Triangles, Triangle{ids[0], ids[1], ids[2]})
	}

	for i, a := range ids {
		c := ids[(i+1)%len(ids)]
		if a == c {
			continue
		}
		b.edges[NewEdge(a, c)] = struct{}{}
	}
}

// Mesh returns a snapshot of the mesh built so far with its edge set
// sorted. Faces added afterwards only show up in a later call.
func (b *Builder) Mesh() *Mesh {
	edges := make([]Edge, 0, len(b.edges))
	for e := range b.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		switch {
		case x.Less(y):
			return -1
		case y.Less(x):
			return 1
		}
		return 0
	})
	mesh := *b.mesh
	mesh.Vertices = slices.Clone(b.mesh.Vertices)
	mesh.Triangles = slices.Clone(b.mesh.Triangles)
	mesh.Edges = edges
	return &mesh
}
