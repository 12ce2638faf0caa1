package analysis

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// two triangles of a 2x1 rectangle split along its diagonal, plus a
// unit right triangle off to the side
const trianglesOBJ = `v 0 0 0
v 2 0 0
v 2 1 0
v 0 1 0
v 5 0 0
v 6 0 0
v 5 1 0
f 1 2 3
f 1 3 4
f 5 6 7
`

func parseMesh(t *testing.T, src string) *obj.Mesh {
	t.Helper()
	mesh, _, err := obj.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return mesh
}

func TestAnalyzeTriangles(t *testing.T) {
	result := AnalyzeTriangles(parseMesh(t, trianglesOBJ))

	require.Len(t, result.Triangles, 3)
	assert.InDelta(t, 1.0, result.Triangles[0].Area, 1e-6)
	assert.InDelta(t, 0.5, result.Triangles[2].Area, 1e-6)
	assert.InDelta(t, 2+1+2.236068, result.Triangles[0].Perimeter, 1e-5)
	assert.InDelta(t, 2.5, result.SurfaceArea, 1e-6)
	assert.InDelta(t, 0.5, result.MinArea, 1e-6)
	assert.InDelta(t, 1.0, result.MaxArea, 1e-6)
	assert.InDelta(t, 2.5/3, result.AvgArea, 1e-6)
}

func TestTriangleOrdering(t *testing.T) {
	result := AnalyzeTriangles(parseMesh(t, trianglesOBJ))

	smallest := FindSmallestTriangles(result, 1)
	require.Len(t, smallest, 1)
	assert.Equal(t, 2, smallest[0].Index)

	largest := FindLargestTriangles(result, 5)
	require.Len(t, largest, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{largest[0].Index, largest[1].Index, largest[2].Index}, "ties keep mesh order")

	assert.Len(t, FirstTriangles(result, 2), 2)
	assert.Empty(t, FirstTriangles(result, -1))
}

func TestAnalyzeTrianglesEmpty(t *testing.T) {
	result := AnalyzeTriangles(obj.NewMesh())
	assert.Empty(t, result.Triangles)
	assert.Zero(t, result.SurfaceArea)
}

func TestFindNearestVertex(t *testing.T) {
	mesh := parseMesh(t, trianglesOBJ)

	id, pos, dist, ok := FindNearestVertex(mesh, mgl32.Vec3{5.9, 0.1, 0})
	require.True(t, ok)
	assert.Equal(t, obj.VertexID(5), id)
	assert.Equal(t, mgl32.Vec3{6, 0, 0}, pos)
	assert.InDelta(t, 0.141421, dist, 1e-5)

	_, _, _, ok = FindNearestVertex(obj.NewMesh(), mgl32.Vec3{})
	assert.False(t, ok)
}
