package analysis

import (
	"strings"
	"testing"

	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// right triangle with legs 3 and 4
const triangleOBJ = "v 0 0 0\nv 3 0 0\nv 0 4 0\nf 1 2 3\nf 1 9 2\n"

func analyze(t *testing.T, src string) *MeasurementResult {
	t.Helper()
	mesh, report, err := obj.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return AnalyzeMesh(mesh, report)
}

func TestAnalyzeMesh(t *testing.T) {
	result := analyze(t, triangleOBJ)

	assert.Equal(t, 3, result.VertexCount)
	assert.Equal(t, 1, result.TriangleCount)
	assert.Equal(t, 3, result.EdgeCount)
	assert.InDelta(t, 3.0, result.MinEdgeLength, 1e-6)
	assert.InDelta(t, 5.0, result.MaxEdgeLength, 1e-6)
	assert.InDelta(t, 4.0, result.AvgEdgeLength, 1e-6)
	assert.InDelta(t, 4.0, result.MedianEdge, 1e-6)
	assert.Equal(t, map[obj.SkipReason]int{obj.SkipFaceOutOfRange: 1}, result.SkippedLines)
	assert.InDelta(t, 3.0, result.Dimensions.X(), 1e-6)
	assert.InDelta(t, 4.0, result.Dimensions.Y(), 1e-6)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	result := AnalyzeMesh(obj.NewMesh(), nil)

	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.MinEdgeLength)
	assert.Empty(t, result.AllEdges)
	assert.Empty(t, FindLongestEdges(result, 5))
}

func TestFindEdges(t *testing.T) {
	result := analyze(t, triangleOBJ)

	longest := FindLongestEdges(result, 2)
	require.Len(t, longest, 2)
	assert.InDelta(t, 5.0, longest[0].Length, 1e-6)
	assert.InDelta(t, 4.0, longest[1].Length, 1e-6)

	shortest := FindShortestEdges(result, 10)
	require.Len(t, shortest, 3)
	assert.Equal(t, obj.Edge{A: 0, B: 1}, shortest[0].Edge)

	inRange := FindEdgesByLength(result, 3.5, 4.5)
	require.Len(t, inRange, 1)
	assert.Equal(t, obj.Edge{A: 0, B: 2}, inRange[0].Edge)
}

func TestFormatVector(t *testing.T) {
	result := analyze(t, triangleOBJ)
	assert.Equal(t, "(3.000000, 0.000000, 0.000000)", FormatVector(result.AllEdges[0].End))
}
