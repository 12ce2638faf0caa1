package analysis

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"gonum.org/v1/gonum/floats"
)

// TriangleInfo describes one filled triangle of a mesh
type TriangleInfo struct {
	Index     int
	Triangle  obj.Triangle
	Corners   [3]mgl32.Vec3
	Area      float64
	Perimeter float64
}

// TriangleResult summarises the filled surface of a mesh
type TriangleResult struct {
	Triangles   []TriangleInfo // in mesh order
	SurfaceArea float64
	MinArea     float64
	MaxArea     float64
	AvgArea     float64
}

// AnalyzeTriangles measures every triangle of the mesh
func AnalyzeTriangles(mesh *obj.Mesh) *TriangleResult {
	result := &TriangleResult{Triangles: make([]TriangleInfo, 0, len(mesh.Triangles))}
	areas := make([]float64, 0, len(mesh.Triangles))

	for i, tri := range mesh.Triangles {
		a, b, c := mesh.Vertex(tri[0]), mesh.Vertex(tri[1]), mesh.Vertex(tri[2])
		area := float64(b.Sub(a).Cross(c.Sub(a)).Len()) / 2
		perimeter := float64(b.Sub(a).Len() + c.Sub(b).Len() + a.Sub(c).Len())

		result.Triangles = append(result.Triangles, TriangleInfo{
			Index:     i,
			Triangle:  tri,
			Corners:   [3]mgl32.Vec3{a, b, c},
			Area:      area,
			Perimeter: perimeter,
		})
		areas = append(areas, area)
	}

	if len(areas) == 0 {
		return result
	}
	result.SurfaceArea = floats.Sum(areas)
	result.MinArea = floats.Min(areas)
	result.MaxArea = floats.Max(areas)
	result.AvgArea = result.SurfaceArea / float64(len(areas))
	return result
}

// FindLargestTriangles returns the N triangles with the largest area
func FindLargestTriangles(result *TriangleResult, count int) []TriangleInfo {
	return sortedTriangles(result, count, func(a, b TriangleInfo) bool { return a.Area > b.Area })
}

// FindSmallestTriangles returns the N triangles with the smallest area
func FindSmallestTriangles(result *TriangleResult, count int) []TriangleInfo {
	return sortedTriangles(result, count, func(a, b TriangleInfo) bool { return a.Area < b.Area })
}

func sortedTriangles(result *TriangleResult, count int, less func(a, b TriangleInfo) bool) []TriangleInfo {
	triangles := make([]TriangleInfo, len(result.Triangles))
	copy(triangles, result.Triangles)

	if less != nil {
		sort.SliceStable(triangles, func(i, j int) bool {
			return less(triangles[i], triangles[j])
		})
	}
	return triangles[:max(0, min(count, len(triangles)))]
}

// FirstTriangles returns up to N triangles in mesh order
func FirstTriangles(result *TriangleResult, count int) []TriangleInfo {
	return sortedTriangles(result, count, nil)
}

// FindNearestVertex returns the mesh vertex closest to p. ok is false for
// an empty mesh.
func FindNearestVertex(mesh *obj.Mesh, p mgl32.Vec3) (id obj.VertexID, pos mgl32.Vec3, distance float64, ok bool) {
	distance = math.Inf(1)
	for i := 0; i < mesh.VertexCount(); i++ {
		v := mesh.Vertex(obj.VertexID(i))
		if d := float64(v.Sub(p).Len()); d < distance {
			id, pos, distance, ok = obj.VertexID(i), v, d, true
		}
	}
	return id, pos, distance, ok
}
