package analysis

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/obj"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EdgeInfo describes one wireframe edge of a mesh
type EdgeInfo struct {
	Edge   obj.Edge
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Length float64
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   obj.BoundingBox
	Dimensions    mgl32.Vec3
	Volume        float64
	VertexCount   int
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	MedianEdge    float64
	EdgeLengthDev float64
	AllEdges      []EdgeInfo // in mesh edge order
	SkippedLines  map[obj.SkipReason]int
}

// AnalyzeMesh measures a loaded mesh. The report may be nil.
func AnalyzeMesh(mesh *obj.Mesh, report *obj.Report) *MeasurementResult {
	bbox := mesh.BoundingBox()
	result := &MeasurementResult{
		BoundingBox:   bbox,
		Dimensions:    bbox.Size(),
		Volume:        float64(bbox.Volume()),
		VertexCount:   mesh.VertexCount(),
		TriangleCount: len(mesh.Triangles),
		EdgeCount:     len(mesh.Edges),
		AllEdges:      make([]EdgeInfo, 0, len(mesh.Edges)),
		SkippedLines:  report.Counts(),
	}

	lengths := make([]float64, 0, len(mesh.Edges))
	for _, e := range mesh.Edges {
		start, end := mesh.Vertex(e.A), mesh.Vertex(e.B)
		length := float64(end.Sub(start).Len())
		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Edge:   e,
			Start:  start,
			End:    end,
			Length: length,
		})
		lengths = append(lengths, length)
	}

	if len(lengths) == 0 {
		return result
	}

	result.MinEdgeLength = floats.Min(lengths)
	result.MaxEdgeLength = floats.Max(lengths)
	result.AvgEdgeLength, result.EdgeLengthDev = stat.MeanStdDev(lengths, nil)
	if len(lengths) == 1 {
		result.EdgeLengthDev = 0
	}

	sorted := append([]float64(nil), lengths...)
	sort.Float64s(sorted)
	result.MedianEdge = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X(), v.Y(), v.Z())
}

// FormatColor formats an RGB color
func FormatColor(c obj.Color) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}
