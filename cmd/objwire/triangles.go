package main

import (
	"fmt"

	"github.com/philipparndt/objwire/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
)

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze the filled triangles of a mesh",
	Long: `Display area, perimeter and corner positions of the triangles drawn by the
solid pass. Faces with more than three corners contribute only their first
three, so the listed area can be smaller than the face's real area.`,
	Args: cobra.ExactArgs(1),
	Run:  runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")

	trianglesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runTriangles(cmd *cobra.Command, args []string) {
	mesh, _ := loadMesh(cmd, args[0])
	result := analysis.AnalyzeTriangles(mesh)

	var triangles []analysis.TriangleInfo
	var title string
	switch {
	case triLargest:
		triangles = analysis.FindLargestTriangles(result, triCount)
		title = fmt.Sprintf("Top %d Largest Triangles", len(triangles))
	case triSmallest:
		triangles = analysis.FindSmallestTriangles(result, triCount)
		title = fmt.Sprintf("Top %d Smallest Triangles", len(triangles))
	default:
		triangles = analysis.FirstTriangles(result, triCount)
		title = fmt.Sprintf("First %d Triangles", len(triangles))
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total triangles: %d\n", len(result.Triangles))
	if len(result.Triangles) == 0 {
		fmt.Println("The mesh has no triangles.")
		return
	}
	fmt.Printf("Total surface area: %.6f square units\n", result.SurfaceArea)
	fmt.Printf("Min triangle area: %.6f square units\n", result.MinArea)
	fmt.Printf("Max triangle area: %.6f square units\n", result.MaxArea)
	fmt.Printf("Avg triangle area: %.6f square units\n\n", result.AvgArea)

	for _, tri := range triangles {
		fmt.Printf("Triangle #%d (vertices %d, %d, %d):\n", tri.Index, tri.Triangle[0]+1, tri.Triangle[1]+1, tri.Triangle[2]+1)
		fmt.Printf("  Area: %.6f square units\n", tri.Area)
		fmt.Printf("  Perimeter: %.6f units\n", tri.Perimeter)
		fmt.Printf("  Corners: %s, %s, %s\n\n",
			analysis.FormatVector(tri.Corners[0]),
			analysis.FormatVector(tri.Corners[1]),
			analysis.FormatVector(tri.Corners[2]))
	}
}
