package main

import (
	"fmt"

	"github.com/philipparndt/objwire/internal/app"
	"github.com/philipparndt/objwire/pkg/analysis"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an OBJ or STL file",
	Long:  "Show vertex, triangle and edge counts, the bounding box, edge length statistics, the resolved base color and any skipped lines.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// loadMesh loads the mesh with the material selected by config and flags
func loadMesh(cmd *cobra.Command, filename string) (*obj.Mesh, *obj.Report) {
	opts := loadOptions(cmd)
	mesh, report, err := app.LoadMesh(filename, opts)
	exitOnError("Error loading mesh", err)
	return mesh, report
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	mesh, report := loadMesh(cmd, filename)
	result := analysis.AnalyzeMesh(mesh, report)

	fmt.Println("Mesh File Information")
	fmt.Println("=====================")
	if mesh.Name != "" {
		fmt.Printf("Name: %s\n", mesh.Name)
	}
	fmt.Printf("File: %s\n", filename)
	if mesh.MaterialLibrary != "" {
		fmt.Printf("Material library: %s\n", mesh.MaterialLibrary)
	}
	fmt.Printf("Base color: %s\n\n", analysis.FormatColor(mesh.BaseColor))

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n\n", result.EdgeCount)

	if mesh.VertexCount() == 0 {
		fmt.Println("The mesh has no vertices.")
	} else {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

		fmt.Println("Dimensions:")
		fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X())
		fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y())
		fmt.Printf("  Depth (Z): %.6f units\n", result.Dimensions.Z())
		fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
		fmt.Printf("  Volume: %.6f cubic units\n\n", result.Volume)
	}

	if result.EdgeCount > 0 {
		fmt.Println("Edge Lengths:")
		fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
		fmt.Printf("  Median: %.6f units\n", result.MedianEdge)
		fmt.Printf("  Std. deviation: %.6f units\n\n", result.EdgeLengthDev)
	}

	if len(result.SkippedLines) > 0 {
		fmt.Println("Skipped Lines:")
		for _, reason := range []obj.SkipReason{
			obj.SkipMalformedVertex,
			obj.SkipMalformedFaceRef,
			obj.SkipFaceOutOfRange,
			obj.SkipFaceTooFewRefs,
		} {
			if n := result.SkippedLines[reason]; n > 0 {
				fmt.Printf("  %s: %d\n", reason, n)
			}
		}
		fmt.Println("  Run with --verbose to list them.")
	}
}
