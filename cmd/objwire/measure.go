package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/objwire/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float32
	point2X, point2Y, point2Z float32
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points and between the
mesh vertices nearest to them.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float32Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float32Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float32Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float32Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float32Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float32Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	mesh, _ := loadMesh(cmd, args[0])

	p1 := mgl32.Vec3{point1X, point1Y, point1Z}
	p2 := mgl32.Vec3{point2X, point2Y, point2Z}

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	id1, nearest1, dist1, ok := analysis.FindNearestVertex(mesh, p1)
	id2, nearest2, dist2, _ := analysis.FindNearestVertex(mesh, p2)

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatVector(p1))
	if ok {
		fmt.Printf("  Nearest vertex %d: %s (distance: %.6f)\n", id1+1, analysis.FormatVector(nearest1), dist1)
	}
	fmt.Printf("\nPoint 2: %s\n", analysis.FormatVector(p2))
	if ok {
		fmt.Printf("  Nearest vertex %d: %s (distance: %.6f)\n", id2+1, analysis.FormatVector(nearest2), dist2)
	}

	fmt.Printf("\nDirect distance: %.6f units\n", p2.Sub(p1).Len())
	if ok {
		fmt.Printf("Distance between nearest vertices: %.6f units\n", nearest2.Sub(nearest1).Len())
	}
}
