package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meshview/pkg/analysis"
	"meshview/pkg/mesh"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display information about a mesh file",
	Long:  "Show vertex, face and edge counts, bounding box, dimensions and edge length statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := mesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeMesh(m)

	fmt.Println("Mesh File Information")
	fmt.Println("=====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Faces: %d\n", result.FaceCount)
	fmt.Printf("  Unique Edges: %d\n\n", result.EdgeCount)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundsMin))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundsMax))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(result.Center))
	fmt.Printf("  Max Radius: %.6f units\n\n", result.MaxRadius)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n\n", result.Dimensions.Z)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
