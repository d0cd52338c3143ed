// Package analysis computes summary measurements of a mesh for the
// info command.
package analysis

import (
	"fmt"
	"math"

	"meshview/pkg/geometry"
	"meshview/pkg/mesh"
)

// EdgeInfo describes one unique edge of the mesh
type EdgeInfo struct {
	A, B   int // vertex IDs
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	VertexCount   int
	FaceCount     int
	EdgeCount     int // unique edges, shared edges counted once
	BoundsMin     geometry.Vector3
	BoundsMax     geometry.Vector3
	Dimensions    geometry.Vector3
	Center        geometry.Vector3
	MaxRadius     float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []EdgeInfo
}

// AnalyzeMesh computes bounding box, center, radius and edge statistics
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
		Center:      m.Center(),
		MaxRadius:   m.MaxRadius(),
	}

	if len(m.Vertices) > 0 {
		result.BoundsMin = m.Vertices[0].Position
		result.BoundsMax = m.Vertices[0].Position
		for _, v := range m.Vertices[1:] {
			result.BoundsMin = result.BoundsMin.Min(v.Position)
			result.BoundsMax = result.BoundsMax.Max(v.Position)
		}
		result.Dimensions = result.BoundsMax.Sub(result.BoundsMin)
	}

	edges := m.UniqueEdges()
	result.EdgeCount = len(edges)
	result.Edges = make([]EdgeInfo, 0, len(edges))

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, e := range edges {
		start, _ := m.Position(e.A)
		end, _ := m.Position(e.B)
		length := start.Distance(end)

		result.Edges = append(result.Edges, EdgeInfo{
			A: e.A, B: e.B,
			Start: start, End: end,
			Length: length,
		})

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatVector formats a 3D vector for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
