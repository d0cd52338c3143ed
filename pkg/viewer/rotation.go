// Package viewer implements the per-frame pipeline: rotate the mesh,
// project it to screen space and assemble renderable primitives for a
// frame sink.
package viewer

import (
	"meshview/pkg/geometry"
	"meshview/pkg/mesh"
)

// RotationState holds the accumulated view rotation in radians.
// Angles are unbounded; the trigonometric functions wrap naturally.
type RotationState struct {
	Pitch float64 // rotation about the x-axis
	Yaw   float64 // rotation about the y-axis
}

// ApplyRotation rotates every vertex position by the current state and
// returns the result in mesh vertex order. The rotation order is fixed:
// pitch about x first, then yaw about y. Rotations do not commute, so
// swapping the order produces a different view.
//
// The mesh is never mutated; a fresh slice is returned on every call.
func ApplyRotation(m *mesh.Mesh, state RotationState) []geometry.Vector3 {
	points := make([]geometry.Vector3, len(m.Vertices))
	for i, v := range m.Vertices {
		points[i] = v.Position.RotateX(state.Pitch).RotateY(state.Yaw)
	}
	return points
}
