package viewer

import "meshview/pkg/mesh"

// FrameSink receives the assembled primitives once per frame and is
// responsible for putting them on screen (or into a file)
type FrameSink interface {
	RenderFrame(frame Frame) error
}

// BuildFrame runs the full pipeline for one frame: rotate the mesh
// vertices by the snapshotted rotation state, project them onto the
// viewport and assemble primitives for the requested mode.
func BuildFrame(m *mesh.Mesh, state RotationState, projection Projection, mode Mode) Frame {
	points := ApplyRotation(m, state)
	projected := projection.Project(points)
	return Assemble(m, projected, mode)
}
