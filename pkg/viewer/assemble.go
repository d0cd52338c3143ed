package viewer

import (
	"fmt"

	"meshview/pkg/geometry"
	"meshview/pkg/mesh"
)

// Mode selects how faces are turned into primitives
type Mode int

const (
	// Wireframe renders only face edges
	Wireframe Mode = iota
	// Filled renders faces as solid polygons
	Filled
)

func (m Mode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Filled:
		return "filled"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name from config or CLI flags
func ParseMode(s string) (Mode, error) {
	switch s {
	case "wireframe":
		return Wireframe, nil
	case "filled":
		return Filled, nil
	default:
		return Wireframe, fmt.Errorf("unknown render mode %q (want wireframe or filled)", s)
	}
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == Wireframe {
		return Filled
	}
	return Wireframe
}

// EdgePrimitive is a renderable line between two projected points
type EdgePrimitive struct {
	A, B geometry.Vector2
}

// PolygonPrimitive is a renderable filled polygon; for triangle meshes
// it always carries three points in face winding order
type PolygonPrimitive struct {
	Points []geometry.Vector2
}

// Frame is the renderable output of one pass through the pipeline.
// It is rebuilt from scratch every frame and never cached.
type Frame struct {
	Mode     Mode
	Edges    []EdgePrimitive
	Polygons []PolygonPrimitive
}

// PrimitiveCount returns the number of primitives the frame carries
func (f Frame) PrimitiveCount() int {
	return len(f.Edges) + len(f.Polygons)
}

// Assemble derives the primitive list for the given mode from the mesh
// faces and the projected vertex positions (in mesh vertex order).
//
// Wireframe emits three edges per face without deduplicating edges
// shared between adjacent faces; drawing an edge twice is harmless.
// Filled emits one polygon per face. Degenerate faces whose points
// coincide are emitted like any other; the rasterizer copes with
// zero-area primitives.
func Assemble(m *mesh.Mesh, projected []geometry.Vector2, mode Mode) Frame {
	frame := Frame{Mode: mode}

	switch mode {
	case Filled:
		frame.Polygons = make([]PolygonPrimitive, 0, len(m.Faces))
		for _, face := range m.Faces {
			a, b, c := facePoints(m, projected, face)
			frame.Polygons = append(frame.Polygons, PolygonPrimitive{
				Points: []geometry.Vector2{a, b, c},
			})
		}
	default:
		frame.Edges = make([]EdgePrimitive, 0, 3*len(m.Faces))
		for _, face := range m.Faces {
			a, b, c := facePoints(m, projected, face)
			frame.Edges = append(frame.Edges,
				EdgePrimitive{A: a, B: b},
				EdgePrimitive{A: b, B: c},
				EdgePrimitive{A: c, B: a},
			)
		}
	}

	return frame
}

func facePoints(m *mesh.Mesh, projected []geometry.Vector2, face mesh.Face) (a, b, c geometry.Vector2) {
	// Faces were validated at load time, so the lookups cannot miss
	ia, _ := m.Index(face.V1)
	ib, _ := m.Index(face.V2)
	ic, _ := m.Index(face.V3)
	return projected[ia], projected[ib], projected[ic]
}
