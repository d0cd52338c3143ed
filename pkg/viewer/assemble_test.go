package viewer

import (
	"testing"

	"meshview/pkg/geometry"
	"meshview/pkg/mesh"
)

func TestAssembleWireframeCount(t *testing.T) {
	m := testMesh(t)
	projected := NewProjection(1, 0, 0).Project(ApplyRotation(m, RotationState{}))

	frame := Assemble(m, projected, Wireframe)

	// 3F edges, shared edges intentionally not deduplicated
	if len(frame.Edges) != 3*m.FaceCount() {
		t.Errorf("expected %d edges, got %d", 3*m.FaceCount(), len(frame.Edges))
	}
}

func TestAssembleFilledCount(t *testing.T) {
	m := testMesh(t)
	projected := NewProjection(1, 0, 0).Project(ApplyRotation(m, RotationState{}))

	frame := Assemble(m, projected, Filled)

	if len(frame.Polygons) != m.FaceCount() {
		t.Errorf("expected %d polygons, got %d", m.FaceCount(), len(frame.Polygons))
	}
}

func TestAssembleEdgeEndpoints(t *testing.T) {
	m := testMesh(t)
	projected := NewProjection(1, 0, 0).Project(ApplyRotation(m, RotationState{}))

	frame := Assemble(m, projected, Wireframe)

	// First face is (1, 2, 3); its edges are 1-2, 2-3, 3-1
	face := m.Faces[0]
	ids := face.Vertices()
	for i := 0; i < 3; i++ {
		ia, _ := m.Index(ids[i])
		ib, _ := m.Index(ids[(i+1)%3])
		edge := frame.Edges[i]
		if edge.A != projected[ia] || edge.B != projected[ib] {
			t.Errorf("edge %d: expected %v-%v, got %v-%v",
				i, projected[ia], projected[ib], edge.A, edge.B)
		}
	}
}

func TestAssembleDegenerateFaceStillEmitted(t *testing.T) {
	// All three vertices project to the same point
	m, err := mesh.NewMesh(
		[]mesh.Vertex{
			{ID: 1, Position: geometry.NewVector3(1, 1, 0)},
			{ID: 2, Position: geometry.NewVector3(1, 1, 5)},
			{ID: 3, Position: geometry.NewVector3(1, 1, -5)},
		},
		[]mesh.Face{{V1: 1, V2: 2, V3: 3}},
	)
	if err != nil {
		t.Fatalf("failed to build mesh: %v", err)
	}

	projected := NewProjection(1, 0, 0).Project(ApplyRotation(m, RotationState{}))

	wire := Assemble(m, projected, Wireframe)
	if len(wire.Edges) != 3 {
		t.Errorf("degenerate face dropped from wireframe: %d edges", len(wire.Edges))
	}

	filled := Assemble(m, projected, Filled)
	if len(filled.Polygons) != 1 {
		t.Errorf("degenerate face dropped from filled mode: %d polygons", len(filled.Polygons))
	}
}

func TestAssemblePolygonWindingOrder(t *testing.T) {
	m := testMesh(t)
	projected := NewProjection(1, 0, 0).Project(ApplyRotation(m, RotationState{}))

	frame := Assemble(m, projected, Filled)

	face := m.Faces[1]
	for i, id := range face.Vertices() {
		idx, _ := m.Index(id)
		if frame.Polygons[1].Points[i] != projected[idx] {
			t.Errorf("polygon point %d out of winding order", i)
		}
	}
}

func TestParseMode(t *testing.T) {
	if mode, err := ParseMode("wireframe"); err != nil || mode != Wireframe {
		t.Errorf("ParseMode(wireframe) = %v, %v", mode, err)
	}
	if mode, err := ParseMode("filled"); err != nil || mode != Filled {
		t.Errorf("ParseMode(filled) = %v, %v", mode, err)
	}
	if _, err := ParseMode("solid"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestModeToggle(t *testing.T) {
	if Wireframe.Toggle() != Filled || Filled.Toggle() != Wireframe {
		t.Error("Toggle does not flip between the two modes")
	}
}
