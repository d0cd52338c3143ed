// Package mesh provides the indexed triangle mesh model and its text-format parser.
package mesh

import (
	"fmt"

	"meshview/pkg/geometry"
)

// Vertex is a mesh vertex with its 1-based ID from the source file
type Vertex struct {
	ID       int
	Position geometry.Vector3
}

// Face is a triangle referencing three vertex IDs in file order
type Face struct {
	V1, V2, V3 int
}

// Vertices returns the three vertex IDs in winding order
func (f Face) Vertices() [3]int {
	return [3]int{f.V1, f.V2, f.V3}
}

// Edge is an undirected pair of vertex IDs with A < B
type Edge struct {
	A, B int
}

// Mesh is an indexed collection of vertices and triangular faces.
// It is immutable after construction; rotation operates on derived
// point slices, never on the mesh itself.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face

	index map[int]int // vertex ID -> position in Vertices
}

// NewMesh creates a mesh and validates that every face references an
// existing vertex ID and that no vertex ID occurs twice
func NewMesh(vertices []Vertex, faces []Face) (*Mesh, error) {
	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		if _, ok := index[v.ID]; ok {
			return nil, fmt.Errorf("duplicate vertex ID %d", v.ID)
		}
		index[v.ID] = i
	}

	for i, f := range faces {
		for _, id := range f.Vertices() {
			if _, ok := index[id]; !ok {
				return nil, fmt.Errorf("face %d references unknown vertex ID %d", i+1, id)
			}
		}
	}

	return &Mesh{Vertices: vertices, Faces: faces, index: index}, nil
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Index returns the position in Vertices for a vertex ID
func (m *Mesh) Index(id int) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// Position returns the position of the vertex with the given ID
func (m *Mesh) Position(id int) (geometry.Vector3, bool) {
	i, ok := m.index[id]
	if !ok {
		return geometry.Vector3{}, false
	}
	return m.Vertices[i].Position, true
}

// UniqueEdges returns the deduplicated set of undirected edges across
// all faces. Shared edges between adjacent faces appear once.
func (m *Mesh) UniqueEdges() []Edge {
	seen := make(map[Edge]bool)
	edges := make([]Edge, 0, 3*len(m.Faces))

	for _, f := range m.Faces {
		ids := f.Vertices()
		for i := 0; i < 3; i++ {
			a, b := ids[i], ids[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			e := Edge{A: a, B: b}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}

	return edges
}

// Center returns the mean of all vertex positions
func (m *Mesh) Center() geometry.Vector3 {
	if len(m.Vertices) == 0 {
		return geometry.Vector3{}
	}

	var sum geometry.Vector3
	for _, v := range m.Vertices {
		sum = sum.Add(v.Position)
	}
	return sum.Mul(1.0 / float64(len(m.Vertices)))
}

// MaxRadius returns the largest distance of any vertex from the mesh center
func (m *Mesh) MaxRadius() float64 {
	center := m.Center()
	radius := 0.0
	for _, v := range m.Vertices {
		if d := v.Position.Distance(center); d > radius {
			radius = d
		}
	}
	return radius
}

// Centered returns a copy of the mesh translated so its center is the origin
func (m *Mesh) Centered() *Mesh {
	center := m.Center()
	vertices := make([]Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = Vertex{ID: v.ID, Position: v.Position.Sub(center)}
	}

	centered, err := NewMesh(vertices, m.Faces)
	if err != nil {
		// The source mesh already passed validation
		panic(err)
	}
	return centered
}
