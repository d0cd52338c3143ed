package mesh

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parseString(t *testing.T, content string) (*Mesh, error) {
	t.Helper()
	return ParseReader(strings.NewReader(content), "test.txt")
}

func TestParseTetrahedron(t *testing.T) {
	content := "4 4\n" +
		"1 0 0 0\n" +
		"2 1 0 0\n" +
		"3 0 1 0\n" +
		"4 0 0 1\n" +
		"1 2 3\n" +
		"1 2 4\n" +
		"1 3 4\n" +
		"2 3 4\n"

	m, err := parseString(t, content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if m.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 4 {
		t.Errorf("expected 4 faces, got %d", m.FaceCount())
	}

	pos, ok := m.Position(4)
	if !ok {
		t.Fatal("vertex 4 not found")
	}
	if pos.Z != 1 {
		t.Errorf("expected vertex 4 at z=1, got %v", pos)
	}

	if m.Faces[3] != (Face{V1: 2, V2: 3, V3: 4}) {
		t.Errorf("unexpected last face: %v", m.Faces[3])
	}
}

func TestParseCommaDelimited(t *testing.T) {
	content := "2 0\n1, 0.5, -1.5, 2.5\n2, 1e-3, 2E2, 0\n"

	m, err := parseString(t, content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	pos, _ := m.Position(1)
	if pos.X != 0.5 || pos.Y != -1.5 || pos.Z != 2.5 {
		t.Errorf("unexpected vertex 1 position: %v", pos)
	}

	pos, _ = m.Position(2)
	if pos.X != 1e-3 || pos.Y != 200 {
		t.Errorf("scientific notation not parsed: %v", pos)
	}
}

func TestParseNoFaces(t *testing.T) {
	m, err := parseString(t, "2 0\n1 0 0 0\n2 1 1 1\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if m.VertexCount() != 2 || m.FaceCount() != 0 {
		t.Errorf("expected 2 vertices and 0 faces, got %d and %d", m.VertexCount(), m.FaceCount())
	}
	if len(m.UniqueEdges()) != 0 {
		t.Errorf("expected no edges, got %d", len(m.UniqueEdges()))
	}
}

func TestParseSparseIDs(t *testing.T) {
	m, err := parseString(t, "3 1\n10 0 0 0\n20 1 0 0\n30 0 1 0\n10 20 30\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if _, ok := m.Position(20); !ok {
		t.Error("sparse vertex ID 20 not resolvable")
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.txt"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
		want    string
	}{
		{"empty file", "", 1, "missing header"},
		{"header not integer", "two 1\n", 1, "invalid vertex count"},
		{"header token count", "3\n", 1, "header"},
		{"negative count", "-1 0\n", 1, "invalid vertex count"},
		{"truncated vertices", "3 1\n1 0 0 0\n2 1 1 1\n", 3, "expected 3 vertex lines"},
		{"huge vertex count", "2000000000 0\n", 1, "expected 2000000000 vertex lines"},
		{"huge face count", "1 2000000000\n1 0 0 0\n", 2, "expected 2000000000 face lines"},
		{"vertex token count", "1 0\n1 0 0\n", 2, "vertex line"},
		{"bad coordinate", "1 0\n1 0 zero 0\n", 2, "invalid coordinate"},
		{"bad vertex id", "1 0\nx 0 0 0\n", 2, "invalid vertex ID"},
		{"zero vertex id", "1 0\n0 0 0 0\n", 2, "must be positive"},
		{"duplicate vertex id", "2 0\n1 0 0 0\n1 1 1 1\n", 3, "duplicate vertex ID 1"},
		{"truncated faces", "3 2\n1 0 0 0\n2 1 0 0\n3 0 1 0\n1 2 3\n", 5, "expected 2 face lines"},
		{"face token count", "3 1\n1 0 0 0\n2 1 0 0\n3 0 1 0\n1 2\n", 5, "face line"},
		{"bad face reference", "3 1\n1 0 0 0\n2 1 0 0\n3 0 1 0\n1 2 x\n", 5, "invalid vertex reference"},
		{"unknown vertex id", "3 1\n1 0 0 0\n2 1 0 0\n3 0 1 0\n1 2 99\n", 5, "unknown vertex ID 99"},
		{"trailing line", "1 0\n1 0 0 0\nextra\n", 3, "unexpected content"},
		{"trailing blank line", "1 0\n1 0 0 0\n\n", 3, "unexpected content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseString(t, tt.content)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %T: %v", err, err)
			}
			if perr.Line != tt.line {
				t.Errorf("expected error on line %d, got %d (%v)", tt.line, perr.Line, perr)
			}
			if !strings.Contains(perr.Msg, tt.want) {
				t.Errorf("expected message containing %q, got %q", tt.want, perr.Msg)
			}
		})
	}
}

func TestParseAbsurdHeaderCountsDoNotPanic(t *testing.T) {
	// Counts beyond any allocatable slice must still come back as a
	// plain parse error
	for _, content := range []string{
		"99999999999999999 0\n",
		"0 99999999999999999\n",
	} {
		_, err := parseString(t, content)

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("content %q: expected ParseError, got %v", content, err)
		}
	}
}

func TestParseErrorMessageNamesLine(t *testing.T) {
	_, err := parseString(t, "1 0\n1 a b c\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "test.txt:2:") {
		t.Errorf("expected error prefixed with file and line, got %q", err.Error())
	}
}

func TestParseFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.txt")
	content := "3 1\n1 0 0 0\n2 1 0 0\n3 0 1 0\n1 2 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write mesh file: %v", err)
	}

	m, err := Parse(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if m.FaceCount() != 1 {
		t.Errorf("expected 1 face, got %d", m.FaceCount())
	}
}
