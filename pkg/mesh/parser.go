package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"meshview/pkg/geometry"
)

// maxPrealloc bounds how much slice capacity the header counts may
// reserve up front
const maxPrealloc = 4096

// ParseError describes a malformed mesh file. Line is 1-based and zero
// when the error is not tied to a specific line.
type ParseError struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a mesh from a text file.
//
// The format is line-oriented: a header line with the vertex and face
// counts, followed by exactly that many vertex lines ("id x y z") and
// face lines ("v1 v2 v3"). Tokens are separated by whitespace or commas.
func Parse(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{File: path, Msg: "cannot open mesh file", Err: err}
	}
	defer file.Close()

	return parse(bufio.NewScanner(file), path)
}

// ParseReader reads a mesh from r. The name is used in error messages.
func ParseReader(r io.Reader, name string) (*Mesh, error) {
	return parse(bufio.NewScanner(r), name)
}

func parse(scanner *bufio.Scanner, name string) (*Mesh, error) {
	line := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return scanner.Text(), true
	}
	fail := func(format string, args ...any) (*Mesh, error) {
		return nil, &ParseError{File: name, Line: line, Msg: fmt.Sprintf(format, args...)}
	}

	header, ok := next()
	if !ok {
		line = 1
		return fail("missing header line")
	}

	fields := tokenize(header)
	if len(fields) != 2 {
		return fail("header must be '<vertexCount> <faceCount>', got %d tokens", len(fields))
	}
	vertexCount, err := strconv.Atoi(fields[0])
	if err != nil || vertexCount < 0 {
		return fail("invalid vertex count %q", fields[0])
	}
	faceCount, err := strconv.Atoi(fields[1])
	if err != nil || faceCount < 0 {
		return fail("invalid face count %q", fields[1])
	}

	// Counts come straight from the file; cap the preallocation so a
	// bogus header cannot trigger a huge or out-of-range allocation.
	// append grows the slices if an honest file really is that large.
	vertices := make([]Vertex, 0, min(vertexCount, maxPrealloc))
	ids := make(map[int]bool, min(vertexCount, maxPrealloc))
	for i := 0; i < vertexCount; i++ {
		text, ok := next()
		if !ok {
			return fail("expected %d vertex lines, file ends after %d", vertexCount, i)
		}

		fields := tokenize(text)
		if len(fields) != 4 {
			return fail("vertex line must be '<id> <x> <y> <z>', got %d tokens", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fail("invalid vertex ID %q", fields[0])
		}
		if id < 1 {
			return fail("vertex ID must be positive, got %d", id)
		}
		if ids[id] {
			return fail("duplicate vertex ID %d", id)
		}
		ids[id] = true

		var coords [3]float64
		for j, field := range fields[1:] {
			coords[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return fail("invalid coordinate %q", field)
			}
		}

		vertices = append(vertices, Vertex{
			ID:       id,
			Position: geometry.NewVector3(coords[0], coords[1], coords[2]),
		})
	}

	faces := make([]Face, 0, min(faceCount, maxPrealloc))
	for i := 0; i < faceCount; i++ {
		text, ok := next()
		if !ok {
			return fail("expected %d face lines, file ends after %d", faceCount, i)
		}

		fields := tokenize(text)
		if len(fields) != 3 {
			return fail("face line must be '<v1> <v2> <v3>', got %d tokens", len(fields))
		}

		var refs [3]int
		for j, field := range fields {
			refs[j], err = strconv.Atoi(field)
			if err != nil {
				return fail("invalid vertex reference %q", field)
			}
			if !ids[refs[j]] {
				return fail("face references unknown vertex ID %d", refs[j])
			}
		}

		faces = append(faces, Face{V1: refs[0], V2: refs[1], V3: refs[2]})
	}

	if _, ok := next(); ok {
		return fail("unexpected content after %d vertex and %d face lines", vertexCount, faceCount)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: name, Line: line, Msg: "read error", Err: err}
	}

	m, err := NewMesh(vertices, faces)
	if err != nil {
		// Already validated line by line above
		return nil, &ParseError{File: name, Msg: err.Error()}
	}
	return m, nil
}

// tokenize splits a line on whitespace and commas
func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
