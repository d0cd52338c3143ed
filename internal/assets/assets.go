// Package assets bundles the sample mesh shown when no file is given.
package assets

import (
	"bytes"
	_ "embed"

	"meshview/pkg/mesh"
)

//go:embed cube.txt
var cube []byte

// SampleName is the display name of the bundled mesh
const SampleName = "builtin:cube"

// SampleMesh parses the embedded sample cube
func SampleMesh() (*mesh.Mesh, error) {
	return mesh.ParseReader(bytes.NewReader(cube), SampleName)
}
