package viewer

import (
	"math"

	"meshview/pkg/geometry"
)

// DefaultFitMargin leaves some viewport space around a fitted mesh
const DefaultFitMargin = 0.9

// Projection maps rotated 3D points onto the 2D viewport by dropping
// the depth axis. Scale and offsets are presentation configuration,
// not derived data.
type Projection struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// NewProjection creates a projection with the given scale and offsets
func NewProjection(scale, offsetX, offsetY float64) Projection {
	return Projection{Scale: scale, OffsetX: offsetX, OffsetY: offsetY}
}

// FitProjection derives a projection that keeps a mesh of the given
// radius around the origin inside a width x height viewport, with a
// margin so the silhouette never touches the border. Screen Y grows
// downward, so the projection flips the y-axis.
func FitProjection(radius, width, height, margin float64) Projection {
	if radius <= 0 {
		radius = 1
	}
	half := math.Min(width, height) / 2
	return Projection{
		Scale:   half * margin / radius,
		OffsetX: width / 2,
		OffsetY: height / 2,
	}
}

// Project maps 3D points to 2D screen coordinates, discarding z.
// Output order matches input order. This is a plain orthographic
// projection; there is no perspective divide.
func (p Projection) Project(points []geometry.Vector3) []geometry.Vector2 {
	projected := make([]geometry.Vector2, len(points))
	for i, pt := range points {
		projected[i] = geometry.Vector2{
			X: pt.X*p.Scale + p.OffsetX,
			Y: p.OffsetY - pt.Y*p.Scale,
		}
	}
	return projected
}
