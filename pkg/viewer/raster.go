package viewer

import (
	"image"
	"image/color"
	"math"
)

// ImageSink is a software-rasterizing FrameSink that draws primitives
// into an RGBA image. It backs both the windowed viewer and offscreen
// rendering.
type ImageSink struct {
	img        *image.RGBA
	Background color.RGBA
	Stroke     color.RGBA
	Fill       color.RGBA
}

// NewImageSink creates a sink drawing into a width x height image
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		Background: color.RGBA{15, 18, 25, 255},
		Stroke:     color.RGBA{130, 177, 255, 255},
		Fill:       color.RGBA{0, 0, 170, 255},
	}
}

// Image returns the backing image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// Size returns the image dimensions
func (s *ImageSink) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// RenderFrame clears the image and draws all primitives of the frame
func (s *ImageSink) RenderFrame(frame Frame) error {
	s.clear()

	for _, p := range frame.Polygons {
		if len(p.Points) == 3 {
			s.fillTriangle(
				p.Points[0].X, p.Points[0].Y,
				p.Points[1].X, p.Points[1].Y,
				p.Points[2].X, p.Points[2].Y,
				s.Fill)
		}
	}
	for _, e := range frame.Edges {
		s.drawLine(
			int(math.Round(e.A.X)), int(math.Round(e.A.Y)),
			int(math.Round(e.B.X)), int(math.Round(e.B.Y)),
			s.Stroke)
	}

	return nil
}

func (s *ImageSink) clear() {
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.img.SetRGBA(x, y, s.Background)
		}
	}
}

// drawLine draws a line using Bresenham's algorithm
func (s *ImageSink) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	bounds := s.img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			s.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillTriangle fills a triangle using a scanline algorithm. Zero-area
// triangles simply produce no spans.
func (s *ImageSink) fillTriangle(x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	bounds := s.img.Bounds()

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		intersections := make([]float64, 0, 2)
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}

		if len(intersections) < 2 {
			continue
		}

		xStart := math.Max(0, math.Min(intersections[0], intersections[1]))
		xEnd := math.Min(float64(bounds.Max.X-1), math.Max(intersections[0], intersections[1]))

		for x := int(math.Ceil(xStart)); x <= int(xEnd); x++ {
			s.img.SetRGBA(x, y, col)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
