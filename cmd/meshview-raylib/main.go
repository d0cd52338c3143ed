// meshview-raylib is an alternative GPU-windowed backend for the mesh
// viewer. It polls raylib input each frame and drives the same pipeline
// as the fyne front end.
package main

import (
	"fmt"
	"os"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"meshview/internal/assets"
	"meshview/internal/config"
	"meshview/internal/logger"
	"meshview/pkg/mesh"
	"meshview/pkg/viewer"
	"meshview/pkg/watcher"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	m, name, err := loadMesh(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mode, err := viewer.ParseMode(cfg.Viewer.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var reloaded atomic.Pointer[mesh.Mesh]
	if path != "" && cfg.Watch.Enabled {
		fw, err := watcher.New(path, cfg.Watch.Debounce, func(changed string) {
			fresh, _, err := loadMesh(changed)
			if err != nil {
				logger.Log.Warn("reload failed", zap.String("file", changed), zap.Error(err))
				return
			}
			// Picked up by the render loop on its next frame
			reloaded.Store(fresh)
		})
		if err != nil {
			logger.Log.Warn("file watching disabled", zap.Error(err))
		} else {
			fw.Start()
			defer fw.Close()
		}
	}

	width := int32(cfg.Window.Width)
	height := int32(cfg.Window.Height)
	rl.InitWindow(width, height, fmt.Sprintf("%s - %s", cfg.Window.Title, name))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	controller := viewer.NewDragController(cfg.Viewer.Sensitivity)
	projection := viewer.FitProjection(
		m.MaxRadius(),
		float64(width), float64(height),
		cfg.Viewer.FitMargin,
	)

	strokeColor := rl.NewColor(130, 177, 255, 255)
	fillColor := rl.NewColor(0, 0, 170, 255)
	background := rl.NewColor(15, 18, 25, 255)

	for !rl.WindowShouldClose() {
		if fresh := reloaded.Swap(nil); fresh != nil {
			m = fresh
			projection = viewer.FitProjection(
				m.MaxRadius(),
				float64(width), float64(height),
				cfg.Viewer.FitMargin,
			)
		}

		// Input
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			controller.Press()
		}
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			delta := rl.GetMouseDelta()
			controller.Move(float64(delta.X), float64(delta.Y))
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			controller.Release()
		}
		if rl.IsKeyPressed(rl.KeyW) {
			mode = mode.Toggle()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			controller.Reset()
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		frame := viewer.BuildFrame(m, controller.Rotation(), projection, mode)

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(background)

		for _, p := range frame.Polygons {
			drawFilledTriangle(p, fillColor)
		}
		for _, e := range frame.Edges {
			rl.DrawLineV(
				rl.Vector2{X: float32(e.A.X), Y: float32(e.A.Y)},
				rl.Vector2{X: float32(e.B.X), Y: float32(e.B.Y)},
				strokeColor,
			)
		}

		rl.DrawText(fmt.Sprintf("%s | drag: rotate, w: mode, r: reset, q: quit", mode),
			10, height-24, 16, rl.Gray)

		rl.EndDrawing()
	}
}

// loadMesh parses and centers the mesh for viewing
func loadMesh(path string) (*mesh.Mesh, string, error) {
	if path == "" {
		m, err := assets.SampleMesh()
		if err != nil {
			return nil, "", err
		}
		return m.Centered(), assets.SampleName, nil
	}

	m, err := mesh.Parse(path)
	if err != nil {
		return nil, "", err
	}
	return m.Centered(), path, nil
}

// drawFilledTriangle renders a polygon primitive. Raylib culls
// clockwise triangles in 2D, so the points are reordered when the
// projected winding flips.
func drawFilledTriangle(p viewer.PolygonPrimitive, col rl.Color) {
	if len(p.Points) != 3 {
		return
	}

	a, b, c := p.Points[0], p.Points[1], p.Points[2]
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		b, c = c, b
	}

	rl.DrawTriangle(
		rl.Vector2{X: float32(a.X), Y: float32(a.Y)},
		rl.Vector2{X: float32(b.X), Y: float32(b.Y)},
		rl.Vector2{X: float32(c.X), Y: float32(c.Y)},
		col,
	)
}
