// Package app wires the mesh pipeline into a fyne window: it loads the
// mesh, feeds pointer input to the drag controller and presents the
// rendered frames.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"meshview/internal/assets"
	"meshview/internal/config"
	"meshview/internal/logger"
	"meshview/pkg/mesh"
	"meshview/pkg/viewer"
	"meshview/pkg/watcher"
)

// Run loads the mesh at path (or the bundled sample when path is
// empty) and runs the interactive viewer until the window closes or
// 'q' is pressed. Load failures are returned before any window opens.
func Run(path string, cfg *config.Config) error {
	mode, err := viewer.ParseMode(cfg.Viewer.Mode)
	if err != nil {
		return err
	}

	m, name, err := loadMesh(path)
	if err != nil {
		return err
	}
	logger.Log.Info("mesh loaded",
		zap.String("file", name),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()))

	a := fyneapp.New()
	window := a.NewWindow(fmt.Sprintf("%s - %s", cfg.Window.Title, name))

	mw := newMeshWidget(m, mode, cfg.Viewer.Sensitivity, cfg.Viewer.FitMargin)
	window.SetContent(mw)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyQ, fyne.KeyEscape:
			window.Close()
		case fyne.KeyW:
			mw.toggleMode()
			logger.Log.Debug("render mode toggled", zap.Stringer("mode", mw.mode))
		case fyne.KeyR:
			mw.resetView()
		}
	})

	if path != "" && cfg.Watch.Enabled {
		fw, err := watchMesh(path, cfg, mw)
		if err != nil {
			// Auto-reload is a convenience; keep running without it
			logger.Log.Warn("file watching disabled", zap.Error(err))
		} else {
			defer fw.Close()
		}
	}

	window.ShowAndRun()
	return nil
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

// watchMesh reloads the mesh when the file changes on disk
func watchMesh(path string, cfg *config.Config, mw *meshWidget) (*watcher.FileWatcher, error) {
	fw, err := watcher.New(path, cfg.Watch.Debounce, func(changed string) {
		m, _, err := loadMesh(changed)
		if err != nil {
			// Keep showing the previous mesh; the file may be mid-save
			logger.Log.Warn("reload failed", zap.String("file", changed), zap.Error(err))
			return
		}

		logger.Log.Info("mesh reloaded",
			zap.String("file", changed),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("faces", m.FaceCount()))

		// The callback runs on the watcher goroutine; UI state may
		// only change on the fyne event thread
		fyne.Do(func() {
			mw.setMesh(m)
		})
	})
	if err != nil {
		return nil, err
	}

	fw.OnError(func(err error) {
		logger.Log.Warn("watcher error", zap.Error(err))
	})
	fw.Start()
	return fw, nil
}
