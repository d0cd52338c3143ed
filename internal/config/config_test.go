package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 900 {
		t.Errorf("expected width 900, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900, got %d", cfg.Window.Height)
	}

	if cfg.Viewer.Mode != "filled" {
		t.Errorf("expected mode 'filled', got %s", cfg.Viewer.Mode)
	}
	if cfg.Viewer.Sensitivity != 0.01 {
		t.Errorf("expected sensitivity 0.01, got %f", cfg.Viewer.Sensitivity)
	}
	if cfg.Viewer.FitMargin != 0.9 {
		t.Errorf("expected fit margin 0.9, got %f", cfg.Viewer.FitMargin)
	}

	if !cfg.Watch.Enabled {
		t.Error("expected watch to be enabled by default")
	}
	if cfg.Watch.Debounce != 300*time.Millisecond {
		t.Errorf("expected debounce 300ms, got %v", cfg.Watch.Debounce)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1280
  height: 720
  title: "custom viewer"

viewer:
  mode: wireframe
  sensitivity: 0.02
  fit_margin: 0.75

watch:
  enabled: false
  debounce: 500ms

logging:
  level: debug
  log_file: viewer.log
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window size not loaded: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "custom viewer" {
		t.Errorf("title not loaded: %s", cfg.Window.Title)
	}
	if cfg.Viewer.Mode != "wireframe" {
		t.Errorf("mode not loaded: %s", cfg.Viewer.Mode)
	}
	if cfg.Viewer.Sensitivity != 0.02 {
		t.Errorf("sensitivity not loaded: %f", cfg.Viewer.Sensitivity)
	}
	if cfg.Watch.Enabled {
		t.Error("watch.enabled not loaded")
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("debounce not loaded: %v", cfg.Watch.Debounce)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("viewer:\n  mode: wireframe\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.Mode != "wireframe" {
		t.Errorf("override lost: %s", cfg.Viewer.Mode)
	}
	if cfg.Window.Width != 900 {
		t.Errorf("default lost: %d", cfg.Window.Width)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("window: ["), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
