// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ViewerConfig holds presentation tuning for the render pipeline.
// Sensitivity converts drag pixels to radians; FitMargin is the share
// of the viewport the fitted mesh may occupy.
type ViewerConfig struct {
	Mode        string  `yaml:"mode"`
	Sensitivity float64 `yaml:"sensitivity"`
	FitMargin   float64 `yaml:"fit_margin"`
}

// WatchConfig holds auto-reload settings
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  900,
			Height: 900,
			Title:  "meshview",
		},
		Viewer: ViewerConfig{
			Mode:        "filled",
			Sensitivity: 0.01,
			FitMargin:   0.9,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
