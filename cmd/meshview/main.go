package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meshview/internal/app"
	"meshview/internal/config"
	"meshview/internal/logger"
	"meshview/version"
)

var (
	flagConfig    string
	flagWireframe bool
	flagWidth     int
	flagHeight    int
	flagNoWatch   bool
)

var rootCmd = &cobra.Command{
	Use:   "meshview [file]",
	Short: "Interactive viewer for indexed triangle meshes",
	Long: `meshview displays a triangle mesh from a simple text format and lets
you rotate it by dragging with the mouse. Without a file argument it
shows a bundled sample cube.

Keys: drag rotates, scroll zooms, 'w' toggles wireframe/filled,
'r' resets the view, 'q' quits.`,
	Version: version.GetVersion(),
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)

		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		defer logger.Sync()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		// Load errors carry the offending line; cobra prints them on stderr
		cmd.SilenceUsage = true
		return app.Run(path, cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagWireframe, "wireframe", false, "start in wireframe mode")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "window height")
	rootCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "disable auto-reload on file change")
}

// applyFlags layers CLI overrides on top of the loaded config
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagWireframe {
		cfg.Viewer.Mode = "wireframe"
	}
	if flagWidth > 0 {
		cfg.Window.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Window.Height = flagHeight
	}
	if flagNoWatch {
		cfg.Watch.Enabled = false
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
