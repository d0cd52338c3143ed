package main

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/spf13/cobra"

	"meshview/pkg/mesh"
	"meshview/pkg/viewer"
)

var (
	renderPitch  float64
	renderYaw    float64
	renderMode   string
	renderWidth  int
	renderHeight int
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a mesh to an image file without opening a window",
	Long:  "Rotate the mesh by the given pitch and yaw angles and write the projected view to a PNG or WebP file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64Var(&renderPitch, "pitch", 20, "rotation about the x-axis in degrees")
	renderCmd.Flags().Float64Var(&renderYaw, "yaw", 30, "rotation about the y-axis in degrees")
	renderCmd.Flags().StringVar(&renderMode, "mode", "wireframe", "render mode (wireframe or filled)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 800, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 800, "image height in pixels")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "mesh.png", "output file (.png or .webp)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	mode, err := viewer.ParseMode(renderMode)
	if err != nil {
		return err
	}

	m, err := mesh.Parse(args[0])
	if err != nil {
		return err
	}
	m = m.Centered()

	state := viewer.RotationState{
		Pitch: renderPitch * math.Pi / 180,
		Yaw:   renderYaw * math.Pi / 180,
	}
	projection := viewer.FitProjection(
		m.MaxRadius(),
		float64(renderWidth), float64(renderHeight),
		viewer.DefaultFitMargin,
	)

	sink := viewer.NewImageSink(renderWidth, renderHeight)
	frame := viewer.BuildFrame(m, state, projection, mode)
	if err := sink.RenderFrame(frame); err != nil {
		return err
	}

	out, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(renderOut)) {
	case ".webp":
		err = nativewebp.Encode(out, sink.Image(), nil)
	case ".png":
		err = png.Encode(out, sink.Image())
	default:
		return fmt.Errorf("unsupported output format %q (want .png or .webp)", filepath.Ext(renderOut))
	}
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	fmt.Printf("Rendered %s (%s, %d primitives) to %s\n",
		args[0], mode, frame.PrimitiveCount(), renderOut)
	return nil
}
