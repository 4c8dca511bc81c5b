package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"obj-rasterizer/internal/config"
	"obj-rasterizer/internal/mesh"
	"obj-rasterizer/internal/preview"
	"obj-rasterizer/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width in pixels (default: 800)")
	height := flag.Int("height", 0, "Image height in pixels (default: 800)")
	fit := flag.Bool("fit", false, "Recenter and scale the mesh to fill the image")
	wireframe := flag.Bool("wireframe", false, "Draw face outlines instead of shaded faces")
	zoom := flag.Int("zoom", 1, "Window scale factor")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Fit: *fit, Wireframe: *wireframe})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meshPath := config.DefaultMeshPath
	if flag.NArg() > 0 {
		meshPath = flag.Arg(0)
	}

	m, err := mesh.Load(meshPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := raster.DefaultOptions()
	opts.Light = cfg.Light()
	opts.Rotation = cfg.Rotation()
	opts.Fit = cfg.Fit
	opts.Wireframe = cfg.Wireframe
	opts.Workers = cfg.Workers

	rc := raster.NewRenderContext(cfg.Width, cfg.Height, cfg.BackgroundColor())
	if _, err := raster.Render(context.Background(), rc, m, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rc.Finish()

	if err := preview.Show(rc.Canvas.Image(), meshPath, *zoom); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
