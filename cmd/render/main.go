package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"obj-rasterizer/internal/batch"
	"obj-rasterizer/internal/canvas"
	"obj-rasterizer/internal/config"
	"obj-rasterizer/internal/logging"
	"obj-rasterizer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("o", "", "Output image path (default: output.tga); format from extension: "+strings.Join(canvas.Formats(), " "))
	outputDir := flag.String("outdir", "", "Output directory when rendering a directory of meshes (default: renders)")
	format := flag.String("format", "", "Image extension for directory renders (default: .tga)")
	width := flag.Int("width", 0, "Image width in pixels (default: 800)")
	height := flag.Int("height", 0, "Image height in pixels (default: 800)")
	workers := flag.Int("workers", 0, "Row bands rendered concurrently per image (default: 1)")
	jobs := flag.Int("jobs", 0, "Meshes rendered concurrently in directory mode (default: NumCPU)")
	fit := flag.Bool("fit", false, "Recenter and scale the mesh to fill the image")
	wireframe := flag.Bool("wireframe", false, "Draw face outlines instead of shaded faces")
	label := flag.Bool("label", false, "Stamp mesh name and counts onto the image")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [mesh.obj | dir]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:    *output,
		OutputDir: *outputDir,
		Format:    *format,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
		Jobs:      *jobs,
		Fit:       *fit,
		Wireframe: *wireframe,
		Label:     *label,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meshPath := config.DefaultMeshPath
	if flag.NArg() > 0 {
		meshPath = flag.Arg(0)
	}

	opts := raster.DefaultOptions()
	opts.Light = cfg.Light()
	opts.Rotation = cfg.Rotation()
	opts.Fit = cfg.Fit
	opts.Wireframe = cfg.Wireframe
	opts.Workers = cfg.Workers

	batchCfg := batch.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.BackgroundColor(),
		Options:    opts,
		Label:      cfg.Label,
		Jobs:       cfg.Jobs,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info, err := os.Stat(meshPath)
	if err == nil && info.IsDir() {
		os.Exit(renderDir(ctx, batchCfg, meshPath, cfg))
	}

	batchCfg.Loaded = func(_ batch.Job, vertices, faces int) {
		fmt.Fprintf(os.Stderr, "# v# %d f# %d\n", vertices, faces)
	}

	start := time.Now()
	res := batch.Process(ctx, batchCfg, batch.Job{MeshPath: meshPath, OutPath: cfg.Output})
	if !res.Success {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %s\n", meshPath, res.Error)
		os.Exit(1)
	}

	fmt.Printf("Drawn %d faces (%d culled), %d pixels in %.2fs\n",
		res.Stats.Drawn, res.Stats.Culled, res.Stats.Pixels, time.Since(start).Seconds())
	fmt.Printf("Output: %s\n", res.OutPath)
}

func renderDir(ctx context.Context, batchCfg batch.Config, dir string, cfg config.Config) int {
	jobs, err := batch.Discover(dir, cfg.OutputDir, cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(jobs) == 0 {
		fmt.Println("No meshes to render.")
		return 0
	}

	fmt.Printf("OBJ rasterizer → %s\n", cfg.Format)
	fmt.Printf("Meshes: %d, Jobs: %d, Size: %dx%d\n", len(jobs), batchCfg.Jobs, cfg.Width, cfg.Height)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(ctx, batchCfg, jobs)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
