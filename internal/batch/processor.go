package batch

import (
	"context"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"obj-rasterizer/internal/logging"
	"obj-rasterizer/internal/mesh"
	"obj-rasterizer/internal/raster"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Width      int
	Height     int
	Background color.NRGBA
	Options    raster.Options
	Label      bool
	Jobs       int // meshes rendered concurrently

	// Loaded, when set, is called with the vertex and face counts as soon
	// as a mesh has been parsed, before it is rendered. It may be called
	// concurrently from Run.
	Loaded func(job Job, vertices, faces int)
}

// Job names one mesh to render and where to write it.
type Job struct {
	MeshPath string
	OutPath  string
}

// Result holds the outcome of processing one job.
type Result struct {
	Name     string
	MeshPath string
	OutPath  string
	Vertices int
	Faces    int
	Stats    raster.Stats
	Success  bool
	Error    string
	Err      error
}

// Discover lists every .obj file under dir (recursively) as a job whose
// output mirrors the relative path under outDir with extension ext.
func Discover(dir, outDir, ext string) ([]Job, error) {
	var jobs []Job
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".obj" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+ext)
		jobs = append(jobs, Job{MeshPath: path, OutPath: out})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].MeshPath < jobs[j].MeshPath })
	return jobs, nil
}

// Run processes all jobs using a bounded worker pool. Results are in job
// order. A canceled ctx stops jobs that have not started.
func Run(ctx context.Context, cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	log := logging.Logger()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "meshes_per_sec", float64(p)/elapsed)
				}
			}
		}
	}()

	jobsLimit := cfg.Jobs
	if jobsLimit < 1 {
		jobsLimit = 1
	}
	var g errgroup.Group
	g.SetLimit(jobsLimit)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = Process(ctx, cfg, job)
			processed.Add(1)
			return nil
		})
	}
	g.Wait()
	close(done)

	return results
}

// Process renders one mesh file to one image file. Failures are reported in
// the Result, never panicked or returned.
func Process(ctx context.Context, cfg Config, job Job) Result {
	res := Result{
		Name:     strings.TrimSuffix(filepath.Base(job.MeshPath), filepath.Ext(job.MeshPath)),
		MeshPath: job.MeshPath,
		OutPath:  job.OutPath,
	}
	fail := func(err error) Result {
		res.Err = err
		res.Error = err.Error()
		logging.Logger().Warn("render failed", "mesh", job.MeshPath, "err", err)
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	m, err := mesh.Load(job.MeshPath)
	if err != nil {
		return fail(err)
	}
	res.Vertices = m.VertexCount()
	res.Faces = m.FaceCount()
	if cfg.Loaded != nil {
		cfg.Loaded(job, res.Vertices, res.Faces)
	}

	rc := raster.NewRenderContext(cfg.Width, cfg.Height, cfg.Background)
	st, err := raster.Render(ctx, rc, m, cfg.Options)
	res.Stats = st
	if err != nil {
		return fail(fmt.Errorf("batch: render %s: %w", job.MeshPath, err))
	}
	rc.Finish()

	if cfg.Label {
		text := fmt.Sprintf("%s v#%d f#%d", res.Name, res.Vertices, res.Faces)
		rc.Canvas.DrawLabel(text, 4, 4, color.NRGBA{255, 255, 0, 255})
	}

	if err := rc.Canvas.Write(job.OutPath); err != nil {
		return fail(err)
	}

	res.Success = true
	return res
}
