package raster

import (
	"context"
	"image"
	"image/color"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"obj-rasterizer/internal/logging"
	"obj-rasterizer/internal/mathutil"
	"obj-rasterizer/internal/mesh"
)

// MeshSource is the read-only view of a mesh that Render needs.
type MeshSource interface {
	FaceCount() int
	Face(i int) mesh.Face
	Vertex(i int) mathutil.Vec3
}

// Options controls a render pass.
type Options struct {
	// Light is the direction used for Lambertian intensity. It should be
	// unit length; intensities above 1 saturate.
	Light mathutil.Vec3

	// Rotation orients model-space vertices before shading and projection.
	// Nil leaves them untouched.
	Rotation *mathutil.Mat3

	// Fit recenters and uniformly rescales the (rotated) mesh so its x/y
	// extent fills the view, leaving FitMargin of the half-width free.
	Fit       bool
	FitMargin float64

	// Wireframe draws every face outline in WireColor instead of filling.
	Wireframe bool
	WireColor color.NRGBA

	// Workers > 1 splits the canvas into that many row bands rendered
	// concurrently.
	Workers int
}

// DefaultOptions returns a sequential, filled pass lit from DefaultLightDir.
func DefaultOptions() Options {
	return Options{
		Light:     DefaultLightDir,
		FitMargin: 0.05,
		WireColor: color.NRGBA{255, 255, 255, 255},
		Workers:   1,
	}
}

// Stats summarizes one render pass.
type Stats struct {
	Faces  int // faces in the mesh
	Culled int // faces skipped by shading (unlit or degenerate normal)
	Drawn  int // faces handed to the rasterizer
	Pixels int // pixels that won the depth test
}

// shadedFace is a face ready to rasterize.
type shadedFace struct {
	tri Triangle
	col color.NRGBA
}

// checkEvery is how many faces are rasterized between cancellation checks.
const checkEvery = 256

// Render shades every face of m and rasterizes the lit ones into rc. The
// canvas stays in raster orientation; call rc.Finish when all drawing is done.
//
// The final color at each pixel belongs to the covering face with the
// largest interpolated depth, independent of face order and of Workers.
func Render(ctx context.Context, rc *RenderContext, m MeshSource, opts Options) (Stats, error) {
	st := Stats{Faces: m.FaceCount()}
	vp := rc.Viewport()
	xf := newTransform(m, opts)

	if opts.Wireframe {
		for i := 0; i < st.Faces; i++ {
			if i%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return st, err
				}
			}
			drawWireFace(rc, vp, faceVertices(m, i, xf), opts.WireColor)
			st.Drawn++
		}
		logging.Logger().Debug("wireframe pass", "faces", st.Faces)
		return st, nil
	}

	faces := make([]shadedFace, 0, st.Faces)
	for i := 0; i < st.Faces; i++ {
		world := faceVertices(m, i, xf)
		col, _, ok := FaceShade(world, opts.Light)
		if !ok {
			st.Culled++
			continue
		}
		var tri Triangle
		for j, v := range world {
			tri[j] = vp.WorldToScreen(v)
		}
		faces = append(faces, shadedFace{tri: tri, col: col})
	}
	st.Drawn = len(faces)

	pixels, err := rasterize(ctx, rc, faces, opts.Workers)
	st.Pixels = pixels
	if err != nil {
		return st, err
	}

	logging.Logger().Debug("render pass",
		"faces", st.Faces, "culled", st.Culled, "drawn", st.Drawn, "pixels", st.Pixels, "workers", opts.Workers)
	return st, nil
}

// transform maps model space to world space: optional rotation, then
// optional fit.
type transform struct {
	rot    *mathutil.Mat3
	center mathutil.Vec3
	scale  float64 // 0 disables the fit
}

func (xf transform) apply(v mathutil.Vec3) mathutil.Vec3 {
	if xf.rot != nil {
		v = xf.rot.MulVec3(v)
	}
	if xf.scale != 0 {
		v = v.Sub(xf.center).Scale(xf.scale)
	}
	return v
}

func newTransform(m MeshSource, opts Options) transform {
	xf := transform{rot: opts.Rotation}
	if !opts.Fit || m.FaceCount() == 0 {
		return xf
	}

	lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < m.FaceCount(); i++ {
		for _, v := range faceVertices(m, i, xf) {
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], v[k])
				hi[k] = math.Max(hi[k], v[k])
			}
		}
	}

	span := math.Max(hi[0]-lo[0], hi[1]-lo[1]) / 2
	if span < 1e-9 {
		span = 1e-9
	}
	xf.center = lo.Add(hi).Scale(0.5)
	xf.scale = (1 - opts.FitMargin) / span
	return xf
}

func faceVertices(m MeshSource, i int, xf transform) [3]mathutil.Vec3 {
	f := m.Face(i)
	var world [3]mathutil.Vec3
	for j, vi := range f {
		world[j] = xf.apply(m.Vertex(vi))
	}
	return world
}

func drawWireFace(rc *RenderContext, vp Viewport, world [3]mathutil.Vec3, col color.NRGBA) {
	var pts [3]mathutil.Vec2i
	for j, v := range world {
		s := vp.WorldToScreen(v)
		pts[j] = mathutil.Vec2i{int(s[0]), int(s[1])}
	}
	for j := 0; j < 3; j++ {
		DrawLine(rc.Canvas, pts[j], pts[(j+1)%3], col)
	}
}

// rasterize draws faces in order. With workers > 1 each goroutine owns a
// band of rows and walks the full face list clipped to it, so no pixel is
// shared between goroutines.
func rasterize(ctx context.Context, rc *RenderContext, faces []shadedFace, workers int) (int, error) {
	w, h := rc.Canvas.Width, rc.Canvas.Height
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		return rasterizeBand(ctx, rc, faces, image.Rect(0, 0, w, h))
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	rows := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += rows {
		band := image.Rect(0, y0, w, min(y0+rows, h))
		g.Go(func() error {
			n, err := rasterizeBand(gctx, rc, faces, band)
			total.Add(int64(n))
			return err
		})
	}
	err := g.Wait()
	return int(total.Load()), err
}

func rasterizeBand(ctx context.Context, rc *RenderContext, faces []shadedFace, band image.Rectangle) (int, error) {
	n := 0
	for i, f := range faces {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
		n += drawTriangleIn(rc, f.tri, f.col, band)
	}
	return n, nil
}
