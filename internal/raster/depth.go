package raster

import "math"

// DepthBuffer holds one depth per pixel, initialized to -Inf so that any
// fragment wins the first comparison. Larger z is closer.
type DepthBuffer struct {
	Width  int
	Height int
	Z      []float64 // len = W*H, row-major
}

// NewDepthBuffer allocates a -Inf depth buffer.
func NewDepthBuffer(w, h int) *DepthBuffer {
	z := make([]float64, w*h)
	for i := range z {
		z[i] = math.Inf(-1)
	}
	return &DepthBuffer{
		Width:  w,
		Height: h,
		Z:      z,
	}
}

// At returns the stored depth at (x, y).
func (d *DepthBuffer) At(x, y int) float64 {
	return d.Z[y*d.Width+x]
}
