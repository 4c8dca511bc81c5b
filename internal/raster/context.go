package raster

import (
	"image/color"

	"obj-rasterizer/internal/canvas"
)

// RenderContext owns the buffers shared by every triangle of one render pass.
type RenderContext struct {
	Canvas *canvas.Canvas
	Depth  *DepthBuffer

	finished bool
}

// NewRenderContext allocates a w×h canvas filled with bg and a fresh depth buffer.
func NewRenderContext(w, h int, bg color.NRGBA) *RenderContext {
	c := canvas.New(w, h)
	c.Fill(bg)
	return &RenderContext{
		Canvas: c,
		Depth:  NewDepthBuffer(w, h),
	}
}

// Viewport returns the projection target matching the canvas size.
func (rc *RenderContext) Viewport() Viewport {
	return Viewport{Width: rc.Canvas.Width, Height: rc.Canvas.Height}
}

// Finish converts the canvas from the bottom-left raster origin to the
// top-left image origin. Only the first call flips.
func (rc *RenderContext) Finish() {
	if rc.finished {
		return
	}
	rc.Canvas.FlipVertically()
	rc.finished = true
}

// Finished reports whether Finish has run.
func (rc *RenderContext) Finished() bool { return rc.finished }
