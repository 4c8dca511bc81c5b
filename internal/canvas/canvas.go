package canvas

import (
	"image"
	"image/color"
)

// Canvas is a row-major RGBA pixel grid. Row 0 is whichever edge the
// producer treats as the origin; FlipVertically converts between the two
// conventions.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// New allocates a transparent canvas.
func New(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// Fill paints every pixel with c.
func (c *Canvas) Fill(col color.NRGBA) {
	for i := 0; i < len(c.Pix); i += 4 {
		c.Pix[i] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
		c.Pix[i+3] = col.A
	}
}

// Set writes one pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := (y*c.Width + x) * 4
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = col.A
}

// At returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.NRGBA{}
	}
	i := (y*c.Width + x) * 4
	return color.NRGBA{c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3]}
}

// FlipVertically swaps row y with row Height-1-y in place.
func (c *Canvas) FlipVertically() {
	stride := c.Width * 4
	tmp := make([]uint8, stride)
	for top, bot := 0, c.Height-1; top < bot; top, bot = top+1, bot-1 {
		a := c.Pix[top*stride : (top+1)*stride]
		b := c.Pix[bot*stride : (bot+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Image exposes the canvas as an *image.NRGBA sharing the same pixels.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}
