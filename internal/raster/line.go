package raster

import (
	"image/color"

	"obj-rasterizer/internal/canvas"
	"obj-rasterizer/internal/mathutil"
)

// DrawLine draws the segment a–b inclusive with integer error stepping.
// Steep lines are walked along y so the stroke has no gaps.
func DrawLine(c *canvas.Canvas, a, b mathutil.Vec2i, col color.NRGBA) {
	x0, y0, x1, y1 := a[0], a[1], b[0], b[1]

	d := b.Sub(a)
	steep := abs(d.Y()) > abs(d.X())
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	errAcc := dx / 2
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			c.Set(y, x, col)
		} else {
			c.Set(x, y, col)
		}
		errAcc -= dy
		if errAcc < 0 {
			y += ystep
			errAcc += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
