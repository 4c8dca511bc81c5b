package raster

import "obj-rasterizer/internal/mathutil"

// Viewport is the pixel size of the projection target.
type Viewport struct {
	Width  int
	Height int
}

// WorldToScreen maps x/y from [-1,1] to [0,W]×[0,H] with a half-pixel
// offset; z passes through as the depth key. Nothing is clipped.
func (vp Viewport) WorldToScreen(v mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{
		(v[0]+1)*float64(vp.Width)/2 + 0.5,
		(v[1]+1)*float64(vp.Height)/2 + 0.5,
		v[2],
	}
}
