package raster

import (
	"image"
	"image/color"
	"math"

	"obj-rasterizer/internal/mathutil"
)

// Triangle is one face in screen space: x, y in pixels, z the depth key.
type Triangle [3]mathutil.Vec3

// edge is cross(b-a, p-a).z, the edge function of a→b evaluated at p.
func edge(a, b mathutil.Vec3, p mathutil.Vec2) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// Orientation returns cross(P1-P0, P2-P0).z, twice the signed area.
// Its sign gives the winding; zero means the triangle is degenerate.
func Orientation(t Triangle) float64 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Z()
}

// weights returns the unnormalized barycentric weights of p: the edge
// functions of the edges opposite P0, P1 and P2. They sum to Orientation(t).
func weights(p mathutil.Vec2, t Triangle) (w0, w1, w2 float64) {
	return edge(t[1], t[2], p), edge(t[2], t[0], p), edge(t[0], t[1], p)
}

// sameSign reports whether all three weights are strictly on the side given
// by area. Samples exactly on an edge are outside, and area == 0 rejects
// everything.
func sameSign(area, w0, w1, w2 float64) bool {
	if area > 0 {
		return w0 > 0 && w1 > 0 && w2 > 0
	}
	if area < 0 {
		return w0 < 0 && w1 < 0 && w2 < 0
	}
	return false
}

// Inside reports whether p lies strictly inside t, for either winding.
func Inside(p mathutil.Vec2, t Triangle) bool {
	w0, w1, w2 := weights(p, t)
	return sameSign(Orientation(t), w0, w1, w2)
}

// Barycentric returns (α, β, γ) with p = α·P0 + β·P1 + γ·P2 in x/y.
// ok is false for a zero-area triangle.
func Barycentric(p mathutil.Vec2, t Triangle) (w mathutil.Vec3, ok bool) {
	area := Orientation(t)
	if area == 0 {
		return mathutil.Vec3{}, false
	}
	w0, w1, w2 := weights(p, t)
	return mathutil.Vec3{w0 / area, w1 / area, w2 / area}, true
}

// BoundingBox returns the pixels to scan for t: floor of the minimum to ceil
// of the maximum on each axis, clamped to the w×h canvas. The result is
// half-open and may be empty.
func BoundingBox(t Triangle, w, h int) image.Rectangle {
	minX := math.Min(math.Min(t[0][0], t[1][0]), t[2][0])
	maxX := math.Max(math.Max(t[0][0], t[1][0]), t[2][0])
	minY := math.Min(math.Min(t[0][1], t[1][1]), t[2][1])
	maxY := math.Max(math.Max(t[0][1], t[1][1]), t[2][1])

	r := image.Rectangle{
		Min: image.Pt(int(math.Floor(math.Max(0, minX))), int(math.Floor(math.Max(0, minY)))),
		Max: image.Pt(int(math.Ceil(math.Min(float64(w-1), maxX)))+1, int(math.Ceil(math.Min(float64(h-1), maxY)))+1),
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// DrawTriangle fills t with col, keeping only fragments closer than what the
// depth buffer already holds. It returns the number of pixels written.
func DrawTriangle(rc *RenderContext, t Triangle, col color.NRGBA) int {
	return drawTriangleIn(rc, t, col, image.Rect(0, 0, rc.Canvas.Width, rc.Canvas.Height))
}

// drawTriangleIn is DrawTriangle restricted to the pixels of clip. Disjoint
// clips touch disjoint pixels, so they may run concurrently. Canvas and depth
// buffer are indexed with their own strides and the scan stays inside both.
//
// This is the hot path: no allocation inside the pixel loop.
func drawTriangleIn(rc *RenderContext, t Triangle, col color.NRGBA, clip image.Rectangle) int {
	area := Orientation(t)
	if area == 0 {
		// Same outcome as the strict edge tests; skips the scan.
		return 0
	}

	box := BoundingBox(t, rc.Canvas.Width, rc.Canvas.Height).
		Intersect(clip).
		Intersect(image.Rect(0, 0, rc.Depth.Width, rc.Depth.Height))
	if box.Empty() {
		return 0
	}

	invArea := 1.0 / area
	z0, z1, z2 := t[0][2], t[1][2], t[2][2]
	zbuf, zStride := rc.Depth.Z, rc.Depth.Width
	pix, pixStride := rc.Canvas.Pix, rc.Canvas.Width*4

	n := 0
	for y := box.Min.Y; y < box.Max.Y; y++ {
		zRow := y * zStride
		pixRow := y * pixStride
		for x := box.Min.X; x < box.Max.X; x++ {
			p := mathutil.Vec2{float64(x) + 0.5, float64(y) + 0.5}
			w0, w1, w2 := weights(p, t)
			if !sameSign(area, w0, w1, w2) {
				continue
			}

			z := (w0*z0 + w1*z1 + w2*z2) * invArea
			zIdx := zRow + x
			if z <= zbuf[zIdx] {
				continue
			}
			zbuf[zIdx] = z

			pxIdx := pixRow + x*4
			pix[pxIdx] = col.R
			pix[pxIdx+1] = col.G
			pix[pxIdx+2] = col.B
			pix[pxIdx+3] = col.A
			n++
		}
	}
	return n
}
