package raster

import (
	"image/color"

	"obj-rasterizer/internal/mathutil"
)

// DefaultLightDir points into the screen, so faces whose normal (by the
// edge order below) points at -z are lit.
var DefaultLightDir = mathutil.Vec3{0, 0, -1}

// minNormal is the norm below which a face normal is treated as zero.
const minNormal = 1e-12

// FaceNormal returns cross(v2-v0, v1-v0) for world-space vertices. The
// edge order fixes the normal's side relative to the winding. Not normalized.
func FaceNormal(world [3]mathutil.Vec3) mathutil.Vec3 {
	return world[2].Sub(world[0]).Cross(world[1].Sub(world[0]))
}

// FaceShade computes the flat Lambertian color of a face. ok is false when
// the face is degenerate (zero or NaN normal) or faces away from the light,
// in which case it must not be rasterized.
func FaceShade(world [3]mathutil.Vec3, light mathutil.Vec3) (col color.NRGBA, intensity float64, ok bool) {
	n := FaceNormal(world)
	if !(n.Norm() >= minNormal) {
		return color.NRGBA{}, 0, false
	}
	intensity = n.Normalize().Dot(light)
	if !(intensity > 0) {
		return color.NRGBA{}, intensity, false
	}
	g := clamp255(intensity * 255)
	return color.NRGBA{g, g, g, 255}, intensity, true
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
