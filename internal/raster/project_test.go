package raster

import (
	"math"
	"testing"

	"obj-rasterizer/internal/mathutil"
)

func TestWorldToScreen(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	tests := []struct {
		name string
		in   mathutil.Vec3
		want mathutil.Vec3
	}{
		{"bottom-left", mathutil.Vec3{-1, -1, 0.25}, mathutil.Vec3{0.5, 0.5, 0.25}},
		{"top-right", mathutil.Vec3{1, 1, -3}, mathutil.Vec3{800.5, 600.5, -3}},
		{"center", mathutil.Vec3{0, 0, 7}, mathutil.Vec3{400.5, 300.5, 7}},
		{"outside", mathutil.Vec3{2, -3, 0}, mathutil.Vec3{1200.5, -599.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vp.WorldToScreen(tt.in)
			for k := 0; k < 3; k++ {
				if math.Abs(got[k]-tt.want[k]) > 1e-9 {
					t.Errorf("WorldToScreen(%v) = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestRenderContext_Viewport(t *testing.T) {
	rc := NewRenderContext(64, 32, bg)
	if vp := rc.Viewport(); vp.Width != 64 || vp.Height != 32 {
		t.Errorf("Viewport = %+v", vp)
	}
	if got := rc.Depth.At(63, 31); !math.IsInf(got, -1) {
		t.Errorf("fresh depth = %v, want -Inf", got)
	}
}
