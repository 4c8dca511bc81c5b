package mathutil

import "math"

// Vec2 is a 2-component float vector. X/Y and U/V name the same storage.
type Vec2 [2]float64

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }
func (v Vec2) U() float64 { return v[0] }
func (v Vec2) V() float64 { return v[1] }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a[0] + b[0], a[1] + b[1]} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

func (a Vec2) Dot(b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

// Cross is the z component of (a, 0) × (b, 0).
func (a Vec2) Cross(b Vec2) float64 { return a[0]*b[1] - a[1]*b[0] }

func (v Vec2) Norm() float64 { return math.Hypot(v[0], v[1]) }

// Vec2i is a 2-component integer vector, used for pixel coordinates.
type Vec2i [2]int

func (v Vec2i) X() int { return v[0] }
func (v Vec2i) Y() int { return v[1] }
func (v Vec2i) U() int { return v[0] }
func (v Vec2i) V() int { return v[1] }

func (a Vec2i) Add(b Vec2i) Vec2i { return Vec2i{a[0] + b[0], a[1] + b[1]} }
func (a Vec2i) Sub(b Vec2i) Vec2i { return Vec2i{a[0] - b[0], a[1] - b[1]} }
func (v Vec2i) Scale(s float64) Vec2i {
	return Vec2i{int(float64(v[0]) * s), int(float64(v[1]) * s)}
}
