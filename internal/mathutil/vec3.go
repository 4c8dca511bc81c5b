package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Components are addressable by index or through X/Y/Z.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// XY drops the z component.
func (v Vec3) XY() Vec2 { return Vec2{v[0], v[1]} }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a × b, oriented by the right-hand rule.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm is the Euclidean length.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize rescales v to unit length.
func (v Vec3) Normalize() Vec3 {
	return v.NormalizeTo(1)
}

// NormalizeTo rescales v to the given length. The caller must ensure
// v.Norm() != 0; a zero vector yields NaN components.
func (v Vec3) NormalizeTo(length float64) Vec3 {
	return v.Scale(length / v.Norm())
}
