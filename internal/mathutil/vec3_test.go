package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol && math.Abs(a[1]-b[1]) <= tol && math.Abs(a[2]-b[2]) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"scale", a.Scale(2), Vec3{2, 4, 6}},
		{"cross", a.Cross(b), Vec3{27, 6, -13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.want, eps) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	// Operands are values; nothing above may have changed them.
	if a != (Vec3{1, 2, 3}) || b != (Vec3{4, -5, 6}) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVec3_Dot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, -5, 6}); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3_CrossRightHanded(t *testing.T) {
	x, y, z := Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}
	if got := x.Cross(y); got != z {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(x); got != z.Scale(-1) {
		t.Errorf("y × x = %v, want %v", got, z.Scale(-1))
	}

	a, b := Vec3{0.3, -1.2, 2}, Vec3{5, 0.5, -0.25}
	c := a.Cross(b)
	if d := c.Dot(a); math.Abs(d) > eps {
		t.Errorf("cross not orthogonal to a: dot = %v", d)
	}
	if d := c.Dot(b); math.Abs(d) > eps {
		t.Errorf("cross not orthogonal to b: dot = %v", d)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	if got := v.Norm(); got != 5 {
		t.Fatalf("Norm = %v, want 5", got)
	}
	if got := v.Normalize(); !vecNear(got, Vec3{0.6, 0, 0.8}, eps) {
		t.Errorf("Normalize = %v", got)
	}
	if got := v.NormalizeTo(10).Norm(); math.Abs(got-10) > eps {
		t.Errorf("NormalizeTo(10).Norm() = %v", got)
	}
}

func TestVec3_Accessors(t *testing.T) {
	v := Vec3{7, 8, 9}
	if v.X() != 7 || v.Y() != 8 || v.Z() != 9 {
		t.Errorf("accessors = %v %v %v", v.X(), v.Y(), v.Z())
	}
	if v.XY() != (Vec2{7, 8}) {
		t.Errorf("XY = %v", v.XY())
	}
}

func TestVec2_AliasesShareStorage(t *testing.T) {
	v := Vec2{1.5, -2}
	if v.U() != v.X() || v.V() != v.Y() {
		t.Errorf("u/v do not alias x/y: %v", v)
	}
	if got := (Vec2{1, 0}).Cross(Vec2{0, 1}); got != 1 {
		t.Errorf("2D cross = %v, want 1", got)
	}

	p := Vec2i{3, 4}
	if p.U() != 3 || p.V() != 4 {
		t.Errorf("Vec2i aliases = %d %d", p.U(), p.V())
	}
	if got := p.Add(Vec2i{1, 1}).Sub(Vec2i{2, 2}); got != (Vec2i{2, 3}) {
		t.Errorf("Vec2i add/sub = %v", got)
	}
	if got := p.Scale(2); got != (Vec2i{6, 8}) {
		t.Errorf("Vec2i scale = %v", got)
	}
}

func TestEulerXYZ(t *testing.T) {
	if m := EulerXYZ(Vec3{}); !vecNear(m.MulVec3(Vec3{1, 2, 3}), Vec3{1, 2, 3}, eps) {
		t.Errorf("zero rotation is not identity: %v", m)
	}

	// 90° about Y maps +x onto -z.
	got := EulerXYZ(Vec3{0, 90, 0}).MulVec3(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("Ry(90)·x = %v, want (0,0,-1)", got)
	}

	// x is applied before z.
	got = EulerXYZ(Vec3{90, 0, 90}).MulVec3(Vec3{0, 1, 0})
	want := RotZ(Deg2Rad(90)).MulVec3(RotX(Deg2Rad(90)).MulVec3(Vec3{0, 1, 0}))
	if !vecNear(got, want, 1e-12) {
		t.Errorf("EulerXYZ order: got %v, want %v", got, want)
	}
}
