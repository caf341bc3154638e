package mathutil

import "testing"

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-5
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v, want {5,7,9}", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v, want {3,3,3}", got)
	}
}

func TestVec3Scale(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got := v.Scale(2); got != (Vec3{2, -4, 6}) {
		t.Errorf("Scale(2) = %v, want {2,-4,6}", got)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot of perpendicular vectors = %v, want 0", got)
	}
	if got := a.Dot(a); got != 1 {
		t.Errorf("Dot of unit vector with itself = %v, want 1", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	if !almostEqual(got[0], 0) || !almostEqual(got[1], 0) || !almostEqual(got[2], 1) {
		t.Errorf("X cross Y = %v, want {0,0,1}", got)
	}
}

func TestVec3LenNormalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Len(); !almostEqual(got, 5) {
		t.Errorf("Len({3,4,0}) = %v, want 5", got)
	}

	n := v.Normalize()
	if !almostEqual(n.Len(), 1) {
		t.Errorf("Normalize().Len() = %v, want 1", n.Len())
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	v := Vec3{0, 0, 0}
	if got := v.Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero vector (no NaN)", got)
	}
}

func TestVec4Add(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}
	if got := a.Add(b); got != (Vec4{5, 5, 5, 5}) {
		t.Errorf("Vec4.Add = %v, want {5,5,5,5}", got)
	}
}

func TestVec4XYZ(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	if got := v.XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ() = %v, want {1,2,3}", got)
	}
}

func TestVec2AddSubScale(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Vec2.Add = %v, want {4,6}", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Errorf("Vec2.Sub = %v, want {2,2}", got)
	}
	if got := a.Scale(3); got != (Vec2{3, 6}) {
		t.Errorf("Vec2.Scale(3) = %v, want {3,6}", got)
	}
}
