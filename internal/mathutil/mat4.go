package mathutil

import "github.com/chewxy/math32"

// Mat4 is a 4×4 matrix stored row-major.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulVec4 returns M × v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a 3D point (w=1) and returns the full Vec4 result,
// i.e. q = M · (p, 1) — the form shader.Draw needs before perspective divide.
func (m Mat4) MulPoint(p Vec3) Vec4 {
	return m.MulVec4(Vec4{p[0], p[1], p[2], 1})
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and a
// translation vector.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Perspective builds a right-handed zero-to-one-depth projection matrix:
// near maps to z=0, far maps to z=1.
func Perspective(fovYRadians, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovYRadians/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far * nf, far * near * nf,
		0, 0, -1, 0,
	}
}

// LookAt builds a view matrix placing the camera at eye, looking toward
// center, with the given up vector.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// IsIdentity reports whether m is approximately the identity matrix.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := range m {
		d := m[i] - id[i]
		if d > 1e-6 || d < -1e-6 {
			return false
		}
	}
	return true
}
