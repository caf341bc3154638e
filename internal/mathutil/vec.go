// Package mathutil implements the vector/matrix math the rasterizer needs:
// Vec2/Vec3/Vec4 and Mat3/Mat4, float32 throughout, value types with no
// heap allocation.
package mathutil

import "github.com/chewxy/math32"

// Vec2 is a 2-component vector.
type Vec2 [2]float32

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a[0] + b[0], a[1] + b[1]} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a[0] - b[0], a[1] - b[1]} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Vec3 is a 3-component vector.
type Vec3 [3]float32

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Vec4 is a 4-component vector, used for homogeneous (mvp · point) math.
type Vec4 [4]float32

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// XYZ returns the first three components.
func (v Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }
