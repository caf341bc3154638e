// Package camera implements a free-fly camera: a position plus yaw/pitch
// orientation, a view matrix derived from them, and a move operation
// relative to the camera's own facing direction.
package camera

import (
	"github.com/chewxy/math32"

	"softraster/internal/mathutil"
)

// Camera is a position and orientation expressed as yaw (rotation about
// world up) and pitch (rotation about the camera's local right axis), with
// no roll.
type Camera struct {
	Position mathutil.Vec3
	Yaw      float32 // radians, 0 faces -Z
	Pitch    float32 // radians, clamped to (-pi/2, pi/2) by the caller
}

// New returns a camera at the origin facing -Z.
func New() Camera {
	return Camera{Position: mathutil.Vec3{0, 0, 0}}
}

// forward returns the unit direction the camera faces, derived from
// Yaw/Pitch with no roll: yaw rotates about world +Y, pitch then tilts
// the result up/down about the resulting local right axis.
func (c Camera) forward() mathutil.Vec3 {
	cp := math32.Cos(c.Pitch)
	return mathutil.Vec3{
		cp * math32.Sin(c.Yaw),
		math32.Sin(c.Pitch),
		-cp * math32.Cos(c.Yaw),
	}
}

// right returns the camera's local right axis, horizontal (no roll means
// right always lies in the world XZ plane).
func (c Camera) right() mathutil.Vec3 {
	return mathutil.Vec3{math32.Cos(c.Yaw), 0, math32.Sin(c.Yaw)}
}

// ViewMatrix returns the world-to-camera matrix.
func (c Camera) ViewMatrix() mathutil.Mat4 {
	center := c.Position.Add(c.forward())
	return mathutil.LookAt(c.Position, center, mathutil.Vec3{0, 1, 0})
}

// MoveForward displaces Position by delta expressed in the camera's own
// local frame: delta[0] along right, delta[1] along world up, delta[2]
// along the camera-local +Z back vector projected onto the horizontal
// plane, so walking forward means a negative delta[2] and pitch does not
// tilt the direction of horizontal travel.
func (c *Camera) MoveForward(delta mathutil.Vec3) {
	flatBack := mathutil.Vec3{-math32.Sin(c.Yaw), 0, math32.Cos(c.Yaw)}
	right := c.right()
	up := mathutil.Vec3{0, 1, 0}

	move := right.Scale(delta[0]).
		Add(up.Scale(delta[1])).
		Add(flatBack.Scale(delta[2]))
	c.Position = c.Position.Add(move)
}
