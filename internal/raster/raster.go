// Package raster implements the per-triangle scanner: screen-space AABB
// scan, edge-function point-in-triangle test, and the top-left tie-break
// that assigns each shared-edge pixel to exactly one triangle.
//
// This is the hot path. Work does no allocation in the inner loop and
// appends into a caller-owned slice so the backing array survives across
// triangles.
package raster

import (
	"github.com/chewxy/math32"

	"softraster/internal/mathutil"
)

// Result is one covered pixel: its integer coordinate and raw (non
// perspective-corrected) barycentric weights.
type Result struct {
	X, Y uint32
	Bary [3]float32
}

// Rasterizer scans a single triangle against a caller-owned output slice.
type Rasterizer struct{}

// edge computes (a.x-c.x)(b.y-c.y) - (b.x-c.x)(a.y-c.y), twice the signed
// area of triangle (a,b,c). Its sign at a query point tells which side of
// edge ab the point lies on.
func edge(a, b, c mathutil.Vec2) float32 {
	return (a[0]-c[0])*(b[1]-c[1]) - (b[0]-c[0])*(a[1]-c[1])
}

// IsCCW reports whether (v1-v0) × (v2-v0) > 0 using the z-component of the
// 2D cross product. With screen y growing downward, counter-clockwise
// winding is front-facing; the shader culls triangles failing this.
func IsCCW(v0, v1, v2 mathutil.Vec2) bool {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return e1[0]*e2[1]-e1[1]*e2[0] > 0
}

// isTopOrLeft implements the top-left rule from the edge direction alone,
// never from float equality against the line equation. An edge from a to b
// owns an exactly-zero pixel if it is a top edge (horizontal, going left)
// or a left edge (non-horizontal, going downward in screen space, y
// increasing downward).
func isTopOrLeft(a, b mathutil.Vec2) bool {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	isTop := dy == 0 && dx < 0
	isLeft := dy > 0
	return isTop || isLeft
}

func minMax3(a, b, c float32) (min, max float32) {
	min, max = a, a
	if b < min {
		min = b
	}
	if b > max {
		max = b
	}
	if c < min {
		min = c
	}
	if c > max {
		max = c
	}
	return
}

// Work rasterizes the triangle (v0,v1,v2) against the screen-rect domain
// (w,h), appending one Result per covered pixel to *out. *out is reset to
// length 0 at entry so the caller can reuse the backing array across
// triangles.
//
// Degenerate (zero-area) triangles produce no output.
func (r *Rasterizer) Work(v0, v1, v2 mathutil.Vec2, w, h int, out *[]Result) {
	*out = (*out)[:0]

	area := edge(v0, v1, v2)
	if area == 0 {
		return
	}

	minXf, maxXf := minMax3(v0[0], v1[0], v2[0])
	minYf, maxYf := minMax3(v0[1], v1[1], v2[1])

	if minXf < 0 {
		minXf = 0
	}
	if minYf < 0 {
		minYf = 0
	}
	if maxXf > float32(w) {
		maxXf = float32(w)
	}
	if maxYf > float32(h) {
		maxYf = float32(h)
	}

	// Floor the min but ceil the max: a fractional upper bound still covers
	// the pixel whose center lies just below it.
	xmin, xmax := int(minXf), int(math32.Ceil(maxXf))
	ymin, ymax := int(minYf), int(math32.Ceil(maxYf))
	if xmin >= xmax || ymin >= ymax {
		return
	}

	invArea := 1 / area

	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			p := mathutil.Vec2{float32(x) + 0.5, float32(y) + 0.5}

			e0 := edge(v1, v2, p)
			e1 := edge(v2, v0, p)
			e2 := edge(v0, v1, p)

			if !inside(e0, e1, e2) {
				continue
			}
			if e0 == 0 && !isTopOrLeft(v1, v2) {
				continue
			}
			if e1 == 0 && !isTopOrLeft(v2, v0) {
				continue
			}
			if e2 == 0 && !isTopOrLeft(v0, v1) {
				continue
			}

			*out = append(*out, Result{
				X:    uint32(x),
				Y:    uint32(y),
				Bary: [3]float32{e0 * invArea, e1 * invArea, e2 * invArea},
			})
		}
	}
}

// inside reports sign consistency of the three edge values: a pixel is in
// the triangle unless e0,e1,e2 contain both a strictly-negative and a
// strictly-positive value. Zeros (on-edge pixels) count as inside here;
// the top-left rule then decides ownership.
func inside(e0, e1, e2 float32) bool {
	hasNeg := e0 < 0 || e1 < 0 || e2 < 0
	hasPos := e0 > 0 || e1 > 0 || e2 > 0
	return !(hasNeg && hasPos)
}
