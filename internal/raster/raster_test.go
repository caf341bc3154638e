package raster

import (
	"testing"

	"softraster/internal/mathutil"
)

func TestIsCCW(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 mathutil.Vec2
		want       bool
	}{
		{"ccw", mathutil.Vec2{0, 0}, mathutil.Vec2{1, 0}, mathutil.Vec2{0, 1}, true},
		{"cw", mathutil.Vec2{0, 0}, mathutil.Vec2{0, 1}, mathutil.Vec2{1, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCCW(tt.v0, tt.v1, tt.v2); got != tt.want {
				t.Errorf("IsCCW(%v,%v,%v) = %v, want %v", tt.v0, tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}

func TestWorkSmallTriangle(t *testing.T) {
	var r Rasterizer
	var out []Result

	v0 := mathutil.Vec2{2, 2}
	v1 := mathutil.Vec2{8, 2}
	v2 := mathutil.Vec2{5, 8}

	r.Work(v0, v1, v2, 10, 10, &out)

	if len(out) == 0 {
		t.Fatal("expected fragments for a triangle inside the viewport, got none")
	}

	for _, f := range out {
		if f.X > 9 || f.Y > 9 {
			t.Errorf("fragment (%d,%d) outside 10x10 viewport", f.X, f.Y)
		}
		sum := f.Bary[0] + f.Bary[1] + f.Bary[2]
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("fragment (%d,%d) barycentrics sum to %v, want ~1", f.X, f.Y, sum)
		}
	}
}

func TestWorkDegenerateTriangleProducesNoFragments(t *testing.T) {
	var r Rasterizer
	var out []Result

	// Three colinear points: zero area.
	r.Work(mathutil.Vec2{0, 0}, mathutil.Vec2{5, 5}, mathutil.Vec2{10, 10}, 20, 20, &out)

	if len(out) != 0 {
		t.Errorf("degenerate triangle produced %d fragments, want 0", len(out))
	}
}

func TestWorkClipsToScreenBounds(t *testing.T) {
	var r Rasterizer
	var out []Result

	// Triangle extends well past the right/bottom edge of a small viewport.
	r.Work(mathutil.Vec2{-5, -5}, mathutil.Vec2{50, 2}, mathutil.Vec2{2, 50}, 10, 10, &out)

	for _, f := range out {
		if f.X >= 10 || f.Y >= 10 {
			t.Errorf("fragment (%d,%d) should be clipped to 10x10 viewport", f.X, f.Y)
		}
	}
}

func TestWorkResetsOutputSlice(t *testing.T) {
	var r Rasterizer
	out := make([]Result, 5) // pre-populated with garbage

	r.Work(mathutil.Vec2{0, 0}, mathutil.Vec2{5, 5}, mathutil.Vec2{10, 10}, 20, 20, &out)

	if len(out) != 0 {
		t.Errorf("Work on degenerate triangle should reset *out to length 0, got len %d", len(out))
	}
}

func TestWorkNoOverlapBetweenAdjacentTriangles(t *testing.T) {
	// Two triangles sharing an edge must not both cover any pixel,
	// including the shared edge's exactly-zero pixels, per the top-left rule.
	var r Rasterizer
	var outA, outB []Result

	// Square split along its diagonal.
	a0, a1, a2 := mathutil.Vec2{0, 0}, mathutil.Vec2{10, 0}, mathutil.Vec2{10, 10}
	b0, b1, b2 := mathutil.Vec2{0, 0}, mathutil.Vec2{10, 10}, mathutil.Vec2{0, 10}

	r.Work(a0, a1, a2, 10, 10, &outA)
	r.Work(b0, b1, b2, 10, 10, &outB)

	seen := make(map[[2]uint32]bool)
	for _, f := range outA {
		seen[[2]uint32{f.X, f.Y}] = true
	}
	for _, f := range outB {
		key := [2]uint32{f.X, f.Y}
		if seen[key] {
			t.Errorf("pixel (%d,%d) covered by both triangles sharing an edge", f.X, f.Y)
		}
	}
}

func TestIsTopOrLeft(t *testing.T) {
	tests := []struct {
		name        string
		a, b        mathutil.Vec2
		wantTopLeft bool
	}{
		{"horizontal_going_right", mathutil.Vec2{0, 0}, mathutil.Vec2{10, 0}, false},
		{"horizontal_going_left", mathutil.Vec2{10, 0}, mathutil.Vec2{0, 0}, true},
		{"going_down", mathutil.Vec2{0, 0}, mathutil.Vec2{0, 10}, true},
		{"going_up", mathutil.Vec2{0, 10}, mathutil.Vec2{0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTopOrLeft(tt.a, tt.b); got != tt.wantTopLeft {
				t.Errorf("isTopOrLeft(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.wantTopLeft)
			}
		})
	}
}

func TestInside(t *testing.T) {
	tests := []struct {
		name       string
		e0, e1, e2 float32
		want       bool
	}{
		{"all_positive", 1, 2, 3, true},
		{"all_negative", -1, -2, -3, true},
		{"mixed_sign", 1, -1, 1, false},
		{"with_zero", 0, 1, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inside(tt.e0, tt.e1, tt.e2); got != tt.want {
				t.Errorf("inside(%v,%v,%v) = %v, want %v", tt.e0, tt.e1, tt.e2, got, tt.want)
			}
		})
	}
}
