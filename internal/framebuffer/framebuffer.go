// Package framebuffer pairs a color and a depth image into the single
// render target the shader draws into.
package framebuffer

import (
	"softraster/internal/image2d"
	"softraster/internal/pixel"
)

// Framebuffer is a coregistered (color, depth) pair. Both sub-images have
// identical dimensions at all times. Clearing is the caller's
// responsibility; construction only allocates.
type Framebuffer struct {
	Color *image2d.Image2D[pixel.RGBA8]
	Depth *image2d.Image2D[pixel.Gray32F]
}

// New allocates a Color and Depth image of size (w,h).
func New(w, h int) *Framebuffer {
	return &Framebuffer{
		Color: image2d.New[pixel.RGBA8](w, h),
		Depth: image2d.New[pixel.Gray32F](w, h),
	}
}

// Width returns the framebuffer width, derived from the color image.
func (fb *Framebuffer) Width() int { return fb.Color.Width() }

// Height returns the framebuffer height, derived from the color image.
func (fb *Framebuffer) Height() int { return fb.Color.Height() }

// Clear fills Color with c and Depth with d. Smaller depth is nearer, so
// a frame normally starts from d = 1, the far plane.
func (fb *Framebuffer) Clear(c pixel.RGBA8, d float32) {
	fb.Color.Fill(c)
	fb.Depth.Fill(pixel.Gray32F{V: d})
}
