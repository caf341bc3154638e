// Package sampler provides standalone texture-filtering kernels against an
// Image2D[RGBA8] albedo. UVs are normalized to [0,1] and clamp at the
// border rather than wrapping.
package sampler

import (
	"softraster/internal/image2d"
	"softraster/internal/pixel"
)

// Nearest samples the albedo at normalized (u,v) using nearest-neighbor
// filtering.
func Nearest(tex *image2d.Image2D[pixel.RGBA8], u, v float32) pixel.RGBA32F {
	return tex.SampleNearest(u, v)
}

// Bilinear samples the albedo at normalized (u,v) using bilinear
// filtering.
func Bilinear(tex *image2d.Image2D[pixel.RGBA8], u, v float32) pixel.RGBA32F {
	return tex.SampleBilinear(u, v)
}
