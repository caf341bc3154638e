// Package shader drives the rasterization pipeline: vertex transform,
// perspective divide, viewport map, back-face cull, rasterize, depth test,
// perspective-correct attribute interpolation, texture sample, store.
package shader

import (
	"softraster/internal/framebuffer"
	"softraster/internal/image2d"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/pixel"
	"softraster/internal/raster"
	"softraster/internal/sampler"
)

// Shader is stateless; the zero value is ready to use.
type Shader struct {
	rast    raster.Rasterizer
	scratch []raster.Result
}

// New returns a ready-to-use Shader.
func New() *Shader {
	return &Shader{}
}

// screenVertex is a transformed vertex carried through the pipeline: its
// screen-space xy, its reciprocal w, and its NDC z (used for the raw-
// barycentric depth interpolation).
type screenVertex struct {
	screen mathutil.Vec2
	rw     float32
	ndcZ   float32
}

// Draw transforms vb by mvp, rasterizes each triangle against out's
// dimensions, and writes color+depth for every pixel that passes the
// depth test. A trailing fragment (len(vb)%3 != 0) is ignored.
func (s *Shader) Draw(mvp mathutil.Mat4, vb mesh.VertexBuffer[mesh.VertexStatic], albedo *image2d.Image2D[pixel.RGBA8], out *framebuffer.Framebuffer) {
	w, h := out.Width(), out.Height()

	for t := 0; t < vb.TriangleCount(); t++ {
		p0, p1, p2 := vb[t*3], vb[t*3+1], vb[t*3+2]

		v0, ok0 := transformVertex(mvp, p0.Position, w, h)
		v1, ok1 := transformVertex(mvp, p1.Position, w, h)
		v2, ok2 := transformVertex(mvp, p2.Position, w, h)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		if !raster.IsCCW(v0.screen, v1.screen, v2.screen) {
			continue
		}

		s.rast.Work(v0.screen, v1.screen, v2.screen, w, h, &s.scratch)

		for _, r := range s.scratch {
			b0, b1, b2 := r.Bary[0], r.Bary[1], r.Bary[2]

			// Depth uses raw barycentrics and the reciprocal of each
			// vertex's NDC z, distinct from the rw=1/w used below for
			// attribute perspective correction. Zero-weight terms are
			// skipped so a vertex sitting exactly on the near plane
			// (NDC z = 0) contributes +Inf only when it actually covers
			// the pixel; 1/+Inf then lands the pixel at depth 0.
			var invZ float32
			if b0 != 0 {
				invZ += b0 / v0.ndcZ
			}
			if b1 != 0 {
				invZ += b1 / v1.ndcZ
			}
			if b2 != 0 {
				invZ += b2 / v2.ndcZ
			}
			z := 1 / invZ

			if z >= out.Depth.Get(int(r.X), int(r.Y)).V {
				continue
			}

			pb0, pb1, pb2 := b0*v0.rw, b1*v1.rw, b2*v2.rw
			sum := pb0 + pb1 + pb2
			if sum == 0 {
				continue
			}
			inv := 1 / sum
			pb0, pb1, pb2 = pb0*inv, pb1*inv, pb2*inv

			uv := p0.UV.Scale(pb0).Add(p1.UV.Scale(pb1)).Add(p2.UV.Scale(pb2))

			c := sampler.Bilinear(albedo, uv[0], uv[1])

			out.Color.Set(int(r.X), int(r.Y), pixel.RGBA8FromRGBA32F(c))
			out.Depth.Set(int(r.X), int(r.Y), pixel.Gray32F{V: z})
		}
	}
}

// transformVertex computes q = mvp·(p,1), rejects w<=0 (no near-plane
// clipping; a triangle crossing w=0 is dropped whole), perspective-divides,
// and maps NDC to screen space. Screen y is flipped: NDC y grows up,
// screen y grows down, which keeps raster.IsCCW's winding sense aligned
// with the projection.
func transformVertex(mvp mathutil.Mat4, p mathutil.Vec3, w, h int) (screenVertex, bool) {
	q := mvp.MulPoint(p)
	if q[3] <= 0 {
		return screenVertex{}, false
	}
	rw := 1 / q[3]
	ndcX := q[0] * rw
	ndcY := q[1] * rw
	ndcZ := q[2] * rw

	sx := ndcX*float32(w)/2 + float32(w)/2
	sy := -ndcY*float32(h)/2 + float32(h)/2

	return screenVertex{screen: mathutil.Vec2{sx, sy}, rw: rw, ndcZ: ndcZ}, true
}
