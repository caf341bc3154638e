// Package mesh defines the static mesh data model: vertices, vertex
// buffers, materials, render units, and whole models.
package mesh

import (
	"softraster/internal/image2d"
	"softraster/internal/mathutil"
	"softraster/internal/pixel"
)

// VertexStatic is a single vertex: position, normal, and UV.
type VertexStatic struct {
	Position mathutil.Vec3
	Normal   mathutil.Vec3
	UV       mathutil.Vec2
}

// VertexBuffer is an ordered sequence of vertices whose length is always
// 3*T for T triangles; each consecutive 3-tuple forms one triangle.
type VertexBuffer[V any] []V

// TriangleCount returns how many complete triangles the buffer holds. A
// trailing fragment of one or two vertices is ignored.
func (vb VertexBuffer[V]) TriangleCount() int {
	return len(vb) / 3
}

// Material holds per-unit shading parameters. AlbedoTex is a back
// reference; the material does not own the texture.
type Material struct {
	AlbedoPath string
	Roughness  float32
	Metallic   float32
	AlphaBlend bool
	AlbedoTex  *image2d.Image2D[pixel.RGBA8]
}

// RenderUnit pairs a mesh with its material. WeightCenter is the
// arithmetic mean of vertex positions, computed at construction.
type RenderUnit[V any] struct {
	Mesh         VertexBuffer[V]
	Material     Material
	WeightCenter mathutil.Vec3
}

// NewRenderUnit builds a RenderUnit, computing WeightCenter from the
// vertex positions via the supplied position accessor.
func NewRenderUnit[V any](vb VertexBuffer[V], mat Material, positionOf func(V) mathutil.Vec3) RenderUnit[V] {
	var sum mathutil.Vec3
	for _, v := range vb {
		sum = sum.Add(positionOf(v))
	}
	center := mathutil.Vec3{}
	if n := len(vb); n > 0 {
		center = sum.Scale(1 / float32(n))
	}
	return RenderUnit[V]{Mesh: vb, Material: mat, WeightCenter: center}
}

// ModelStatic is an ordered sequence of render units.
type ModelStatic struct {
	Units []RenderUnit[VertexStatic]
}

// GenMeshQuad appends two triangles, (p0,p1,p2) and (p0,p2,p3), to vb,
// with UVs (0,0),(0,1),(1,1) and (0,0),(1,1),(1,0) and a shared normal.
func GenMeshQuad(vb *VertexBuffer[VertexStatic], p0, p1, p2, p3 mathutil.Vec3, normal mathutil.Vec3) {
	*vb = append(*vb,
		VertexStatic{Position: p0, Normal: normal, UV: mathutil.Vec2{0, 0}},
		VertexStatic{Position: p1, Normal: normal, UV: mathutil.Vec2{0, 1}},
		VertexStatic{Position: p2, Normal: normal, UV: mathutil.Vec2{1, 1}},

		VertexStatic{Position: p0, Normal: normal, UV: mathutil.Vec2{0, 0}},
		VertexStatic{Position: p2, Normal: normal, UV: mathutil.Vec2{1, 1}},
		VertexStatic{Position: p3, Normal: normal, UV: mathutil.Vec2{1, 0}},
	)
}
