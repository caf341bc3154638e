// Package model decodes the DMD indexed-mesh container: a little-endian
// binary format with per-mesh vertex/normal/UV/triangle records,
// optionally encrypted depending on the version byte.
package model

import (
	"encoding/binary"
	"math"

	"softraster/internal/crypto"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
)

// BuildModelFromDMD decodes raw into a ModelStatic. It returns (nil,
// false) on any decode failure: truncated input, bad magic, or an
// unsupported version byte. It never panics on malformed input.
func BuildModelFromDMD(raw []byte) (*mesh.ModelStatic, bool) {
	if len(raw) < 4 || string(raw[:3]) != "DMD" {
		return nil, false
	}
	version := raw[3]

	var data []byte
	switch version {
	case 15:
		if len(raw) < 8 {
			return nil, false
		}
		size := binary.LittleEndian.Uint32(raw[4:8])
		if 8+int(size) > len(raw) || size%16 != 0 {
			return nil, false
		}
		data = crypto.DecryptLEA(raw[8:8+size], crypto.LEAKey)
	case 12:
		if len(raw) < 8 {
			return nil, false
		}
		size := binary.LittleEndian.Uint32(raw[4:8])
		if 8+int(size) > len(raw) {
			return nil, false
		}
		data = crypto.DecryptXOR(raw[8 : 8+size])
	case 10:
		data = raw[4:]
	default:
		return nil, false
	}

	r := &reader{data: data}
	units, ok := r.parseUnits()
	if !ok {
		return nil, false
	}
	return &mesh.ModelStatic{Units: units}, true
}

type reader struct {
	data []byte
	off  int
	bad  bool
}

func (r *reader) readStr(n int) string {
	if r.off+n > len(r.data) {
		r.bad = true
		return ""
	}
	s := r.data[r.off : r.off+n]
	r.off += n
	for i, b := range s {
		if b == 0 {
			return string(s[:i])
		}
	}
	return string(s)
}

func (r *reader) readI16() int16 {
	if r.off+2 > len(r.data) {
		r.bad = true
		return 0
	}
	v := int16(binary.LittleEndian.Uint16(r.data[r.off:]))
	r.off += 2
	return v
}

func (r *reader) readU16() uint16 {
	if r.off+2 > len(r.data) {
		r.bad = true
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *reader) readF32() float32 {
	if r.off+4 > len(r.data) {
		r.bad = true
		return 0
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return v
}

// parseUnits reads the model name and mesh-record section, expanding each
// mesh's (vertex, normal, uv, triangle) index tables into a flat
// VertexStatic triangle list. Bone and animation sections that may follow
// the mesh records are never read.
func (r *reader) parseUnits() ([]mesh.RenderUnit[mesh.VertexStatic], bool) {
	_ = r.readStr(32) // model name
	meshCount := int(r.readU16())
	if r.bad || meshCount < 0 || meshCount > 1000 {
		return nil, false
	}

	units := make([]mesh.RenderUnit[mesh.VertexStatic], 0, meshCount)
	for i := 0; i < meshCount; i++ {
		nv := int(r.readI16())
		nn := int(r.readI16())
		ntc := int(r.readI16())
		nt := int(r.readI16())
		_ = r.readI16() // texture index, unused; the texture path after the triangles names the albedo
		if r.bad || nv < 0 || nn < 0 || ntc < 0 {
			return nil, false
		}

		verts := make([]mathutil.Vec3, nv)
		for j := 0; j < nv; j++ {
			_ = r.readI16() // node
			_ = r.readI16() // padding
			verts[j] = mathutil.Vec3{r.readF32(), r.readF32(), r.readF32()}
		}

		normals := make([]mathutil.Vec3, nn)
		for j := 0; j < nn; j++ {
			_ = r.readI16() // node
			_ = r.readI16() // padding
			normals[j] = mathutil.Vec3{r.readF32(), r.readF32(), r.readF32()}
			_ = r.readI16() // bind vertex
			_ = r.readI16() // padding
		}

		uvs := make([]mathutil.Vec2, ntc)
		for j := 0; j < ntc; j++ {
			uvs[j] = mathutil.Vec2{r.readF32(), r.readF32()}
		}

		if r.bad {
			return nil, false
		}

		var vb mesh.VertexBuffer[mesh.VertexStatic]
		for j := 0; j < nt; j++ {
			if r.off+64 > len(r.data) {
				r.bad = true
				break
			}
			base := r.off
			poly := int(r.data[base])
			var vi, ni, ti [4]int16
			for k := 0; k < 4; k++ {
				vi[k] = int16(binary.LittleEndian.Uint16(r.data[base+2+k*2:]))
			}
			for k := 0; k < 4; k++ {
				ni[k] = int16(binary.LittleEndian.Uint16(r.data[base+10+k*2:]))
			}
			for k := 0; k < 4; k++ {
				ti[k] = int16(binary.LittleEndian.Uint16(r.data[base+18+k*2:]))
			}
			r.off += 64

			if !appendTriangle(&vb, verts, normals, uvs, vi, ni, ti, 0, 1, 2) {
				return nil, false
			}
			if poly == 4 {
				if !appendTriangle(&vb, verts, normals, uvs, vi, ni, ti, 0, 2, 3) {
					return nil, false
				}
			}
		}
		if r.bad {
			return nil, false
		}

		texPath := r.readStr(32)
		if r.bad {
			return nil, false
		}

		mat := mesh.Material{AlbedoPath: texPath}
		units = append(units, mesh.NewRenderUnit(vb, mat, func(v mesh.VertexStatic) mathutil.Vec3 {
			return v.Position
		}))
	}

	return units, true
}

func appendTriangle(
	vb *mesh.VertexBuffer[mesh.VertexStatic],
	verts, normals []mathutil.Vec3, uvs []mathutil.Vec2,
	vi, ni, ti [4]int16,
	a, b, c int,
) bool {
	corners := [3]int{a, b, c}
	for _, k := range corners {
		vIdx, nIdx, tIdx := int(vi[k]), int(ni[k]), int(ti[k])
		if vIdx < 0 || vIdx >= len(verts) {
			return false
		}
		v := mesh.VertexStatic{Position: verts[vIdx]}
		if nIdx >= 0 && nIdx < len(normals) {
			v.Normal = normals[nIdx]
		}
		if tIdx >= 0 && tIdx < len(uvs) {
			v.UV = uvs[tIdx]
		}
		*vb = append(*vb, v)
	}
	return true
}
