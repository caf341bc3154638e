// Package image2d implements a row-major 2D pixel buffer generic over the
// four pixel formats in package pixel, with nearest/bilinear sampling and
// element-wise format conversion.
package image2d

import "softraster/internal/pixel"

// Image2D is a row-major mapping from integer coordinates in [0,W)×[0,H)
// to pixels of type P. Storage length is always W*H; (x,y) addresses
// element x + y*W, no modular wrap.
type Image2D[P pixel.Pixel] struct {
	width, height int
	pix           []P
}

// New allocates a zero-valued image of the given dimensions.
func New[P pixel.Pixel](w, h int) *Image2D[P] {
	return &Image2D[P]{width: w, height: h, pix: make([]P, w*h)}
}

// Width returns the image width.
func (img *Image2D[P]) Width() int { return img.width }

// Height returns the image height.
func (img *Image2D[P]) Height() int { return img.height }

func (img *Image2D[P]) index(x, y int) int { return x + y*img.width }

// Get returns the pixel at (x,y). Undefined if x>=W or y>=H — the core
// never calls Get out of range, so there is no guard: it panics via the
// underlying slice index only when x+y*W falls outside the storage, and
// otherwise returns some other element.
func (img *Image2D[P]) Get(x, y int) P {
	return img.pix[img.index(x, y)]
}

// Set stores p at (x,y). Undefined if out of range, same contract as Get.
func (img *Image2D[P]) Set(x, y int, p P) {
	img.pix[img.index(x, y)] = p
}

// Fill sets every element to p.
func (img *Image2D[P]) Fill(p P) {
	for i := range img.pix {
		img.pix[i] = p
	}
}

func clampCoord(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// SampleNearest returns the pixel at (floor(u*(W-1)), floor(v*(H-1))),
// converted to RGBA32F. Out-of-range u,v is clamped to the border.
func (img *Image2D[P]) SampleNearest(u, v float32) pixel.RGBA32F {
	if img.width == 0 || img.height == 0 {
		return pixel.RGBA32F{}
	}
	u = clamp01(u)
	v = clamp01(v)
	x := clampCoord(int(u*float32(img.width-1)), img.width-1)
	y := clampCoord(int(v*float32(img.height-1)), img.height-1)
	return pixel.ToRGBA32F(img.Get(x, y))
}

// SampleBilinear performs bilinear filtering at (u,v), u,v in [0,1],
// clamping to the border: x0=floor(u*(W-1)), x1=min(x0+1,W-1), with
// weights from the fractional parts.
func (img *Image2D[P]) SampleBilinear(u, v float32) pixel.RGBA32F {
	if img.width == 0 || img.height == 0 {
		return pixel.RGBA32F{}
	}
	xf := clamp01(u) * float32(img.width-1)
	yf := clamp01(v) * float32(img.height-1)
	x0 := int(xf)
	y0 := int(yf)
	x1 := x0 + 1
	if x1 > img.width-1 {
		x1 = img.width - 1
	}
	y1 := y0 + 1
	if y1 > img.height-1 {
		y1 = img.height - 1
	}
	fx := xf - float32(x0)
	fy := yf - float32(y0)

	c00 := pixel.ToRGBA32F(img.Get(x0, y0))
	c10 := pixel.ToRGBA32F(img.Get(x1, y0))
	c01 := pixel.ToRGBA32F(img.Get(x0, y1))
	c11 := pixel.ToRGBA32F(img.Get(x1, y1))

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	return pixel.RGBA32F{
		R: c00.R*w00 + c10.R*w10 + c01.R*w01 + c11.R*w11,
		G: c00.G*w00 + c10.G*w10 + c01.G*w01 + c11.G*w11,
		B: c00.B*w00 + c10.B*w10 + c01.B*w01 + c11.B*w11,
		A: c00.A*w00 + c10.A*w10 + c01.A*w01 + c11.A*w11,
	}
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Convert allocates a new Image2D[Q] of the same dimensions with every
// pixel converted element-wise via pixel.ToRGBA32F/pixel.FromRGBA32F.
func Convert[Q pixel.Pixel, P pixel.Pixel](img *Image2D[P]) *Image2D[Q] {
	dst := New[Q](img.width, img.height)
	for i, p := range img.pix {
		dst.pix[i] = pixel.FromRGBA32F[Q](pixel.ToRGBA32F(p))
	}
	return dst
}
