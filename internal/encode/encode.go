// Package encode writes a rendered color buffer to disk as PNG or WebP.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"softraster/internal/image2d"
	"softraster/internal/pixel"
)

func toNRGBA(img *image2d.Image2D[pixel.RGBA8]) *image.NRGBA {
	w, h := img.Width(), img.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * dst.Stride
		for x := 0; x < w; x++ {
			p := img.Get(x, y)
			i := row + x*4
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = p.R, p.G, p.B, p.A
		}
	}
	return dst
}

// EncodePNG writes img to path as a PNG file.
func EncodePNG(img *image2d.Image2D[pixel.RGBA8], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, toNRGBA(img)); err != nil {
		return fmt.Errorf("encode: png %s: %w", path, err)
	}
	return nil
}

// EncodeWebP writes img to path as a WebP file.
func EncodeWebP(img *image2d.Image2D[pixel.RGBA8], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, toNRGBA(img), nil); err != nil {
		return fmt.Errorf("encode: webp %s: %w", path, err)
	}
	return nil
}
