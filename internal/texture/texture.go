// Package texture decodes albedo images into Image2D[RGBA8] and caches
// them by filesystem path. PNG, JPEG, TGA, and BMP are accepted; the
// format is sniffed from the bytes, never from the file extension.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"sync"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"softraster/internal/image2d"
	"softraster/internal/pixel"
)

// TGA has no magic bytes, so it registers with an empty prefix. An empty
// prefix matches any input in image.Decode's sniffing, so DecodeImage does
// not rely on registration order: it checks the PNG, JPEG and BMP
// signatures itself and hands everything else to the TGA decoder.
func init() {
	image.RegisterFormat("tga", "", tga.Decode, tga.DecodeConfig)
}

// DecodeImage decodes raw image bytes (PNG, JPEG, TGA, or BMP — the
// format is sniffed, not taken from a file extension) into an
// Image2D[RGBA8].
func DecodeImage(raw []byte) (*image2d.Image2D[pixel.RGBA8], error) {
	r := bytes.NewReader(raw)
	var src image.Image
	var err error
	switch {
	case bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")):
		src, err = png.Decode(r)
	case bytes.HasPrefix(raw, []byte("\xff\xd8")):
		src, err = jpeg.Decode(r)
	case bytes.HasPrefix(raw, []byte("BM")):
		src, err = bmp.Decode(r)
	default:
		src, err = tga.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return fromImage(src), nil
}

func fromImage(src image.Image) *image2d.Image2D[pixel.RGBA8] {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	img := image2d.New[pixel.RGBA8](w, h)
	for y := 0; y < h; y++ {
		row := y * dst.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			img.Set(x, y, pixel.RGBA8{R: dst.Pix[i], G: dst.Pix[i+1], B: dst.Pix[i+2], A: dst.Pix[i+3]})
		}
	}
	return img
}

// Resolver resolves a filesystem path to a decoded albedo image.
type Resolver interface {
	Resolve(path string) *image2d.Image2D[pixel.RGBA8]
}

// Cache is a concurrency-safe, load-once-per-path texture cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image2d.Image2D[pixel.RGBA8]
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*image2d.Image2D[pixel.RGBA8])}
}

// Resolve loads and decodes the image at path, caching the result. A
// decode or read failure is cached as nil so a missing texture is not
// retried on every subsequent call.
func (c *Cache) Resolve(path string) *image2d.Image2D[pixel.RGBA8] {
	c.mu.RLock()
	img, ok := c.items[path]
	c.mu.RUnlock()
	if ok {
		return img
	}

	raw, err := os.ReadFile(path)
	var decoded *image2d.Image2D[pixel.RGBA8]
	if err == nil {
		decoded, _ = DecodeImage(raw)
	}

	c.mu.Lock()
	if existing, exists := c.items[path]; exists {
		c.mu.Unlock()
		return existing
	}
	c.items[path] = decoded
	c.mu.Unlock()

	return decoded
}
