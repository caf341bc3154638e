package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImagePNG(t *testing.T) {
	raw := encodeTestPNG(t)

	got, err := DecodeImage(raw)
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	if got.Width() != 2 || got.Height() != 2 {
		t.Fatalf("DecodeImage() dims = (%d,%d), want (2,2)", got.Width(), got.Height())
	}

	p := got.Get(0, 0)
	if p.R != 255 || p.A != 255 {
		t.Errorf("Get(0,0) = %+v, want opaque red", p)
	}
}

func TestDecodeImageInvalidData(t *testing.T) {
	if _, err := DecodeImage([]byte("not an image")); err == nil {
		t.Error("DecodeImage() on garbage bytes should return an error")
	}
}

func TestCacheResolveCachesResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	if err := os.WriteFile(path, encodeTestPNG(t), 0o644); err != nil {
		t.Fatalf("failed to write test texture: %v", err)
	}

	c := NewCache()
	first := c.Resolve(path)
	if first == nil {
		t.Fatal("Resolve() on a valid PNG file returned nil")
	}

	second := c.Resolve(path)
	if second != first {
		t.Error("Resolve() should return the cached *Image2D pointer on the second call")
	}
}

func TestCacheResolveMissingFile(t *testing.T) {
	c := NewCache()
	got := c.Resolve("/nonexistent/path/to/texture.png")
	if got != nil {
		t.Errorf("Resolve() of a missing file = %v, want nil", got)
	}
	// A second call should also return nil without panicking (cached miss).
	if got := c.Resolve("/nonexistent/path/to/texture.png"); got != nil {
		t.Errorf("Resolve() of a cached missing file = %v, want nil", got)
	}
}
