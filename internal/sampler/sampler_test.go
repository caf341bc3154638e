package sampler

import (
	"testing"

	"softraster/internal/image2d"
	"softraster/internal/pixel"
)

func checkerboard() *image2d.Image2D[pixel.RGBA8] {
	img := image2d.New[pixel.RGBA8](2, 2)
	img.Set(0, 0, pixel.RGBA8{R: 255, A: 255})
	img.Set(1, 0, pixel.RGBA8{G: 255, A: 255})
	img.Set(0, 1, pixel.RGBA8{B: 255, A: 255})
	img.Set(1, 1, pixel.RGBA8{R: 255, G: 255, A: 255})
	return img
}

func TestNearestMatchesImage2D(t *testing.T) {
	tex := checkerboard()
	got := Nearest(tex, 0, 0)
	want := tex.SampleNearest(0, 0)
	if got != want {
		t.Errorf("Nearest(0,0) = %+v, want %+v", got, want)
	}
}

func TestBilinearMatchesImage2D(t *testing.T) {
	tex := checkerboard()
	got := Bilinear(tex, 0.5, 0.5)
	want := tex.SampleBilinear(0.5, 0.5)
	if got != want {
		t.Errorf("Bilinear(0.5,0.5) = %+v, want %+v", got, want)
	}
}
