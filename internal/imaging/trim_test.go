package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestOpaqueBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(3, 4, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(6, 7, color.NRGBA{G: 255, A: 1})

	r, ok := OpaqueBounds(img)
	if !ok {
		t.Fatal("OpaqueBounds found no opaque pixels")
	}
	if want := image.Rect(3, 4, 7, 8); r != want {
		t.Errorf("OpaqueBounds = %v, want %v", r, want)
	}
}

func TestOpaqueBounds_FullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	if _, ok := OpaqueBounds(img); ok {
		t.Error("OpaqueBounds reported content in a fully transparent image")
	}
}

func TestTrimTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 5; y < 9; y++ {
		for x := 2; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}

	out := TrimTransparent(img)
	b := out.Bounds()
	if b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("trimmed image is %dx%d, want 6x4", b.Dx(), b.Dy())
	}
	if a := out.NRGBAAt(b.Min.X, b.Min.Y).A; a != 255 {
		t.Errorf("trimmed top-left alpha = %d, want 255", a)
	}
}

func TestTrimTransparent_NoMargin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	if out := TrimTransparent(img); out != img {
		t.Error("fully opaque image should pass through without copying")
	}
}

func TestTrimTransparent_FullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if out := TrimTransparent(img); out != img {
		t.Error("fully transparent image should pass through unchanged")
	}
}
