package compose

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// newOpaqueNRGBA creates a fully opaque single-color test image.
func newOpaqueNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRandomTransform_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := newOpaqueNRGBA(120, 80, color.NRGBA{R: 200, A: 255})

	out := randomTransform(rng, src, Config{SizeVariation: 0, OrientationVariation: 0})

	if got := out.Bounds(); got.Dx() != 120 || got.Dy() != 80 {
		t.Errorf("identity transform changed dimensions: got %dx%d, want 120x80", got.Dx(), got.Dy())
	}
}

func TestRandomTransform_RotationExpandsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := newOpaqueNRGBA(100, 100, color.NRGBA{R: 200, A: 255})

	out := randomTransform(rng, src, Config{OrientationVariation: 45})

	b := out.Bounds()
	if b.Dx() <= 100 || b.Dy() <= 100 {
		t.Errorf("rotated bounding box %dx%d did not expand beyond 100x100", b.Dx(), b.Dy())
	}
}

func TestRandomTransform_ScaleWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	src := newOpaqueNRGBA(100, 100, color.NRGBA{G: 200, A: 255})

	// sizeVariation 10: factor drawn from [0.5, 3.0].
	for i := 0; i < 20; i++ {
		out := randomTransform(rng, src, Config{SizeVariation: 10})
		b := out.Bounds()
		if b.Dx() < 50 || b.Dx() > 300 || b.Dy() < 50 || b.Dy() > 300 {
			t.Fatalf("scaled dimensions %dx%d outside [50,300]", b.Dx(), b.Dy())
		}
		if b.Dx() != b.Dy() {
			t.Fatalf("square input scaled to non-square %dx%d", b.Dx(), b.Dy())
		}
	}
}

func TestRandomTransform_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	src := newOpaqueNRGBA(50, 50, color.NRGBA{B: 200, A: 255})
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	randomTransform(rng, src, Config{SizeVariation: 5, OrientationVariation: 30})

	if !bytes.Equal(before, src.Pix) {
		t.Error("randomTransform mutated its input image")
	}
}

func TestFitToCanvas(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"fits already", 500, 400, 500, 400},
		{"uniformly oversized", 2880, 1440, 1440, 720},
		{"wide", 3000, 500, 1440, 240},
		{"tall", 500, 3000, 120, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newOpaqueNRGBA(tt.w, tt.h, color.NRGBA{R: 10, A: 255})
			out := fitToCanvas(img, 1440, 720)
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("fitToCanvas(%dx%d) = %dx%d, want %dx%d",
					tt.w, tt.h, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
			if b.Dx() > 1440 || b.Dy() > 720 {
				t.Errorf("fitted image %dx%d exceeds canvas", b.Dx(), b.Dy())
			}
		})
	}
}
