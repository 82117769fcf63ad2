package compose

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
)

// randomTransform applies the per-object random rotation and scaling passes.
// The input image is never mutated; the result is always a fresh NRGBA.
//
// Rotation: with OrientationVariation > 0, the angle is drawn uniformly
// from its ± range and applied with bounds expansion — the output bounding
// box grows to contain the rotated content, nothing is cropped. A zero
// variation skips the rotation pass entirely.
//
// Scaling: with SizeVariation v > 0, the factor is drawn uniformly from
// [max(0.2, 1-0.05v), 1+0.2v]. Dimensions round to the nearest pixel and
// clamp to at least 1px. A factor of exactly 1 skips the resize.
func randomTransform(rng *rand.Rand, img image.Image, cfg Config) *image.NRGBA {
	out := imaging.Clone(img)

	if cfg.OrientationVariation > 0 {
		angle := (rng.Float64()*2 - 1) * float64(cfg.OrientationVariation)
		out = imaging.Rotate(out, angle, color.NRGBA{})
	}

	if cfg.SizeVariation > 0 {
		maxScale := 1 + float64(cfg.SizeVariation)*0.2
		minScale := math.Max(0.2, 1-float64(cfg.SizeVariation)*0.05)
		factor := minScale + rng.Float64()*(maxScale-minScale)

		if factor != 1.0 {
			b := out.Bounds()
			w := max(1, int(math.Round(float64(b.Dx())*factor)))
			h := max(1, int(math.Round(float64(b.Dy())*factor)))
			out = imaging.Resize(out, w, h, imaging.Lanczos)
		}
	}

	return out
}

// fitToCanvas enforces the hard invariant that no object's bounding box
// exceeds the canvas. Oversized images are scaled down proportionally so
// both dimensions fit, with a 1px floor.
func fitToCanvas(img *image.NRGBA, canvasWidth, canvasHeight int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= canvasWidth && h <= canvasHeight {
		return img
	}

	ratio := math.Min(float64(canvasWidth)/float64(w), float64(canvasHeight)/float64(h))
	w = max(1, int(math.Round(float64(w)*ratio)))
	h = max(1, int(math.Round(float64(h)*ratio)))
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
