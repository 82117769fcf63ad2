package compose

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// autoScaleTarget derives a representative single-dimension size target for
// one object in a batch of count, so that the whole batch can plausibly fit
// on the canvas before per-object randomization runs.
//
// The heuristic budgets coverageTarget of the canvas area across all
// objects and treats each as roughly square for the estimate only; the real
// aspect ratio is preserved by preShrink. A return of 0 means the heuristic
// is disabled (single object or empty batch).
func autoScaleTarget(count, canvasWidth, canvasHeight int) float64 {
	if count <= 1 {
		return 0
	}
	perObject := float64(canvasWidth) * float64(canvasHeight) * coverageTarget / float64(count)
	return math.Sqrt(perObject)
}

// preShrink downscales img so its longer side equals target, preserving
// aspect ratio. Objects already at or below the target, and a zero target,
// pass through untouched; the heuristic never upscales.
func preShrink(img image.Image, target float64) image.Image {
	b := img.Bounds()
	longer := max(b.Dx(), b.Dy())

	if target <= 0 || float64(longer) <= target {
		return img
	}

	ratio := target / float64(longer)
	w := max(1, int(math.Round(float64(b.Dx())*ratio)))
	h := max(1, int(math.Round(float64(b.Dy())*ratio)))
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
