package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeToWidth resizes img to the given width, preserving aspect ratio.
// The height rounds to the nearest pixel with a 1px floor. Used for the
// individual per-object output files, not for the hero canvas.
func ResizeToWidth(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	aspect := float64(b.Dy()) / float64(b.Dx())
	height := max(1, int(math.Round(float64(width)*aspect)))
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
