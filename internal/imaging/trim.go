package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// OpaqueBounds scans img and returns the bounding box of all pixels with
// nonzero alpha. The second result is false when the image is fully
// transparent.
func OpaqueBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x+1)
			maxY = max(maxY, y+1)
		}
	}

	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

// TrimTransparent crops img to its opaque bounding box, so downstream
// placement rectangles track visible content rather than dead margins left
// behind by background removal. Fully transparent images pass through
// unchanged.
func TrimTransparent(img *image.NRGBA) *image.NRGBA {
	r, ok := OpaqueBounds(img)
	if !ok || r == img.Bounds() {
		return img
	}
	return imaging.Crop(img, r)
}
