package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// ReadFile reads the raw bytes of an object image file.
//
// No decoding happens here: the raw bytes go through a Remover first, which
// decides how to interpret them.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

// Decode decodes raw image bytes (PNG, JPEG, or GIF) into an NRGBA raster.
//
// Returns:
//   - *image.NRGBA: The decoded image, converted to NRGBA so per-pixel
//     alpha is always addressable.
//   - error: Non-nil if the bytes are not a valid image in a supported format.
func Decode(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return imaging.Clone(img), nil
}
