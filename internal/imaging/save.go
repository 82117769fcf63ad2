package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Save encodes img to path, with the format inferred from the file
// extension (PNG for the transparent outputs this tool produces).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
