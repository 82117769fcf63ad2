package cli

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ironsheep/hero-compose/internal/compose"
	"github.com/ironsheep/hero-compose/internal/imaging"
)

// loadedObject pairs a background-removed image with the input path it came
// from, so the resized output can reuse the original file name.
type loadedObject struct {
	path string
	img  *image.NRGBA
}

// run executes the full pipeline: load and background-remove the inputs,
// compose the hero canvas, save it, then save the resized individual files.
func run(ctx context.Context, opts *options, inputs []string) error {
	logger := loggerFromContext(ctx)

	heroWidth, heroHeight, err := parseHeroSize(opts.heroSize)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	objects := loadObjects(ctx, inputs, imaging.NewChromaKey())
	if len(objects) == 0 {
		logger.Warn("no usable input images; composing a blank canvas")
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeding random generator", "seed", seed)
	rng := rand.New(rand.NewSource(seed))

	cfg := compose.Config{
		Width:                heroWidth,
		Height:               heroHeight,
		SizeVariation:        opts.sizeVariation,
		OrientationVariation: opts.orientationVariation,
		MaxOverlap:           opts.maxOverlap,
	}

	logger.Info("generating hero composition", "width", heroWidth, "height", heroHeight, "objects", len(objects))

	images := make([]image.Image, len(objects))
	for i, o := range objects {
		images[i] = o.img
	}
	result := compose.NewComposer(cfg, rng, logger).Compose(images)
	if result.Skipped > 0 {
		logger.Warn("some objects did not fit", "skipped", result.Skipped, "placed", len(result.Placed))
	}

	heroPath := filepath.Join(opts.outputDir, opts.heroName)
	if err := imaging.Save(result.Canvas, heroPath); err != nil {
		return err
	}
	logger.Info("saved hero image", "path", heroPath)

	return saveResized(ctx, opts, objects)
}

// loadObjects reads, background-removes, and trims each input. Unreadable
// or undecodable files are logged and skipped so the composition engine
// never sees a partially-invalid image.
func loadObjects(ctx context.Context, inputs []string, remover imaging.Remover) []loadedObject {
	logger := loggerFromContext(ctx)
	logger.Info("removing backgrounds", "files", len(inputs))

	objects := make([]loadedObject, 0, len(inputs))
	for i, path := range inputs {
		logger.Info("processing input", "index", i+1, "total", len(inputs), "path", path)

		data, err := imaging.ReadFile(path)
		if err != nil {
			logger.Error("failed to process input", "path", path, "err", err)
			continue
		}
		img, err := remover.Remove(data)
		if err != nil {
			logger.Error("failed to process input", "path", path, "err", err)
			continue
		}

		objects = append(objects, loadedObject{path: path, img: imaging.TrimTransparent(img)})
	}
	return objects
}

// saveResized writes a proportionally resized PNG copy of every
// background-removed input next to the hero file.
func saveResized(ctx context.Context, opts *options, objects []loadedObject) error {
	if len(objects) == 0 {
		return nil
	}

	width := max(1, opts.resizedWidth)
	logger := loggerFromContext(ctx)
	logger.Info("generating resized input images", "width", width)

	for _, o := range objects {
		base := filepath.Base(o.path)
		name := strings.TrimSuffix(base, filepath.Ext(base))

		resized := imaging.ResizeToWidth(o.img, width)
		outPath := filepath.Join(opts.outputDir, name+opts.resizedSuffix+".png")
		if err := imaging.Save(resized, outPath); err != nil {
			return err
		}
		logger.Debug("saved resized image", "path", outPath)
	}
	return nil
}
