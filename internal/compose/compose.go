package compose

import (
	"image"
	"image/color"
	"io"
	"math/rand"

	charmlog "github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

// Result is the outcome of one composition run.
type Result struct {
	// Canvas is the finished hero image: a transparent-background NRGBA
	// raster with every successfully placed object composited onto it.
	Canvas *image.NRGBA

	// Placed records the bounding box of each composited object, in
	// placement order.
	Placed []Rect

	// Skipped counts objects dropped because no acceptable position was
	// found within the attempt budget.
	Skipped int
}

// Composer runs hero compositions for a fixed configuration.
type Composer struct {
	cfg Config
	rng *rand.Rand
	log *charmlog.Logger
}

// NewComposer returns a Composer for cfg. The configuration is clamped to
// its valid ranges on the way in. rng must not be nil: it drives the
// shuffle, the transform pipeline, and the placement search, so a fixed
// seed reproduces a composition exactly. logger may be nil to silence
// progress output.
func NewComposer(cfg Config, rng *rand.Rand, logger *charmlog.Logger) *Composer {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Composer{cfg: cfg.normalized(), rng: rng, log: logger}
}

// Compose scatters objects onto a fresh canvas and returns the result.
//
// The object list is shuffled (uniform permutation), then each object runs
// through pre-shrink, random transform, canvas fit, and placement search.
// Objects that cannot be placed are skipped with a warning; an empty input
// yields a valid blank canvas. The input images are never mutated.
func (c *Composer) Compose(objects []image.Image) *Result {
	canvas := imaging.New(c.cfg.Width, c.cfg.Height, color.NRGBA{})
	result := &Result{Canvas: canvas}

	order := make([]image.Image, len(objects))
	copy(order, objects)
	c.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	target := autoScaleTarget(len(order), c.cfg.Width, c.cfg.Height)

	for i, obj := range order {
		c.log.Debug("placing object", "index", i+1, "total", len(order))

		img := randomTransform(c.rng, preShrink(obj, target), c.cfg)
		img = fitToCanvas(img, c.cfg.Width, c.cfg.Height)

		b := img.Bounds()
		pos, ok := findPosition(c.rng, b.Dx(), b.Dy(), c.cfg, result.Placed)
		if !ok {
			result.Skipped++
			c.log.Warn("could not place object, canvas too crowded; "+
				"try a higher overlap budget or lower variations",
				"index", i+1, "attempts", maxPlacementAttempts)
			continue
		}

		result.Canvas = imaging.Overlay(result.Canvas, img, pos, 1.0)
		result.Placed = append(result.Placed, Rect{X: pos.X, Y: pos.Y, W: b.Dx(), H: b.Dy()})
	}

	return result
}
