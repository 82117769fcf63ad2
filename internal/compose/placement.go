package compose

import (
	"image"
	"math/rand"
)

// findPosition searches for a canvas position where an imageWidth×imageHeight
// object satisfies the overlap budget against every already-placed rectangle.
//
// Candidates are sampled uniformly from [0, canvas-object] inclusive on each
// axis, up to maxPlacementAttempts times; the first acceptable candidate
// wins. With MaxOverlap >= 100 the first sample is accepted outright, no
// intersection checks. The boolean result is false when the budget runs out
// — a normal "too crowded" outcome, not an error.
func findPosition(rng *rand.Rand, imageWidth, imageHeight int, cfg Config, placed []Rect) (image.Point, bool) {
	maxX := max(0, cfg.Width-imageWidth)
	maxY := max(0, cfg.Height-imageHeight)

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		pos := image.Pt(rng.Intn(maxX+1), rng.Intn(maxY+1))

		if cfg.MaxOverlap >= 100 {
			return pos, true
		}

		candidate := Rect{X: pos.X, Y: pos.Y, W: imageWidth, H: imageHeight}
		if !collides(candidate, placed, cfg.MaxOverlap) {
			return pos, true
		}
	}

	return image.Point{}, false
}

// collides reports whether r violates the overlap budget against any placed
// rectangle. With maxOverlap == 0 any positive-area intersection collides;
// otherwise only overlap percentages strictly above the budget do.
func collides(r Rect, placed []Rect, maxOverlap int) bool {
	for _, p := range placed {
		pct := OverlapPercentage(r, p)

		if maxOverlap == 0 && pct > 0 {
			return true
		}
		if pct > float64(maxOverlap) {
			return true
		}
	}
	return false
}
