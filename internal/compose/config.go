package compose

const (
	// coverageTarget is the fraction of canvas area the auto-scale heuristic
	// budgets for total object coverage, leaving headroom for rotation
	// bounding-box growth and random scatter. Empirical tunable; changing it
	// measurably shifts placement success rates.
	coverageTarget = 0.6

	// maxPlacementAttempts bounds the position search per object. This cap
	// is the only safeguard against unbounded looping on a crowded canvas.
	maxPlacementAttempts = 100
)

// Config holds the immutable per-run composition parameters.
//
// Values outside their documented ranges are clamped, not rejected.
type Config struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// SizeVariation (0-10) controls random scaling: each object's scale
	// factor is drawn uniformly from [max(0.2, 1-0.05v), 1+0.2v].
	SizeVariation int

	// OrientationVariation (0-90) is the maximum rotation in degrees;
	// angles are drawn uniformly from its ± range.
	OrientationVariation int

	// MaxOverlap (0-100) is the pairwise overlap budget in percent.
	// 0 means strict non-overlap; 100 disables collision checks.
	MaxOverlap int
}

// normalized returns a copy of c with every field clamped to its valid range.
func (c Config) normalized() Config {
	c.Width = max(1, c.Width)
	c.Height = max(1, c.Height)
	c.SizeVariation = clamp(c.SizeVariation, 0, 10)
	c.OrientationVariation = clamp(c.OrientationVariation, 0, 90)
	c.MaxOverlap = clamp(c.MaxOverlap, 0, 100)
	return c
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
