package compose

// Rect is an axis-aligned rectangle in canvas coordinates, recording the
// bounding box of a placed object.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Area returns the rectangle's area in pixels.
func (r Rect) Area() int {
	return r.W * r.H
}

// OverlapPercentage returns how much of the smaller of the two rectangles
// is covered by their intersection, as a percentage in [0, 100].
//
// The denominator is deliberately the smaller area: a small object fully
// covered by a larger one reads as 100% overlap rather than a diluted
// fraction of the big one, which keeps small objects from being totally
// occluded even under a lenient overlap budget.
//
// Non-intersecting or merely touching rectangles yield 0, as do degenerate
// (zero-area) rectangles.
func OverlapPercentage(a, b Rect) float64 {
	ix := max(a.X, b.X)
	iy := max(a.Y, b.Y)
	iw := min(a.X+a.W, b.X+b.W) - ix
	ih := min(a.Y+a.H, b.Y+b.H) - iy

	if iw <= 0 || ih <= 0 {
		return 0
	}

	minArea := min(a.Area(), b.Area())
	if minArea == 0 {
		return 0
	}

	return float64(iw*ih) / float64(minArea) * 100
}
