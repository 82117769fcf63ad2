package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHeroSize parses a "WxH" dimension string (e.g. "1440x720") into a
// width/height pair. Both dimensions must be positive integers.
func parseHeroSize(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("hero size must be in WxH format, got %q", s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("hero size must be in WxH format, got %q", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("hero size must be in WxH format, got %q", s)
	}

	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("hero size dimensions must be positive, got %q", s)
	}
	return w, h, nil
}
