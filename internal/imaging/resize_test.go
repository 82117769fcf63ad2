package imaging

import (
	"image"
	"testing"
)

func TestResizeToWidth(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		width        int
		wantW, wantH int
	}{
		{"downscale landscape", 100, 50, 20, 20, 10},
		{"upscale landscape", 100, 50, 200, 200, 100},
		{"portrait", 50, 100, 25, 25, 50},
		{"rounding", 100, 33, 10, 10, 3},
		{"height floor", 500, 1, 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			out := ResizeToWidth(src, tt.width)
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("ResizeToWidth(%dx%d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.width, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}
