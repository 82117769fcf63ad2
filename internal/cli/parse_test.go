package cli

import "testing"

func TestParseHeroSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"standard", "1440x720", 1440, 720, false},
		{"uppercase separator", "800X600", 800, 600, false},
		{"surrounding spaces", " 1024x768 ", 1024, 768, false},
		{"missing separator", "1440", 0, 0, true},
		{"too many parts", "1x2x3", 0, 0, true},
		{"non-numeric", "widexhigh", 0, 0, true},
		{"zero dimension", "0x720", 0, 0, true},
		{"negative dimension", "1440x-720", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseHeroSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseHeroSize(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHeroSize(%q) failed: %v", tt.input, err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("parseHeroSize(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
