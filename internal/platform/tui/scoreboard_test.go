package tui

import (
	"strings"
	"testing"
)

func TestCenterText(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		width       int
		wantPadding int
	}{
		{"plain text", "MISSION LOG", 41, 15},
		{"styled text measures visible cells", "\x1b[1mMISSION LOG\x1b[0m", 41, 15},
		{"wider than screen", "MISSION LOG", 6, 0},
		{"exact fit", "MISSION LOG", 11, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centerText(tt.text, tt.width)
			if !strings.HasSuffix(got, tt.text) {
				t.Fatalf("centerText(%q) = %q, should keep the text intact", tt.text, got)
			}
			padding := len(got) - len(tt.text)
			if padding != tt.wantPadding {
				t.Errorf("centerText(%q, %d) padding = %d, expected %d",
					tt.text, tt.width, padding, tt.wantPadding)
			}
		})
	}
}
