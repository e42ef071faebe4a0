package list

import "testing"

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name             string
		forceProgressive bool
		forceBuffered    bool
		terminal         bool
		want             RenderMode
	}{
		{"terminal defaults to progressive", false, false, true, Progressive},
		{"pipe defaults to buffered", false, false, false, Buffered},
		{"force progressive on pipe", true, false, false, Progressive},
		{"force buffered on terminal", false, true, true, Buffered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMode(tt.forceProgressive, tt.forceBuffered, tt.terminal)
			if got != tt.want {
				t.Errorf("DetectMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderModeString(t *testing.T) {
	if Progressive.String() != "progressive" || Buffered.String() != "buffered" {
		t.Error("unexpected mode names")
	}
}
