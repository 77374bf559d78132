package layout

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		percent       int
		want          int
	}{
		{"percent below min uses min", 100, 40, 50}, // 40 < 50
		{"percent in range", 160, 40, 64},
		{"clamped to max", 300, 40, 80},
		{"small terminal leaves margin", 40, 40, 36}, // min 50 > 40-4
		{"tiny terminal clamps to 1", 3, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CalculateModalWidth(tt.terminalWidth, tt.percent, cfg), tt.want)
		})
	}
}
