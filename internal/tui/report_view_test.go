package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetDirection(t *testing.T) {
	tests := []struct {
		name      string
		net       float64
		wantIcon  string
		wantColor string
	}{
		{"net source", 1.5, IconArrowUp, string(ColorWarning)},
		{"net sink", -0.2, IconArrowDown, string(ColorOK)},
		{"balanced", 0, IconArrowRight, string(ColorMuted)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, color := NetDirection(tt.net)
			assert.Equal(t, tt.wantIcon, icon)
			assert.Equal(t, tt.wantColor, string(color))
		})
	}
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, RenderNet(2, "2.000 tCO2e"), "2.000 tCO2e")
	assert.Contains(t, RenderNet(2, "2.000 tCO2e"), IconArrowUp)
	assert.Contains(t, RenderHeading("north-field"), "north-field")
	assert.Contains(t, RenderBox("Total"), "Total")
}
