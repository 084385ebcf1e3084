// Package tui holds the terminal styling shared by fieldcarbon's table
// output. Nothing here is applied unless the caller writes to a terminal.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette (ANSI 256).
const (
	ColorHeader  = lipgloss.Color("39")
	ColorBorder  = lipgloss.Color("240")
	ColorMuted   = lipgloss.Color("241")
	ColorOK      = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("214")
)

// Direction icons for net balances.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
)

// HeadingStyle styles the per-analysis heading line.
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
}

// BoxStyle frames the batch total.
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
}
