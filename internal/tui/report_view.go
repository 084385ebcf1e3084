package tui

import "github.com/charmbracelet/lipgloss"

// NetDirection returns the arrow and color for a net balance in t CO2e:
// up for a net source, down for a net sink.
func NetDirection(net float64) (string, lipgloss.Color) {
	switch {
	case net > 0:
		return IconArrowUp, ColorWarning
	case net < 0:
		return IconArrowDown, ColorOK
	default:
		return IconArrowRight, ColorMuted
	}
}

// RenderNet styles an already formatted net balance with its direction.
func RenderNet(net float64, formatted string) string {
	icon, color := NetDirection(net)
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(formatted + " " + icon)
}

// RenderHeading styles an analysis heading.
func RenderHeading(text string) string {
	return HeadingStyle().Render(text)
}

// RenderBox frames text in the summary box.
func RenderBox(text string) string {
	return BoxStyle().Render(text)
}
