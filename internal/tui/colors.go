package tui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bannerStyle  = cyanStyle.Bold(true)
)

// ColorGreen colors text green
func ColorGreen(text string) string {
	return successStyle.Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return failureStyle.Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return cyanStyle.Render(text)
}

// SuccessMarker renders "✓ <text>"
func SuccessMarker(text string) string {
	return ColorGreen("✓ " + text)
}

// FailureMarker renders "✗ <text>"
func FailureMarker(text string) string {
	return ColorRed("✗ " + text)
}

// Banner renders a title between two separator rules
func Banner(title string) string {
	const rule = "========================================"
	return bannerStyle.Render(rule) + "\n" + title + "\n" + bannerStyle.Render(rule)
}
