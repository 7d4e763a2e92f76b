package viz

import "github.com/charmbracelet/lipgloss"

var (
	// Panel frames the status report block.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	// Title heads the report and mode views.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	// Label and Value render the report's key/value lines.
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	// StatusEnabled / StatusDisabled color the status line.
	StatusEnabled = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusDisabled = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	// Subtle renders key hints and separators.
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Heatmap shading, negative through positive phase.
	heatLow = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	heatMid = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	heatHi  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)
