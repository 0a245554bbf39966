package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Levels, ordered from least to most concerning.
var (
	LevelLow = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	LevelMedium = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	LevelHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// LevelStyle picks the style for a risk or stress label.
func LevelStyle(label string) lipgloss.Style {
	switch label {
	case "Bajo riesgo", "Leve":
		return LevelLow
	case "Riesgo medio", "Moderado":
		return LevelMedium
	case "Alto riesgo", "Alto":
		return LevelHigh
	default:
		return Body
	}
}
