package ui

import "github.com/charmbracelet/lipgloss"

var (
	Green  = lipgloss.Color("10")
	Gray   = lipgloss.Color("8")
	Pink   = lipgloss.Color("212")
	Purple = lipgloss.Color("99")
	Cyan   = lipgloss.Color("14")
	Indigo = lipgloss.Color("63")
	Orange = lipgloss.Color("208")
)

// Theme provides semantic color access
type Theme struct {
	Border   lipgloss.Color
	Action   lipgloss.Color
	Glyph    lipgloss.Color
	Muted    lipgloss.Color
	Emphasis lipgloss.Color
	Data     lipgloss.Color
	Count    lipgloss.Color
}

// DefaultTheme returns the standard asciimock color theme
func DefaultTheme() Theme {
	return Theme{
		Border:   Indigo,
		Action:   Orange,
		Glyph:    Pink,
		Muted:    Gray,
		Emphasis: Purple,
		Data:     Cyan,
		Count:    Green,
	}
}
