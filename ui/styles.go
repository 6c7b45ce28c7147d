package ui

import "github.com/charmbracelet/lipgloss"

var (
	Bold = lipgloss.NewStyle().Bold(true)

	theme = DefaultTheme()

	// Content
	Header = Bold.Foreground(theme.Emphasis)
	Label  = lipgloss.NewStyle().Foreground(theme.Muted)
	Value  = lipgloss.NewStyle().Foreground(theme.Data)
	Count  = Bold.Foreground(theme.Count)
	Muted  = lipgloss.NewStyle().Foreground(theme.Muted)

	// Mockup parts
	Border = lipgloss.NewStyle().Foreground(theme.Border)
	Action = Bold.Foreground(theme.Action)
	Glyph  = lipgloss.NewStyle().Foreground(theme.Glyph)
)
