package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
//
//nolint:gochecknoglobals // Shared style definitions.
var (
	ColorHeader = lipgloss.Color("39")  // blue
	ColorLabel  = lipgloss.Color("245") // gray
	ColorValue  = lipgloss.Color("255") // white
	ColorGreen  = lipgloss.Color("42")
	ColorMuted  = lipgloss.Color("241")
)

// Styles used by the summary view.
//
//nolint:gochecknoglobals // Shared style definitions.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	GreenStyle  = lipgloss.NewStyle().Foreground(ColorGreen)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				Padding(0, 1)
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)
)
