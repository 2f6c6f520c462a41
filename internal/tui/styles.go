package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	ColorHeader    = lipgloss.Color("12")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorHighlight = lipgloss.Color("229")
	ColorSelected  = lipgloss.Color("57")
	ColorError     = lipgloss.Color("9")
	ColorMuted     = lipgloss.Color("240")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	TableSelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelected).
			Bold(false)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	HelpStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
