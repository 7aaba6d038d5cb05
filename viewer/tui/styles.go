package tui

import "github.com/charmbracelet/lipgloss"

// Palette
const (
	colorAccent = "#C2703D"
	colorMuted  = "#7A7A7A"
	colorOK     = "#3FA34D"
	colorFail   = "#D7263D"
	colorOnDark = "#FFF8F0"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)).
			MarginTop(1)

	loadingStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(colorOK))

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorFail))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	// frames the image URL
	imageFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorOnDark)).
			Background(lipgloss.Color(colorAccent)).
			Padding(0, 2)

	buttonDisabledStyle = buttonStyle.
			Bold(false).
			Foreground(lipgloss.Color(colorMuted)).
			Background(lipgloss.NoColor{})

	footerStyle = hintStyle.Faint(true)
)
