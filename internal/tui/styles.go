package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = "#FF0033"
	colorSuccess = "#04B575"
	colorWarning = "#E5A50A"
	colorError   = "#FF5555"
	colorInfo    = "#626262"
	colorBorder  = "#874BFD"
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginTop(1)

	CaptionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo)).
		MarginBottom(1)

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorWarning))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	LabelStyle = lipgloss.NewStyle().Bold(true)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)
)

// bannerStyle maps a banner level to its style.
func bannerStyle(level string) lipgloss.Style {
	switch level {
	case "success":
		return SuccessStyle
	case "warning":
		return WarningStyle
	case "error":
		return ErrorStyle
	default:
		return InfoStyle
	}
}
