package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noexpect9/course-schedule/internal/models"
)

var (
	mutedColor   = lipgloss.Color("241")
	primaryColor = lipgloss.Color("33")
	errorColor   = lipgloss.Color("196")

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(errorColor).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, true).
			BorderForeground(lipgloss.Color("238"))

	selectedCellStyle = cellStyle.
				BorderForeground(primaryColor)

	dayNumStyle      = lipgloss.NewStyle().Bold(true)
	outMonthDayStyle = lipgloss.NewStyle().Foreground(mutedColor)
	todayStyle       = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255")).
				Background(primaryColor)

	highlightedEventStyle = lipgloss.NewStyle().Reverse(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	// eventStyles maps palette tokens to terminal colors approximating
	// the web palette.
	eventStyles = map[models.Color]lipgloss.Style{
		models.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		models.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		models.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		models.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
		models.ColorPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		models.ColorIndigo: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		models.ColorTeal:   lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	}
)

func eventStyle(c models.Color) lipgloss.Style {
	if s, ok := eventStyles[c]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(mutedColor)
}
