// Package output provides styled terminal output helpers (success, error,
// event formatting) using lipgloss.
package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/noexpect9/course-schedule/internal/models"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dayStyle     = lipgloss.NewStyle().Bold(true)

	// colorStyles maps palette tokens to terminal colors approximating
	// the web palette.
	colorStyles = map[models.Color]lipgloss.Style{
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

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// DayHeading prints a bold day heading for grouped listings.
func DayHeading(day time.Time) {
	fmt.Println(dayStyle.Render(day.Format("Mon 2006-01-02")))
}

// EventLine prints one event as an indented list row.
func EventLine(ev models.Event) {
	style, ok := colorStyles[ev.Color]
	if !ok {
		style = subtleStyle
	}
	span := fmt.Sprintf("%s-%s", ev.StartDate.Local().Format("15:04"), ev.EndDate.Local().Format("15:04"))
	fmt.Printf("  %s  %s %s\n",
		subtleStyle.Render(fmt.Sprintf("#%d", ev.ID)),
		style.Render("●"),
		fmt.Sprintf("%s %s", span, ev.Title))
}

// EventDetail prints the full field view of a single event.
func EventDetail(ev models.Event) {
	style, ok := colorStyles[ev.Color]
	if !ok {
		style = subtleStyle
	}
	fmt.Printf("%s %s\n", style.Render("●"), dayStyle.Render(ev.Title))
	fmt.Printf("  id:     %d\n", ev.ID)
	fmt.Printf("  start:  %s\n", ev.StartDate.Local().Format(time.RFC1123))
	fmt.Printf("  end:    %s\n", ev.EndDate.Local().Format(time.RFC1123))
	fmt.Printf("  color:  %s\n", ev.Color)
}
