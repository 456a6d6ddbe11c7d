package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/noexpect9/course-schedule/internal/calendar"
	"github.com/noexpect9/course-schedule/internal/models"
)

const minWidth = 7*8 + 1

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// renderView renders the month grid, or the modal editor over it.
func (m Model) renderView() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < minWidth {
		return "Terminal too narrow for the calendar grid."
	}

	header := headerStyle.Render(m.month.Format("January 2006"))
	if m.status != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, statusStyle.Render(m.status))
	}

	grid := m.renderGrid()
	footer := helpStyle.Render(m.help.View(m.keys))

	base := lipgloss.JoinVertical(lipgloss.Left, header, grid, footer)

	if m.form != nil {
		modal := modalStyle.Render(m.form.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")))
	}

	return base
}

// renderGrid lays out the 6x7 day grid.
func (m Model) renderGrid() string {
	days := calendar.MonthGrid(m.month)

	cellWidth := (m.width - 1) / calendar.GridCols
	// Rows share the space left after header, weekday row, and footer.
	cellHeight := (m.height - 4) / calendar.GridRows
	if cellHeight < 3 {
		cellHeight = 3
	}

	var weekdays []string
	for _, name := range weekdayNames {
		weekdays = append(weekdays, weekdayStyle.Width(cellWidth).Render(name))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, weekdays...)

	rows := make([]string, 0, calendar.GridRows)
	for r := 0; r < calendar.GridRows; r++ {
		cells := make([]string, 0, calendar.GridCols)
		for c := 0; c < calendar.GridCols; c++ {
			day := days[r*calendar.GridCols+c]
			cells = append(cells, m.renderCell(day, cellWidth, cellHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}

// renderCell renders a single day: the day number plus as many event rows
// as fit.
func (m Model) renderCell(day time.Time, width, height int) string {
	inner := width - 2 // border + padding column
	if inner < 1 {
		inner = 1
	}

	num := fmt.Sprintf("%2d", day.Day())
	switch {
	case calendar.SameDay(day, time.Now()):
		num = todayStyle.Render(num)
	case !calendar.SameMonth(day, m.month):
		num = outMonthDayStyle.Render(num)
	default:
		num = dayNumStyle.Render(num)
	}

	lines := []string{num}
	events := m.buckets[calendar.DayKey(day)]
	selected := calendar.SameDay(day, m.selected)
	for i, ev := range events {
		if len(lines) >= height-1 {
			lines = append(lines, outMonthDayStyle.Render(fmt.Sprintf("+%d more", len(events)-i)))
			break
		}
		lines = append(lines, m.renderEventRow(ev, inner, selected && i == m.eventIdx))
	}

	content := lipgloss.NewStyle().Width(inner).Height(height - 1).Render(strings.Join(lines, "\n"))
	if selected {
		return selectedCellStyle.Render(content)
	}
	return cellStyle.Render(content)
}

// renderEventRow renders one event inside a cell, truncated to fit.
func (m Model) renderEventRow(ev models.Event, width int, highlighted bool) string {
	row := fmt.Sprintf("%s %s", ev.StartDate.Local().Format("15:04"), ev.Title)
	row = ansi.Truncate(row, width, "…")
	style := eventStyle(ev.Color)
	if highlighted {
		style = highlightedEventStyle
	}
	return style.Render(row)
}
