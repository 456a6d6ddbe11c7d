// Package calendar derives the visible month grid and the per-day event
// index the UI renders from. Everything here is pure: no store access, no
// clock reads beyond the reference date passed in.
package calendar

import "time"

// GridRows and GridCols fix the visible grid shape. Every month is rendered
// as six Sunday-first weeks so the layout never jumps between months.
const (
	GridRows = 6
	GridCols = 7
)

const dayKeyLayout = "2006-01-02"

// MonthGrid returns the 42 days shown for the month containing ref, starting
// on the Sunday on or before the 1st. Days outside ref's month are included;
// callers dim them rather than omit them. All returned days are normalized
// to midnight in ref's location.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, 0, GridRows*GridCols)
	for i := 0; i < GridRows*GridCols; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// DayKey formats t as the YYYY-MM-DD bucket key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
