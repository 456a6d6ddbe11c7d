// Package dateparse parses the day and clock inputs accepted by the CLI.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDay parses a day input into midnight of that day in the local zone.
// Uses the current time as the reference point.
//
// Supported formats:
//   - Exact dates: "2026-09-01"
//   - Keywords: "today", "tomorrow"
//   - Relative days: "+7d"
//   - Day names: "monday", "tuesday", ... (next occurrence)
func ParseDay(input string) (time.Time, error) {
	return ParseDayFrom(input, time.Now())
}

// ParseDayFrom parses a day input relative to the given reference time.
// This variant enables deterministic testing with a fixed "now".
func ParseDayFrom(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty day input")
	}

	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t, nil
	}

	switch input {
	case "today":
		return midnight(now), nil
	case "tomorrow":
		return midnight(now.AddDate(0, 0, 1)), nil
	}

	// Relative offset: +Nd
	if strings.HasPrefix(input, "+") && strings.HasSuffix(input, "d") {
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err == nil && n >= 0 {
			return midnight(now.AddDate(0, 0, n)), nil
		}
	}

	// Day names: next occurrence of that weekday.
	dayMap := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if target, ok := dayMap[input]; ok {
		daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
		if daysAhead == 0 {
			daysAhead = 7 // always advance to next occurrence
		}
		return midnight(now.AddDate(0, 0, daysAhead)), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized day format: %q", input)
}

// ParseClock parses an "HH:MM" time-of-day into hour and minute.
func ParseClock(input string) (hour, min int, err error) {
	input = strings.TrimSpace(input)
	parts := strings.Split(input, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q (use HH:MM)", input)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", input)
	}
	min, err = strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", input)
	}
	return hour, min, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
