package dateparse

import (
	"testing"
	"time"
)

// Fixed reference: Wednesday 2026-09-16, 14:05 local.
var ref = time.Date(2026, 9, 16, 14, 5, 0, 0, time.Local)

func TestParseDayFrom(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{"today", time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local)},
		{"tomorrow", time.Date(2026, 9, 17, 0, 0, 0, 0, time.Local)},
		{"+7d", time.Date(2026, 9, 23, 0, 0, 0, 0, time.Local)},
		{"friday", time.Date(2026, 9, 18, 0, 0, 0, 0, time.Local)},
		{"wednesday", time.Date(2026, 9, 23, 0, 0, 0, 0, time.Local)}, // same weekday advances a week
		{"  Monday ", time.Date(2026, 9, 21, 0, 0, 0, 0, time.Local)},
	}

	for _, tc := range tests {
		got, err := ParseDayFrom(tc.input, ref)
		if err != nil {
			t.Errorf("ParseDayFrom(%q) failed: %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDayFrom(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseDayFromRejects(t *testing.T) {
	for _, input := range []string{"", "not-a-day", "+xd", "2026-13-40", "9/16/2026"} {
		if _, err := ParseDayFrom(input, ref); err == nil {
			t.Errorf("ParseDayFrom(%q) should fail", input)
		}
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("09:30")
	if err != nil || h != 9 || m != 30 {
		t.Errorf("ParseClock(09:30) = %d:%d, %v", h, m, err)
	}
	h, m, err = ParseClock(" 23:59 ")
	if err != nil || h != 23 || m != 59 {
		t.Errorf("ParseClock(23:59) = %d:%d, %v", h, m, err)
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, input := range []string{"", "24:00", "12:60", "noon", "12", "12:3a"} {
		if _, _, err := ParseClock(input); err == nil {
			t.Errorf("ParseClock(%q) should fail", input)
		}
	}
}
