// Package editor holds the state machine behind the event modal: seeding
// start/end instants from a clicked day or an existing event, applying
// time-of-day edits with their auto-correction rule, and validating the
// range on submit.
package editor

import (
	"errors"
	"strings"
	"time"

	"github.com/noexpect9/course-schedule/internal/models"
)

// Submit rejections, surfaced to the user verbatim.
var (
	ErrTitleRequired  = errors.New("title is required")
	ErrEndBeforeStart = errors.New("end time must not be before start time")
)

// DefaultStartHour is the seeded time-of-day for a new event on a clicked day.
const DefaultStartHour = 9

// Editor tracks the in-progress edit of a single event. It never touches the
// store; Submit hands a validated payload to the caller.
type Editor struct {
	title   string
	start   time.Time
	end     time.Time
	color   models.Color
	eventID int64
	editing bool
}

// NewForDay returns an editor seeded for a new event on the given day.
// Start is the day at DefaultStartHour, end equals start.
func NewForDay(day time.Time) *Editor {
	start := time.Date(day.Year(), day.Month(), day.Day(), DefaultStartHour, 0, 0, 0, day.Location())
	return &Editor{
		start: start,
		end:   start,
		color: models.ColorBlue,
	}
}

// NewForEvent returns an editor seeded from an existing event.
func NewForEvent(ev models.Event) *Editor {
	return &Editor{
		title:   ev.Title,
		start:   ev.StartDate,
		end:     ev.EndDate,
		color:   ev.Color,
		eventID: ev.ID,
		editing: true,
	}
}

func (e *Editor) Title() string           { return e.title }
func (e *Editor) StartDate() time.Time    { return e.start }
func (e *Editor) EndDate() time.Time      { return e.end }
func (e *Editor) Color() models.Color     { return e.color }
func (e *Editor) SetTitle(title string)   { e.title = title }
func (e *Editor) SetColor(c models.Color) { e.color = c }

// Editing reports whether the editor targets an existing event, which makes
// delete available. EventID returns that event's id.
func (e *Editor) Editing() bool  { return e.editing }
func (e *Editor) EventID() int64 { return e.eventID }

// SetStartTime replaces the time-of-day of the start instant, keeping its
// date. If the new start passes the current end, end is pulled up to match
// so the range never goes invalid mid-edit.
func (e *Editor) SetStartTime(hour, min int) {
	e.start = atClock(e.start, hour, min)
	if e.start.After(e.end) {
		e.end = e.start
	}
}

// SetEndTime replaces the time-of-day of the end instant, keeping its date.
// The start is left alone; an end earlier than start is caught at submit.
func (e *Editor) SetEndTime(hour, min int) {
	e.end = atClock(e.end, hour, min)
}

// Submit validates the current state and returns the payload to persist.
// On rejection the editor state is unchanged and no payload is emitted.
func (e *Editor) Submit() (models.EventPayload, error) {
	title := strings.TrimSpace(e.title)
	if title == "" {
		return models.EventPayload{}, ErrTitleRequired
	}
	if e.start.After(e.end) {
		return models.EventPayload{}, ErrEndBeforeStart
	}
	return models.EventPayload{
		Title:     title,
		StartDate: e.start,
		EndDate:   e.end,
		Color:     e.color,
	}, nil
}

func atClock(t time.Time, hour, min int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, t.Location())
}
