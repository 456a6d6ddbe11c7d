package models

import (
	"fmt"
	"strings"
	"time"
)

// Color is a presentation tag attached to an event. The palette is closed:
// writes carrying a token outside it are rejected at the boundary instead of
// being stored verbatim.
type Color string

const (
	ColorBlue   Color = "bg-blue-500"
	ColorGreen  Color = "bg-green-500"
	ColorRed    Color = "bg-red-500"
	ColorYellow Color = "bg-yellow-500"
	ColorPurple Color = "bg-purple-500"
	ColorPink   Color = "bg-pink-500"
	ColorIndigo Color = "bg-indigo-500"
	ColorTeal   Color = "bg-teal-500"
)

// Palette lists every valid color token, in display order.
var Palette = []Color{
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorYellow,
	ColorPurple,
	ColorPink,
	ColorIndigo,
	ColorTeal,
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// Event represents a scheduled calendar event. The JSON tags match the wire
// format: snake_case date fields serialized as RFC 3339 instants.
type Event struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Color     Color     `json:"color"`
}

// EventPayload carries the writable fields of an event through the editor,
// the sync engine, and the store boundary. IDs are assigned by the store.
type EventPayload struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Color     Color
}

// Validate checks the payload against the persistence invariants: non-empty
// title, both instants present, end not before start, color in the palette.
func (p EventPayload) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if p.StartDate.IsZero() {
		return &ValidationError{Field: "start_date", Reason: "required"}
	}
	if p.EndDate.IsZero() {
		return &ValidationError{Field: "end_date", Reason: "required"}
	}
	if p.EndDate.Before(p.StartDate) {
		return &ValidationError{Field: "end_date", Reason: "must not be before start_date"}
	}
	if !p.Color.Valid() {
		return &ValidationError{Field: "color", Reason: fmt.Sprintf("unknown color %q", p.Color)}
	}
	return nil
}

// ValidationError describes a rejected write. It is surfaced distinctly from
// not-found and store failures so callers can report it to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
