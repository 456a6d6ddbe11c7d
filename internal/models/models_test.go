package models

import (
	"errors"
	"testing"
	"time"
)

func TestColorValid(t *testing.T) {
	for _, c := range Palette {
		if !c.Valid() {
			t.Errorf("palette color %q reported invalid", c)
		}
	}
	for _, c := range []Color{"", "bg-orange-500", "blue", "BG-BLUE-500"} {
		if c.Valid() {
			t.Errorf("color %q should be invalid", c)
		}
	}
}

func TestEventPayloadValidate(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	valid := EventPayload{Title: "Dance class", StartDate: start, EndDate: end, Color: ColorBlue}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	tests := []struct {
		name    string
		payload EventPayload
		field   string
	}{
		{"empty title", EventPayload{Title: "  ", StartDate: start, EndDate: end, Color: ColorBlue}, "title"},
		{"missing start", EventPayload{Title: "x", EndDate: end, Color: ColorBlue}, "start_date"},
		{"missing end", EventPayload{Title: "x", StartDate: start, Color: ColorBlue}, "end_date"},
		{"end before start", EventPayload{Title: "x", StartDate: end, EndDate: start, Color: ColorBlue}, "end_date"},
		{"bad color", EventPayload{Title: "x", StartDate: start, EndDate: end, Color: "bg-mauve-500"}, "color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field mismatch: got %s, want %s", verr.Field, tc.field)
			}
		})
	}
}

func TestEventPayloadValidateEqualInstants(t *testing.T) {
	at := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	p := EventPayload{Title: "standup", StartDate: at, EndDate: at, Color: ColorGreen}
	if err := p.Validate(); err != nil {
		t.Fatalf("zero-length range should be valid: %v", err)
	}
}
