package storeclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/store"
)

func payload(title string, start time.Time) models.EventPayload {
	return models.EventPayload{
		Title:     title,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Color:     models.ColorGreen,
	}
}

func TestCreateEventSendsWireFormat(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/events" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Event{ID: 5, Title: got["title"], Color: models.ColorGreen})
	}))
	defer ts.Close()

	c := New(ts.URL)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ev, err := c.CreateEvent(context.Background(), payload("Dance class", start))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if ev.ID != 5 {
		t.Errorf("id %d, want server-assigned 5", ev.ID)
	}

	// The write body uses the historical field names.
	if got["date"] != start.Format(time.RFC3339) {
		t.Errorf("date field %q, want %q", got["date"], start.Format(time.RFC3339))
	}
	if got["endDate"] == "" {
		t.Error("endDate field missing")
	}
	if got["color"] != "bg-green-500" {
		t.Errorf("color field %q", got["color"])
	}
}

func TestListEventsUnwrapsDataEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []models.Event{
			{ID: 1, Title: "a"},
			{ID: 2, Title: "b"},
		}})
	}))
	defer ts.Close()

	events, err := New(ts.URL).ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 2 || events[0].Title != "a" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestListEventsEmptyData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []models.Event{}})
	}))
	defer ts.Close()

	events, err := New(ts.URL).ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("want empty slice, got %v", events)
	}
}

func TestNotFoundMapping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{
			"code": "not_found", "message": "event not found",
		}})
	}))
	defer ts.Close()

	c := New(ts.URL)
	if err := c.DeleteEvent(context.Background(), 99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete: got %v, want ErrNotFound", err)
	}
	if _, err := c.GetEvent(context.Background(), 99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("get: got %v, want ErrNotFound", err)
	}
}

func TestValidationMapping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{
			"code": "validation", "message": "title: required",
		}})
	}))
	defer ts.Close()

	_, err := New(ts.URL).CreateEvent(context.Background(), models.EventPayload{})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("got %v, want *ValidationError", err)
	}
}

func TestServerErrorIsOpaque(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{
			"code": "internal", "message": "internal server error",
		}})
	}))
	defer ts.Close()

	err := New(ts.URL).UpdateEvent(context.Background(), 1, payload("x", time.Now()))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, store.ErrNotFound) {
		t.Error("500 must not map to ErrNotFound")
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		t.Error("500 must not map to ValidationError")
	}
}

func TestTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here
	if _, err := c.ListEvents(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestHealthCheck(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Errorf("path %s, want /healthz", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer ts.Close()

	if err := New(ts.URL).HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "error"})
	}))
	defer down.Close()

	if err := New(down.URL).HealthCheck(context.Background()); err == nil {
		t.Error("expected error for unhealthy server")
	}
}

func TestDeleteNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := New(ts.URL).DeleteEvent(context.Background(), 3); err != nil {
		t.Errorf("DeleteEvent failed: %v", err)
	}
}
