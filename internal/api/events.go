package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/store"
)

// eventRequest is the write body for POST /events and PUT /events/{id}.
// Field names follow the historical client payload: the start instant
// arrives as "date" while responses carry snake_case "start_date".
type eventRequest struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	EndDate string `json:"endDate"`
	Color   string `json:"color"`
}

// listResponse wraps the event collection for GET /events.
type listResponse struct {
	Data []models.Event `json:"data"`
}

// messageResponse confirms a mutation without echoing the entity.
type messageResponse struct {
	Message string `json:"message"`
}

// parseEventRequest decodes and validates a write body into a payload.
// A nil error means the payload passed models validation.
func parseEventRequest(r *http.Request) (models.EventPayload, error) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.EventPayload{}, &models.ValidationError{Field: "body", Reason: "malformed JSON"}
	}
	if req.Title == "" || req.Date == "" || req.EndDate == "" {
		return models.EventPayload{}, &models.ValidationError{Field: "body", Reason: "missing required fields"}
	}

	start, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return models.EventPayload{}, &models.ValidationError{Field: "date", Reason: "not an RFC 3339 instant"}
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return models.EventPayload{}, &models.ValidationError{Field: "endDate", Reason: "not an RFC 3339 instant"}
	}

	p := models.EventPayload{
		Title:     req.Title,
		StartDate: start,
		EndDate:   end,
		Color:     models.Color(req.Color),
	}
	if err := p.Validate(); err != nil {
		return models.EventPayload{}, err
	}
	return p, nil
}

// eventID extracts and parses the {id} path value.
func eventID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// writeStoreError maps store failures onto the REST error surface.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, ErrCodeValidation, verr.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "event not found")
	default:
		logFor(r.Context()).Error("store", "err", err)
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// handleListEvents returns the full collection ordered by start ascending.
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListEvents(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: events})
}

// handleCreateEvent persists a new event and echoes it with its assigned id.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	p, err := parseEventRequest(r)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	ev, err := s.store.CreateEvent(r.Context(), p)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// handleGetEvent returns a single event by id.
func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid event id")
		return
	}

	ev, err := s.store.GetEvent(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// handleUpdateEvent overwrites the event identified by id.
func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid event id")
		return
	}

	p, err := parseEventRequest(r)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	if err := s.store.UpdateEvent(r.Context(), id, p); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "event updated successfully"})
}

// handleDeleteEvent removes the event identified by id. Success is a bare
// 204 with no body.
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid event id")
		return
	}

	if err := s.store.DeleteEvent(r.Context(), id); err != nil {
		writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
