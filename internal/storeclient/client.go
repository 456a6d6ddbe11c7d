// Package storeclient implements the remote EventStore over the events REST
// surface. It is the network twin of the local SQLite store: same interface,
// same error taxonomy, persistence handled by the server.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/store"
)

// Client is an HTTP client for the events server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

var _ store.EventStore = (*Client)(nil)

// New creates a new remote store client.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// eventRequest is the write body the server expects. The start instant
// travels as "date"; responses come back with snake_case fields.
type eventRequest struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	EndDate string `json:"endDate"`
	Color   string `json:"color"`
}

func requestBody(p models.EventPayload) eventRequest {
	return eventRequest{
		Title:   p.Title,
		Date:    p.StartDate.Format(time.RFC3339),
		EndDate: p.EndDate.Format(time.RFC3339),
		Color:   string(p.Color),
	}
}

// listResponse wraps the collection returned by GET /events.
type listResponse struct {
	Data []models.Event `json:"data"`
}

// HealthCheck hits the /healthz endpoint to verify server reachability.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, "GET", "/healthz", nil, nil)
}

// ListEvents fetches the full collection, ordered by start ascending.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var resp listResponse
	if err := c.do(ctx, "GET", "/events", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []models.Event{}, nil
	}
	return resp.Data, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var ev models.Event
	if err := c.do(ctx, "GET", fmt.Sprintf("/events/%d", id), nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// CreateEvent persists a new event and returns it with its server-assigned id.
func (c *Client) CreateEvent(ctx context.Context, p models.EventPayload) (*models.Event, error) {
	var ev models.Event
	if err := c.do(ctx, "POST", "/events", requestBody(p), &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent overwrites the event identified by id.
func (c *Client) UpdateEvent(ctx context.Context, id int64, p models.EventPayload) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/events/%d", id), requestBody(p), nil)
}

// DeleteEvent removes the event identified by id.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/events/%d", id), nil, nil)
}

// Close releases idle connections. The remote store has no further teardown.
func (c *Client) Close() error {
	c.HTTP.CloseIdleConnections()
	return nil
}

// apiError is the standard error body from the server.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// do executes a request and maps error responses onto the store taxonomy:
// 404 becomes store.ErrNotFound, 400 becomes *models.ValidationError, and
// everything else is an opaque wrapped failure.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var env errorEnvelope
		if json.Unmarshal(respBody, &env) == nil && env.Error.Code != "" {
			switch resp.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("%w: %s", store.ErrNotFound, env.Error.Message)
			case http.StatusBadRequest:
				return &models.ValidationError{Field: env.Error.Code, Reason: env.Error.Message}
			default:
				return fmt.Errorf("%s: %s", env.Error.Code, env.Error.Message)
			}
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
