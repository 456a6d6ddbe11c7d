// Package store defines the event persistence boundary and its local SQLite
// implementation. The remote REST implementation lives in storeclient; both
// satisfy EventStore and are selected by configuration.
package store

import (
	"context"
	"errors"

	"github.com/noexpect9/course-schedule/internal/models"
)

// ErrNotFound is returned when a mutation or lookup targets an id absent
// from the store.
var ErrNotFound = errors.New("event not found")

// EventStore is the persistence boundary for events. Implementations assign
// ids on create and return listings ordered by start instant ascending.
// Rejected writes surface *models.ValidationError; unknown ids surface
// ErrNotFound; anything else is an opaque store failure.
type EventStore interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, p models.EventPayload) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, p models.EventPayload) error
	DeleteEvent(ctx context.Context, id int64) error
	Close() error
}
