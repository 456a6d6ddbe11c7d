// Package sync reconciles the locally held event collection with the
// backing store. Every mutation goes through the Engine, and every
// successful mutation ends in a full reload from the store, so there is
// never a second source of truth to merge.
package sync

import (
	"context"

	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/store"
)

// Engine is the single entry point for event mutations. It owns the local
// collection; callers read snapshots via Events and never mutate them.
//
// The engine is not safe for concurrent use. The UI drives at most one
// mutation at a time, and each mutation's completion path resynchronizes,
// so a stale read self-corrects on the next refresh.
type Engine struct {
	store  store.EventStore
	events []models.Event
}

// New creates an engine over the given store. Call LoadAll before reading.
func New(st store.EventStore) *Engine {
	return &Engine{store: st, events: []models.Event{}}
}

// Events returns the current local collection, ordered by start ascending.
func (e *Engine) Events() []models.Event {
	return e.events
}

// LoadAll replaces the local collection with the store's, wholesale. An
// empty store yields an empty collection, not an error. On failure the
// previous collection is kept.
func (e *Engine) LoadAll(ctx context.Context) error {
	events, err := e.store.ListEvents(ctx)
	if err != nil {
		return err
	}
	if events == nil {
		events = []models.Event{}
	}
	e.events = events
	return nil
}

// Create persists a new event, then resynchronizes. No optimistic insert is
// kept past the round trip; the reload is what surfaces the stored event
// with its assigned id.
func (e *Engine) Create(ctx context.Context, p models.EventPayload) error {
	if _, err := e.store.CreateEvent(ctx, p); err != nil {
		return err
	}
	return e.LoadAll(ctx)
}

// Update overwrites the event identified by id, then resynchronizes.
// An unknown id surfaces store.ErrNotFound and leaves local state alone.
func (e *Engine) Update(ctx context.Context, id int64, p models.EventPayload) error {
	if err := e.store.UpdateEvent(ctx, id, p); err != nil {
		return err
	}
	return e.LoadAll(ctx)
}

// Delete removes the event identified by id, then resynchronizes.
// An unknown id surfaces store.ErrNotFound and leaves local state alone.
func (e *Engine) Delete(ctx context.Context, id int64) error {
	if err := e.store.DeleteEvent(ctx, id); err != nil {
		return err
	}
	return e.LoadAll(ctx)
}
