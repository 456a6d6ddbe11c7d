package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noexpect9/course-schedule/internal/models"
	eventsync "github.com/noexpect9/course-schedule/internal/sync"
)

// Messages produced by engine commands.
type (
	eventsLoadedMsg struct{ events []models.Event }
	loadFailedMsg   struct{ err error }
	saveDoneMsg     struct{ err error }
	deleteDoneMsg   struct{ err error }
)

// loadEvents refreshes the local collection from the store.
func loadEvents(engine *eventsync.Engine) tea.Cmd {
	return func() tea.Msg {
		if err := engine.LoadAll(context.Background()); err != nil {
			return loadFailedMsg{err: err}
		}
		return eventsLoadedMsg{events: engine.Events()}
	}
}

// createEvent persists a new event; the engine resynchronizes on success.
func createEvent(engine *eventsync.Engine, p models.EventPayload) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: engine.Create(context.Background(), p)}
	}
}

// updateEvent persists changes to an existing event.
func updateEvent(engine *eventsync.Engine, id int64, p models.EventPayload) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: engine.Update(context.Background(), id, p)}
	}
}

// deleteEvent removes an event by id.
func deleteEvent(engine *eventsync.Engine, id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: engine.Delete(context.Background(), id)}
	}
}
