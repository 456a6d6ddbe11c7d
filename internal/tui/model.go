// Package tui renders the interactive month calendar: a 6x7 day grid, event
// rows inside each day cell, and a modal editor for creating and editing
// events. All mutations dispatch through the sync engine.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noexpect9/course-schedule/internal/calendar"
	"github.com/noexpect9/course-schedule/internal/models"
	eventsync "github.com/noexpect9/course-schedule/internal/sync"
)

// Model is the bubbletea model for the calendar view.
type Model struct {
	engine *eventsync.Engine

	events  []models.Event
	buckets map[string][]models.Event

	month    time.Time // first day of the displayed month
	selected time.Time // selected day, midnight
	eventIdx int       // highlighted event within the selected day, -1 = none

	form   *FormState // nil when the editor is closed
	status string

	keys keyMap
	help help.Model

	width  int
	height int
}

// New creates the calendar model over the given engine.
func New(engine *eventsync.Engine) Model {
	now := time.Now()
	return Model{
		engine:   engine,
		buckets:  map[string][]models.Event{},
		month:    firstOfMonth(now),
		selected: midnight(now),
		eventIdx: -1,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init loads the event collection.
func (m Model) Init() tea.Cmd {
	return loadEvents(m.engine)
}

// Update handles messages and key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventsLoadedMsg:
		m.events = msg.events
		m.buckets = calendar.BucketByDay(m.events)
		m.clampEventIdx()
		return m, nil

	case loadFailedMsg:
		m.status = "load failed: " + msg.err.Error()
		return m, nil

	case saveDoneMsg:
		// Validation rejects never reach here; they keep the modal open.
		// A transport or store failure surfaces without local changes.
		m.form = nil
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.refreshFromEngine()
		return m, nil

	case deleteDoneMsg:
		// An absent resource and a confirmed delete are both terminal
		// states; only the status line differs.
		m.form = nil
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.refreshFromEngine()
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateGrid(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// updateGrid handles key input while the grid has focus.
func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(0, 1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1, 0)

	case key.Matches(msg, m.keys.PrevMonth):
		m.setMonth(m.month.AddDate(0, -1, 0))
	case key.Matches(msg, m.keys.NextMonth):
		m.setMonth(m.month.AddDate(0, 1, 0))
	case key.Matches(msg, m.keys.Today):
		now := time.Now()
		m.month = firstOfMonth(now)
		m.selected = midnight(now)
		m.eventIdx = -1

	case key.Matches(msg, m.keys.NextEvent):
		if day := m.selectedDayEvents(); len(day) > 0 {
			m.eventIdx++
			if m.eventIdx >= len(day) {
				m.eventIdx = -1
			}
		}

	case key.Matches(msg, m.keys.New):
		m.form = newFormForDay(m.selected)
		return m, m.form.form.Init()

	case key.Matches(msg, m.keys.Open):
		day := m.selectedDayEvents()
		if m.eventIdx >= 0 && m.eventIdx < len(day) {
			m.form = newFormForEvent(day[m.eventIdx])
		} else if len(day) > 0 {
			m.form = newFormForEvent(day[0])
		} else {
			m.form = newFormForDay(m.selected)
		}
		return m, m.form.form.Init()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateForm routes messages to the modal editor.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.form = nil
			m.status = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			if m.form.Editing() {
				id := m.form.EventID()
				m.form = nil
				return m, deleteEvent(m.engine, id)
			}
		}
	}

	cmd := m.form.Update(msg)

	if m.form.Completed() {
		payload, err := m.form.Submit()
		if err != nil {
			// Rejected: no save dispatched, editor stays open.
			m.status = err.Error()
			m.form.Reopen()
			return m, m.form.form.Init()
		}
		// The editor closes at dispatch time. Leaving it open until the
		// save confirms would re-enter this branch on every message that
		// arrives in flight and dispatch the save again.
		form := m.form
		m.form = nil
		m.status = ""
		if form.Editing() {
			return m, updateEvent(m.engine, form.EventID(), payload)
		}
		return m, createEvent(m.engine, payload)
	}

	return m, cmd
}

// moveSelection moves the selected day by whole rows/columns, following the
// selection across month boundaries.
func (m *Model) moveSelection(rows, cols int) {
	m.selected = m.selected.AddDate(0, 0, rows*7+cols)
	if !calendar.SameMonth(m.selected, m.month) {
		m.month = firstOfMonth(m.selected)
	}
	m.eventIdx = -1
}

// setMonth switches the displayed month, keeping the selection inside it.
func (m *Model) setMonth(ref time.Time) {
	m.month = firstOfMonth(ref)
	m.selected = m.month
	m.eventIdx = -1
}

func (m Model) selectedDayEvents() []models.Event {
	return m.buckets[calendar.DayKey(m.selected)]
}

// refreshFromEngine adopts the engine's collection. Mutations already
// resynchronized it, so no store round trip happens here.
func (m *Model) refreshFromEngine() {
	m.events = m.engine.Events()
	m.buckets = calendar.BucketByDay(m.events)
	m.clampEventIdx()
}

func (m *Model) clampEventIdx() {
	if m.eventIdx >= len(m.selectedDayEvents()) {
		m.eventIdx = -1
	}
}

// View renders the calendar or the modal editor.
func (m Model) View() string {
	return m.renderView()
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
