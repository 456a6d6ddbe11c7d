package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/noexpect9/course-schedule/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date   TEXT NOT NULL,
	color      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_start_date ON events(start_date);
`

// SQLite is the local EventStore backed by a single database file.
type SQLite struct {
	conn *sql.DB
	path string
}

// Open opens an existing database. It fails if the file does not exist;
// use Initialize (or 'csched init') to create one.
func Open(path string) (*SQLite, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s: run 'csched init' first", path)
	}
	return open(path)
}

// Initialize creates the database file (and parent directories) and applies
// the schema. Safe to call on an existing database.
func Initialize(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return open(path)
}

func open(path string) (*SQLite, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL lets readers proceed while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{conn: conn, path: path}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.path
}

// Ping verifies the database is reachable.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// ListEvents returns all events ordered by start instant ascending. An empty
// store yields an empty slice, not an error.
func (s *SQLite) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, title, start_date, end_date, color FROM events ORDER BY start_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetEvent returns the event with the given id, or ErrNotFound.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, title, start_date, end_date, color FROM events WHERE id = ?`, id)

	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// CreateEvent validates the payload, inserts it, and returns the stored
// event with its assigned id.
func (s *SQLite) CreateEvent(ctx context.Context, p models.EventPayload) (*models.Event, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	res, err := s.conn.ExecContext(ctx,
		`INSERT INTO events (title, start_date, end_date, color) VALUES (?, ?, ?, ?)`,
		p.Title, formatTime(p.StartDate), formatTime(p.EndDate), string(p.Color))
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert event id: %w", err)
	}

	return &models.Event{
		ID:        id,
		Title:     p.Title,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Color:     p.Color,
	}, nil
}

// UpdateEvent validates the payload and overwrites the event with the given
// id. Returns ErrNotFound if no row matched.
func (s *SQLite) UpdateEvent(ctx context.Context, id int64, p models.EventPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}

	res, err := s.conn.ExecContext(ctx,
		`UPDATE events SET title = ?, start_date = ?, end_date = ?, color = ? WHERE id = ?`,
		p.Title, formatTime(p.StartDate), formatTime(p.EndDate), string(p.Color), id)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent removes the event with the given id. Returns ErrNotFound if
// no row matched.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Timestamps are stored as RFC 3339 text with a fixed nine-digit fraction,
// normalized to UTC, so lexicographic ORDER BY matches chronological order
// even for sub-second instants. A variable-width fraction would not sort:
// ".5Z" compares after ".51Z".
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var ev models.Event
	var start, end, color string
	if err := row.Scan(&ev.ID, &ev.Title, &start, &end, &color); err != nil {
		return models.Event{}, err
	}

	var err error
	if ev.StartDate, err = time.Parse(time.RFC3339, start); err != nil {
		return models.Event{}, fmt.Errorf("parse start_date %q: %w", start, err)
	}
	if ev.EndDate, err = time.Parse(time.RFC3339, end); err != nil {
		return models.Event{}, fmt.Errorf("parse end_date %q: %w", end, err)
	}
	ev.Color = models.Color(color)
	return ev, nil
}
