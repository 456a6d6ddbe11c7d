package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/store"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want models.Color
	}{
		{"blue", models.ColorBlue},
		{"teal", models.ColorTeal},
		{"bg-red-500", models.ColorRed},
	}
	for _, tc := range cases {
		got, err := parseColor(tc.in)
		if err != nil {
			t.Errorf("parseColor(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := parseColor("mauve"); err == nil {
		t.Error("expected error for unknown color")
	}
}

// writeTestConfig points the CLI at a sqlite database inside dir and returns
// the config file path.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	cfgPath := filepath.Join(dir, "config.json")
	data, _ := json.Marshal(map[string]string{
		"backend": "sqlite",
		"db_path": filepath.Join(dir, "events.db"),
	})
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestAddCreatesEvent(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	if err := runCommand(t, "init", "--config", cfgPath); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	err := runCommand(t, "add", "Standup",
		"--config", cfgPath,
		"--date", "2026-09-16",
		"--start", "09:30",
		"--end", "10:00",
		"--color", "green")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	st, err := store.Open(filepath.Join(dir, "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	events, err := st.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Title != "Standup" {
		t.Errorf("title = %q", ev.Title)
	}
	if ev.Color != models.ColorGreen {
		t.Errorf("color = %q", ev.Color)
	}
	if got := ev.StartDate.Local().Format("15:04"); got != "09:30" {
		t.Errorf("start = %s, want 09:30", got)
	}
}

func TestAddRejectsInvertedRange(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	if err := runCommand(t, "init", "--config", cfgPath); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	err := runCommand(t, "add", "Backwards",
		"--config", cfgPath,
		"--date", "2026-09-16",
		"--start", "10:00",
		"--end", "09:00")
	if err == nil {
		t.Fatal("expected error for end before start")
	}

	st, err := store.Open(filepath.Join(dir, "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	events, err := st.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("rejected add must not persist, got %d events", len(events))
	}
}

func TestDeleteUnknownEventFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	if err := runCommand(t, "init", "--config", cfgPath); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := runCommand(t, "delete", "42", "--config", cfgPath); err == nil {
		t.Error("expected error deleting unknown event")
	}
}
