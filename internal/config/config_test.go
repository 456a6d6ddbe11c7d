package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("backend %q, want %q", cfg.Backend, BackendSQLite)
	}
	if cfg.DBPath == "" || cfg.ListenAddr == "" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := &Config{
		Backend:    BackendRemote,
		RemoteURL:  "http://localhost:8741",
		ListenAddr: "127.0.0.1:9000",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Backend != want.Backend || got.RemoteURL != want.RemoteURL || got.ListenAddr != want.ListenAddr {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, &Config{Backend: "redis"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unknown backend should be rejected")
	}
}

func TestLoadRejectsRemoteWithoutURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, &Config{Backend: BackendRemote}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("remote backend without URL should be rejected")
	}
}
