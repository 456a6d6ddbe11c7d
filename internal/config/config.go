// Package config reads and writes the csched configuration file, which
// selects the backing store and holds server settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend selects which EventStore implementation the app runs against.
const (
	BackendSQLite = "sqlite"
	BackendRemote = "remote"
)

// Config is the on-disk configuration.
type Config struct {
	Backend    string `json:"backend"`               // "sqlite" or "remote"
	DBPath     string `json:"db_path,omitempty"`     // sqlite database file
	RemoteURL  string `json:"remote_url,omitempty"`  // base URL of the events server
	ListenAddr string `json:"listen_addr,omitempty"` // serve command bind address
}

const (
	defaultListenAddr = "127.0.0.1:8741"
	configDir         = ".csched"
)

// DefaultPath returns the default config file location under the home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDir, "config.json"), nil
}

// DefaultDBPath returns the default sqlite database location.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDir, "events.db"), nil
}

// Load reads the config from path. A missing file yields the defaults, not
// an error, so the app works without any prior setup.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Backend == "" {
		c.Backend = BackendSQLite
	}
	if c.Backend != BackendSQLite && c.Backend != BackendRemote {
		return fmt.Errorf("unknown backend %q (use %q or %q)", c.Backend, BackendSQLite, BackendRemote)
	}
	if c.Backend == BackendRemote && c.RemoteURL == "" {
		return fmt.Errorf("backend %q requires remote_url", BackendRemote)
	}
	if c.DBPath == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return err
		}
		c.DBPath = p
	}
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	return nil
}

// Save writes the config to path using an atomic write (temp file + rename).
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
