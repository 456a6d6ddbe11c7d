package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noexpect9/course-schedule/internal/config"
	"github.com/noexpect9/course-schedule/internal/store"
	"github.com/noexpect9/course-schedule/internal/storeclient"
)

var (
	version    string
	configPath string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "csched",
	Short: "Month-calendar event scheduler",
	Long: `csched - a month-calendar event scheduler with a terminal UI.

Events live in a local sqlite database or behind a remote events server;
the ui command opens an interactive calendar, and the rest of the commands
manage events from the shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.csched/config.json)")
}

// loadConfig reads the config named by --config, or the default location.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}

// openStore returns the EventStore selected by the config: the local sqlite
// database, or a client for a remote events server.
func openStore(cfg *config.Config) (store.EventStore, error) {
	switch cfg.Backend {
	case config.BackendRemote:
		return storeclient.New(cfg.RemoteURL), nil
	default:
		return store.Open(cfg.DBPath)
	}
}
