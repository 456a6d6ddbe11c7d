package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/noexpect9/course-schedule/internal/output"
	"github.com/noexpect9/course-schedule/internal/storeclient"
	eventsync "github.com/noexpect9/course-schedule/internal/sync"
	"github.com/noexpect9/course-schedule/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("ui requires an interactive terminal")
		}

		cfg, err := loadConfig()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		st, err := openStore(cfg)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer st.Close()

		// Fail fast when the remote server is down rather than opening an
		// empty calendar.
		if c, ok := st.(*storeclient.Client); ok {
			if err := c.HealthCheck(context.Background()); err != nil {
				output.Error("events server unreachable: %v", err)
				return err
			}
		}

		engine := eventsync.New(st)
		if err := engine.LoadAll(context.Background()); err != nil {
			output.Error("load events: %v", err)
			return err
		}

		p := tea.NewProgram(tui.New(engine), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
