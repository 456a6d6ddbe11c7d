package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noexpect9/course-schedule/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show [event-id]",
	Short: "Show an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			output.Error("invalid event id %q", args[0])
			return err
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

		ev, err := st.GetEvent(context.Background(), id)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		output.EventDetail(*ev)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
