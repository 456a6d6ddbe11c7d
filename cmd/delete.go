package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noexpect9/course-schedule/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [event-id...]",
	Aliases: []string{"rm"},
	Short:   "Delete one or more events",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		var failed bool
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				output.Error("invalid event id %q", arg)
				failed = true
				continue
			}
			if err := st.DeleteEvent(context.Background(), id); err != nil {
				output.Error("delete #%d: %v", id, err)
				failed = true
				continue
			}
			output.Success("deleted event #%d", id)
		}

		if failed {
			return fmt.Errorf("some deletions failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
