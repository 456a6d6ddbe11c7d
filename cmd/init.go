package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noexpect9/course-schedule/internal/output"
	"github.com/noexpect9/course-schedule/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the event database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		st, err := store.Initialize(cfg.DBPath)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer st.Close()

		output.Success("initialized event database at %s", st.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
