package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the csched version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("csched %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
