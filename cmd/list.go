package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/noexpect9/course-schedule/internal/calendar"
	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List events grouped by day",
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

		events, err := st.ListEvents(context.Background())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if monthStr, _ := cmd.Flags().GetString("month"); monthStr != "" {
			ref, err := time.ParseInLocation("2006-01", monthStr, time.Local)
			if err != nil {
				output.Error("invalid month %q (want YYYY-MM)", monthStr)
				return err
			}
			events = filterMonth(events, ref)
		}

		if len(events) == 0 {
			output.Info("no events")
			return nil
		}

		buckets := calendar.BucketByDay(events)
		keys := make([]string, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			day, _ := time.ParseInLocation("2006-01-02", k, time.Local)
			output.DayHeading(day)
			for _, ev := range buckets[k] {
				output.EventLine(ev)
			}
			fmt.Println()
		}
		return nil
	},
}

func filterMonth(events []models.Event, ref time.Time) []models.Event {
	var out []models.Event
	for _, ev := range events {
		if calendar.SameMonth(ev.StartDate.Local(), ref) {
			out = append(out, ev)
		}
	}
	return out
}

func init() {
	listCmd.Flags().String("month", "", "only events in the given month (YYYY-MM)")
	rootCmd.AddCommand(listCmd)
}
