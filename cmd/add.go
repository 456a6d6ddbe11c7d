package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noexpect9/course-schedule/internal/dateparse"
	"github.com/noexpect9/course-schedule/internal/editor"
	"github.com/noexpect9/course-schedule/internal/models"
	"github.com/noexpect9/course-schedule/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add an event",
	Long: `Add an event to the calendar.

The day accepts an exact date (2026-09-16), "today", "tomorrow", "+3d", or
a weekday name for its next occurrence.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		dayStr, _ := cmd.Flags().GetString("date")
		day, err := dateparse.ParseDay(dayStr)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		ed := editor.NewForDay(day)
		ed.SetTitle(args[0])

		if startStr, _ := cmd.Flags().GetString("start"); startStr != "" {
			h, m, err := dateparse.ParseClock(startStr)
			if err != nil {
				output.Error("start: %v", err)
				return err
			}
			ed.SetStartTime(h, m)
		}
		if endStr, _ := cmd.Flags().GetString("end"); endStr != "" {
			h, m, err := dateparse.ParseClock(endStr)
			if err != nil {
				output.Error("end: %v", err)
				return err
			}
			ed.SetEndTime(h, m)
		}
		if colorStr, _ := cmd.Flags().GetString("color"); colorStr != "" {
			c, err := parseColor(colorStr)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			ed.SetColor(c)
		}

		payload, err := ed.Submit()
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

		ev, err := st.CreateEvent(context.Background(), payload)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("added event #%d", ev.ID)
		output.EventLine(*ev)
		return nil
	},
}

// parseColor resolves a palette token or its short name ("blue" for
// bg-blue-500).
func parseColor(s string) (models.Color, error) {
	c := models.Color(s)
	if c.Valid() {
		return c, nil
	}
	for _, p := range models.Palette {
		if strings.TrimSuffix(strings.TrimPrefix(string(p), "bg-"), "-500") == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", s)
}

func init() {
	addCmd.Flags().String("date", "today", "event day")
	addCmd.Flags().String("start", "", "start time (HH:MM, default 09:00)")
	addCmd.Flags().String("end", "", "end time (HH:MM, default same as start)")
	addCmd.Flags().String("color", "", "event color (blue, green, red, yellow, purple, pink, indigo, teal)")
	rootCmd.AddCommand(addCmd)
}
