package cmd

import (
	"fmt"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/hzerrad/remindee/internal/timeline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTimelineCommand())
}

func newTimelineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Render the next 24 hours of the current user's reminders",
		RunE:  runTimeline,
	}
}

func runTimeline(c *cobra.Command, _ []string) error {
	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	rows, err := ms.ListByUser(c.Context(), userID)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	var active []*reminder.Reminder
	for _, r := range rows {
		if r.Active {
			active = append(active, r)
		}
	}

	tl := timeline.Build(engine, active, time.Now(), location())
	fmt.Fprintln(c.OutOrStdout(), tl.Render())
	return nil
}
