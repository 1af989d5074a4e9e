package cmd

import (
	"fmt"
	"time"

	"github.com/hzerrad/remindee/internal/remstats"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCommand())
}

func newStatsCommand() *cobra.Command {
	var horizon time.Duration
	c := &cobra.Command{
		Use:   "stats",
		Short: "Project delivery statistics over the coming horizon",
		Long: `Stats enumerates every active reminder's occurrences over the
given horizon and summarises them as projected delivery events — a forecast,
since no live delivery history exists outside a running scheduler.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runStats(c, horizon)
		},
	}
	c.Flags().DurationVar(&horizon, "horizon", 7*24*time.Hour, "how far ahead to project occurrences")
	return c
}

func runStats(c *cobra.Command, horizon time.Duration) error {
	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	rows, err := ms.ListByUser(c.Context(), userID)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	now := time.Now()
	until := now.Add(horizon)
	loc := location()

	var events []remstats.DeliveryEvent
	for _, r := range rows {
		if !r.Active {
			continue
		}
		it := engine.Iterate(r.Pattern, now.Add(-time.Nanosecond), loc)
		for {
			at, ok := it.Next()
			if !ok || at.After(until) {
				break
			}
			events = append(events, remstats.DeliveryEvent{ReminderID: r.ID, At: at})
		}
	}

	metrics := remstats.NewCalculator().Calculate(events)

	out := c.OutOrStdout()
	fmt.Fprintf(out, "projected deliveries: %d\n", metrics.TotalDeliveries)
	fmt.Fprintln(out, remstats.GenerateHistogram(metrics.HourHistogram, 40))
	return nil
}
