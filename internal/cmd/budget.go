package cmd

import (
	"fmt"
	"time"

	"github.com/hzerrad/remindee/internal/budget"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBudgetCommand())
}

func newBudgetCommand() *cobra.Command {
	var maxConcurrent int
	var window time.Duration
	var format string
	var verbose bool

	c := &cobra.Command{
		Use:   "budget",
		Short: "Check how many reminder deliveries would land within the same window",
		RunE: func(c *cobra.Command, args []string) error {
			return runBudget(c, maxConcurrent, window, format, verbose)
		},
	}
	c.Flags().IntVar(&maxConcurrent, "max", 1, "maximum deliveries allowed within any one minute")
	c.Flags().DurationVar(&window, "window", time.Hour, "how far ahead of now to analyse")
	c.Flags().StringVar(&format, "format", "text", "output format: text or json")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "show violation detail")
	return c
}

func runBudget(c *cobra.Command, maxConcurrent int, window time.Duration, format string, verbose bool) error {
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

	report, err := budget.Analyze(engine, active, []budget.Budget{
		{Name: "cli", MaxConcurrent: maxConcurrent, TimeWindow: window},
	}, time.Now(), location())
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	renderer, err := budget.NewRenderer(format, verbose)
	if err != nil {
		return err
	}
	return renderer.Render(c.OutOrStdout(), report)
}
