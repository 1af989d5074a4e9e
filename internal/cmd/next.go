package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmdNext := newNextCommand()
	rootCmd.AddCommand(cmdNext)
}

func newNextCommand() *cobra.Command {
	var count int
	c := &cobra.Command{
		Use:   "next <id>",
		Short: "Show the upcoming occurrences of a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNext(c, args, count)
		},
	}
	c.Flags().IntVarP(&count, "count", "c", 10, "number of occurrences to show (1-100)")
	return c
}

func runNext(c *cobra.Command, args []string, count int) error {
	if count < 1 || count > 100 {
		return fmt.Errorf("count must be between 1 and 100")
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid reminder id %q: %w", args[0], err)
	}

	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	r, err := ms.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}

	loc := r.Location()
	it := engine.Iterate(r.Pattern, time.Now(), loc)

	out := c.OutOrStdout()
	fmt.Fprintf(out, "next %d occurrence(s) of #%d (%s):\n", count, r.ID, r.Description)
	for i := 1; i <= count; i++ {
		at, ok := it.Next()
		if !ok {
			fmt.Fprintln(out, "  (no further occurrences)")
			break
		}
		fmt.Fprintf(out, "  %d. %s\n", i, at.In(loc).Format(time.RFC3339))
	}
	return nil
}
