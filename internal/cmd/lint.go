package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hzerrad/remindee/internal/lint"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLintCommand())
}

func newLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <id>",
		Short: "Check a reminder's pattern for pathological configurations",
		Args:  cobra.ExactArgs(1),
		RunE:  runLint,
	}
}

func runLint(c *cobra.Command, args []string) error {
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
	issues := lint.Check(engine, r.Pattern, time.Now(), loc)

	out := c.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintf(out, "#%d: no issues found\n", id)
		return nil
	}
	for _, issue := range issues {
		fmt.Fprintf(out, "[%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
		if issue.Hint != "" {
			fmt.Fprintf(out, "  hint: %s\n", issue.Hint)
		}
	}
	return nil
}
