package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/hzerrad/remindee/internal/human"
	"github.com/hzerrad/remindee/internal/normalize"
	"github.com/hzerrad/remindee/internal/parser"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExplainCommand())
}

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <reminder text>",
		Short: "Parse reminder text and print its interpretation without saving it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExplain,
	}
}

func runExplain(c *cobra.Command, args []string) error {
	raw := strings.Join(args, " ")

	result, err := parser.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	now := time.Now()
	loc := location()

	pattern, err := normalize.Normalize(result.Pattern, now, loc)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	next, err := engine.NextAfter(pattern, now, loc)
	if err != nil {
		return fmt.Errorf("compute first occurrence: %w", err)
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "description: %s\n", result.Description)
	fmt.Fprintf(out, "kind: %s\n", pattern.Kind)
	fmt.Fprintf(out, "meaning: %s\n", human.NewHumanizer().Humanize(pattern))
	if next != nil {
		fmt.Fprintf(out, "first occurrence: %s\n", next.In(loc).Format(time.RFC3339))
	} else {
		fmt.Fprintln(out, "first occurrence: never")
	}
	return nil
}
