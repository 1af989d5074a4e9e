package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/hzerrad/remindee/internal/normalize"
	"github.com/hzerrad/remindee/internal/parser"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCommand())
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <reminder text>",
		Short: "Parse, normalise, and schedule a new reminder",
		Long: `Create parses free-form reminder text ("-/mon-fri 9,9:30!15m
take pills"), normalises it against the current instant, computes
its first occurrence, and persists it to the store.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCreate,
	}
}

func runCreate(c *cobra.Command, args []string) error {
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

	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	id, err := ms.Insert(c.Context(), &reminder.Reminder{
		UserID:      userID,
		Pattern:     pattern,
		Description: result.Description,
		CreatedAt:   now,
		NextFire:    next,
		Active:      next != nil,
		TZ:          tzName,
	})
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	if err := saveStore(ms); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "created reminder #%d (%s)\n", id, pattern.Kind)
	if next != nil {
		fmt.Fprintf(c.OutOrStdout(), "next fire: %s\n", next.In(loc).Format(time.RFC3339))
	}
	return nil
}
