// Package cmd wires the reminder core into a cobra CLI: an in-process
// store driven directly by command handlers, the CLI analogue of
// the external command handler in spec §6. Adapted from the teacher's
// internal/cmd package (root.go's flag/output-writer shape).
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	storePath string
	userID    uint64
	tzName    string
)

var rootCmd = &cobra.Command{
	Use:   "remindee",
	Short: "remindee - a personal reminder CLI",
	Long: `remindee parses free-form reminder text, normalises it into a
pattern, and stores it with its next fire time — a command-line front end
over the parser/normalize/occurrence/store core. No delivery loop runs in
the CLI.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	RunE: func(c *cobra.Command, args []string) error {
		return c.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "reminders.json", "path to the reminder store file")
	rootCmd.PersistentFlags().Uint64Var(&userID, "user", 1, "user id to operate as")
	rootCmd.PersistentFlags().StringVar(&tzName, "tz", "UTC", "IANA timezone for date/time resolution")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetOutput sets the output and error writers for the root command.
func SetOutput(out, err io.Writer) {
	rootCmd.SetOut(out)
	rootCmd.SetErr(err)
}

