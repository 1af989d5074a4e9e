package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/hzerrad/remindee/internal/remdoc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDocCommand())
}

func newDocCommand() *cobra.Command {
	var outPath string
	c := &cobra.Command{
		Use:   "doc",
		Short: "Export the current user's reminders as Markdown",
		RunE: func(c *cobra.Command, args []string) error {
			return runDoc(c, outPath)
		},
	}
	c.Flags().StringVar(&outPath, "out", "", "write the export to this file instead of stdout")
	return c
}

func runDoc(c *cobra.Command, outPath string) error {
	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	rows, err := ms.ListByUser(c.Context(), userID)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	gen := remdoc.NewGenerator(engine)
	doc := gen.Generate(fmt.Sprintf("Reminders for user %d", userID), rows, time.Now(), location())
	md := remdoc.RenderMarkdown(doc)

	if outPath == "" {
		fmt.Fprint(c.OutOrStdout(), md)
		return nil
	}
	return os.WriteFile(outPath, []byte(md), 0o644)
}
