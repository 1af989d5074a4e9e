package cmd

import (
	"fmt"
	"time"

	"github.com/hzerrad/remindee/internal/human"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCommand())
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the current user's reminders",
		RunE:  runList,
	}
}

func runList(c *cobra.Command, _ []string) error {
	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	rows, err := ms.ListByUser(c.Context(), userID)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if len(rows) == 0 {
		fmt.Fprintln(c.OutOrStdout(), "no reminders")
		return nil
	}

	humanizer := human.NewHumanizer()
	out := c.OutOrStdout()
	loc := location()
	for _, r := range rows {
		status := "active"
		if !r.Active {
			status = "inactive"
		}
		fmt.Fprintf(out, "#%d [%s] %s — %s\n", r.ID, status, r.Description, humanizer.Humanize(r.Pattern))
		if r.NextFire != nil {
			fmt.Fprintf(out, "    next fire: %s\n", r.NextFire.In(loc).Format(time.RFC3339))
		}
		if r.PendingAck != nil {
			fmt.Fprintf(out, "    awaiting acknowledgement (delivery #%d, since %s)\n", r.PendingAck.DeliveryID, r.PendingAck.Since.In(loc).Format(time.RFC3339))
		}
	}
	return nil
}
