package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAckCommand())
}

func newAckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ack <id> <delivery-id>",
		Short: "Acknowledge a nagging reminder's delivery",
		Long: `Ack clears a reminder's pending acknowledgement if delivery-id
matches the currently outstanding one, stopping further nag re-fires (spec
§4.F). A stale or already-superseded delivery id is silently ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: runAck,
	}
}

func runAck(c *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid reminder id %q: %w", args[0], err)
	}
	deliveryID, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid delivery id %q: %w", args[1], err)
	}

	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	r, err := ms.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}

	if r.PendingAck == nil || r.PendingAck.DeliveryID != deliveryID {
		fmt.Fprintf(c.OutOrStdout(), "delivery #%d for reminder #%d is stale, ignoring\n", deliveryID, id)
		return nil
	}

	if err := ms.SetPendingAck(c.Context(), id, nil); err != nil {
		return fmt.Errorf("set pending ack: %w", err)
	}
	if err := saveStore(ms); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "acknowledged reminder #%d\n", id)
	return nil
}
