package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteCommand())
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently remove a reminder",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(c *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid reminder id %q: %w", args[0], err)
	}

	ms, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := ms.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := saveStore(ms); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "deleted reminder #%d\n", id)
	return nil
}
