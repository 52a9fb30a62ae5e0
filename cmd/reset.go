package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanlowell/growlab/internal/history"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a profile's attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		userID := resolveUserID(cmd)

		if !force {
			fmt.Printf("This deletes all attempts for %q. Re-run with --force to confirm.\n", userID)
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		n, err := store.Attempts().DeleteAll(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}

		fmt.Printf("Deleted %d attempts for %q.\n", n, userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the data")
}
