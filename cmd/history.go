package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evanlowell/growlab/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		userID := resolveUserID(cmd)
		attempts, err := store.Attempts().List(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Printf("No attempts recorded for %q yet.\n", userID)
			return nil
		}

		fmt.Printf("%-20s  %-14s  %-3s  %-6s  %-5s  %s\n",
			"Date", "Crop", "Lv", "Points", "Quiz", "Mode")
		fmt.Println(strings.Repeat("─", 64))

		for _, a := range attempts {
			quiz := "✗"
			if a.QuizCorrect {
				quiz = "✓"
			}
			fmt.Printf("%-20s  %-14s  %-3d  %-6d  %-5s  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				a.Crop, a.Difficulty, a.Points, quiz, a.Mode)
		}
		return nil
	},
}
