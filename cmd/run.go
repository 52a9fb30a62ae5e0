package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/evanlowell/growlab/internal/advisor"
	"github.com/evanlowell/growlab/internal/app"
	"github.com/evanlowell/growlab/internal/history"
	"github.com/evanlowell/growlab/internal/llm"
	"github.com/evanlowell/growlab/internal/scenario"
)

// runApp opens the history store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	opts := app.Options{
		Generator: scenario.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Store:     store,
		UserID:    resolveUserID(cmd),
	}

	// The advisor is optional — the rules engine works without it.
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Consult mode will be unavailable.")
	} else {
		opts.Advisor = advisor.New(provider)
	}

	return app.Run(opts)
}

// resolveUserID returns the profile name from --user, GROWLAB_USER, or
// "default".
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("GROWLAB_USER"); u != "" {
		return u
	}
	return "default"
}
