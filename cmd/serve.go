package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evanlowell/growlab/internal/advisor"
	"github.com/evanlowell/growlab/internal/llm"
	"github.com/evanlowell/growlab/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (scenario generation and evaluation)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr, _ := cmd.Flags().GetString("addr")

		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

		// The API is nothing without a provider; fail fast here rather
		// than 500 on every request.
		provider, err := llm.NewProviderFromEnv(ctx, logger)
		if err != nil {
			return fmt.Errorf("LLM provider required for serve: %w", err)
		}

		srv := server.New(advisor.New(provider), logger)
		logger.Info("starting server", "addr", addr)
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":3001", "Address to listen on")
}
