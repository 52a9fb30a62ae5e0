package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/scenario"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate scenarios without playing (no database)",
	Long: `Generate one or more scenarios for a level and print them with their
hidden cause and quiz options.

This is a stateless developer tool — no database, no scoring, no history.
Useful for evaluating catalog content and perturbation ranges.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("level", 1, "Difficulty level (1-6)")
	previewCmd.Flags().String("crop", "", "Restrict to a crop by name (e.g. Lettuce)")
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
	previewCmd.Flags().Int("count", 3, "Number of scenarios to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	crop, _ := cmd.Flags().GetString("crop")
	seed, _ := cmd.Flags().GetInt64("seed")
	count, _ := cmd.Flags().GetInt("count")

	if !catalog.ValidLevel(level) {
		return fmt.Errorf("invalid level %d: must be %d-%d", level, catalog.MinLevel, catalog.MaxLevel)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := scenario.New(rand.New(rand.NewSource(seed)))

	var filter []string
	if crop != "" {
		filter = []string{crop}
	}

	fmt.Printf("Level %d — %s (seed %d)\n\n", level, catalog.LevelTitle(level), seed)

	for i := 1; i <= count; i++ {
		sc, err := gen.Generate(level, filter)
		if err != nil {
			return fmt.Errorf("generate scenario: %w", err)
		}

		fmt.Printf("── Scenario %d/%d ──\n", i, count)
		fmt.Printf("Crop:  %s\n", sc.Crop.Name)
		fmt.Printf("Cause: %s\n", sc.Cause)

		fmt.Println("Environment:")
		for _, r := range sc.Env.Readings() {
			fmt.Printf("  %-14s %s\n", r.Label, r.Value)
		}

		fmt.Println("Symptoms:")
		for _, sym := range sc.Symptoms {
			opts := gen.QuizOptions(sc, sym)
			fmt.Printf("  – %s\n", sym)
			fmt.Printf("    options: %s\n", strings.Join(opts, " | "))
		}
		fmt.Println()
	}

	return nil
}
