package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aglebova/distractors/internal/batch"
	"github.com/aglebova/distractors/internal/distractor"
	"github.com/aglebova/distractors/internal/llm"
	"github.com/aglebova/distractors/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate distractors for a CSV of word/translation pairs",
	Long: `Read word/translation pairs from a CSV file (columns source_language,
target_language, word, translation), generate distractors for each pair
sequentially, and write a JSON array of results.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "Path to the CSV file with word/translation pairs (required)")
	generateCmd.Flags().StringP("output", "o", "distractors.json", "Path to the output JSON file")
	generateCmd.Flags().IntP("count", "n", 10, "Number of distractors to generate for each word")
	generateCmd.Flags().IntP("backfill-trials", "d", 1, "Max. number of trials to backfill removed duplicates")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	count, _ := cmd.Flags().GetInt("count")
	trials, _ := cmd.Flags().GetInt("backfill-trials")

	pairs, err := batch.ReadPairs(input)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no word/translation pairs in %s", input)
	}

	ctx := cmd.Context()

	// The event log is observability, not a dependency: a broken store
	// degrades to a warning and the run continues unlogged.
	eventRepo := openEventRepo(cmd)

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := distractor.DefaultConfig()
	cfg.BackfillTrials = trials
	gen := distractor.New(provider, cfg)

	if n, terr := gen.PromptTokens(); terr == nil {
		fmt.Printf("Tokens in the prompt: %d\n", n)
	}

	ctx = llm.WithRunID(ctx, uuid.NewString())

	results, stats, runErr := batch.Run(ctx, gen, pairs, batch.Options{Count: count})

	// Write whatever completed, even when aborting.
	if len(results) > 0 {
		if werr := batch.WriteResults(output, results); werr != nil {
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", werr)
				return runErr
			}
			return werr
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Generation time: %.3f ± %.3f sec.\n", stats.Mean().Seconds(), stats.Std().Seconds())
	fmt.Printf("Saved distractors to %s\n", output)
	return nil
}

// openEventRepo opens the event log, returning nil (logging disabled) on
// any failure.
func openEventRepo(cmd *cobra.Command) store.EventRepo {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: event log disabled: %v\n", err)
		return nil
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: event log disabled: %v\n", err)
		return nil
	}
	cobra.OnFinalize(func() { st.Close() })
	return st.EventRepo()
}
