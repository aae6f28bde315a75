package cmd

import (
	"github.com/aglebova/distractors/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "distractors",
	Short: "LLM-powered distractor generator for vocabulary flashcards",
	Long: "Distractors generates plausible-but-wrong answer options for\n" +
		"vocabulary quizzes by prompting an LLM and filtering near-duplicates.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite event log (overrides DISTRACTORS_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then DISTRACTORS_DB env var, then the default config path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
