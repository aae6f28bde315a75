package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aglebova/distractors/internal/distractor"
	"github.com/aglebova/distractors/internal/llm"
	"github.com/aglebova/distractors/internal/tokens"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Report the token count of the system prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		show, _ := cmd.Flags().GetBool("show")

		cfg := distractor.DefaultConfig()
		model := llm.ConfigFromEnv().ModelID()

		n, err := tokens.Count(cfg.SystemPrompt, model)
		if err != nil {
			return fmt.Errorf("count prompt tokens: %w", err)
		}

		fmt.Printf("Model:  %s\n", model)
		fmt.Printf("Tokens: %d\n", n)

		if show {
			fmt.Println()
			fmt.Println(cfg.SystemPrompt)
		}
		return nil
	},
}

func init() {
	promptCmd.Flags().Bool("show", false, "Print the full system prompt")
}
