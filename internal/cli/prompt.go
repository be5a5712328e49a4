package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt the next cycle would send",
		Long: `Gather the issue, the latest agent run and the open pull request, then
print the rendered prompt. Nothing is generated and nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctrl, err := pipeline.NewController(cfg, newLogger(cfg), true)
			if err != nil {
				return fmt.Errorf("failed to create controller: %w", err)
			}
			defer ctrl.Close()

			text, err := ctrl.Preview(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to build prompt: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
