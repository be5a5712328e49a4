package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/gh-agentctl/internal/pipeline"
)

func newRunCmd() *cobra.Command {
	var (
		quiet   bool
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one controller cycle against the configured issue",
		Long: `Load the issue, check the comment budget, cooldown and in-flight guards,
generate the next plan and post it as an /agent comment, then dispatch the
agent workflow. A guard that stops the cycle is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			ctrl, err := pipeline.NewController(cfg, logger, dryRun)
			if err != nil {
				return fmt.Errorf("failed to create controller: %w", err)
			}
			defer ctrl.Close()

			result, err := ctrl.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("controller cycle failed: %w", err)
			}

			switch {
			case jsonOut:
				return pipeline.PrintJSON(cmd.OutOrStdout(), result)
			case !quiet:
				pipeline.PrintResult(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the cycle summary")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the cycle result as JSON")
	return cmd
}
