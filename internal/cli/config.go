package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/gh-agentctl/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration from file and environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if path := config.FindConfigPath(cfgFile); path != "" {
				fmt.Fprintf(out, "Validating config: %s\n", path)
			} else {
				fmt.Fprintln(out, "No config file found, validating environment only")
			}

			cfg, err := loadConfig(out)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "\nConfiguration is valid!")
			fmt.Fprintf(out, "  - Repository: %s (issue #%d)\n", cfg.Repository, cfg.IssueNumber)
			fmt.Fprintf(out, "  - GitHub host: %s\n", cfg.GitHub.Host)
			fmt.Fprintf(out, "  - Provider: %s (model %s, fallback %s)\n", cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.FallbackModel)
			fmt.Fprintf(out, "  - Workflow: %s @ %s\n", cfg.Workflow.File, cfg.Workflow.Ref)
			fmt.Fprintf(out, "  - Limits: cooldown %dm, max comments %d\n", cfg.Limits.CooldownMinutes, cfg.Limits.MaxComments)
			if len(cfg.Pipeline.Steps) > 0 {
				fmt.Fprintf(out, "  - Pipeline steps: %d configured\n", len(cfg.Pipeline.Steps))
			}

			return nil
		},
	}
}
