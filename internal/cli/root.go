package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/gh-agentctl/internal/config"
	"github.com/Kavirubc/gh-agentctl/internal/logging"
)

var (
	cfgFile  string
	envFile  string
	logLevel string
	dryRun   bool
	version  = "dev"
)

// errInvalidConfig is returned after validation problems have been printed
var errInvalidConfig = errors.New("invalid configuration")

var rootCmd = &cobra.Command{
	Use:   "gh-agentctl",
	Short: "Keeps an autonomous coding agent moving on a GitHub issue",
	Long: `gh-agentctl polls one GitHub issue, decides whether the coding agent
should be prompted again, asks a language model for the next plan and posts it
back as an /agent comment before re-dispatching the agent workflow.

Run it on a schedule: each invocation performs at most one cycle.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "skip all writes (comment + workflow dispatch)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gh-agentctl version %s\n", version)
		},
	}
}

// loadConfig reads and validates configuration, printing every problem on
// its own line before returning errInvalidConfig.
func loadConfig(w io.Writer) (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.Load(config.FindConfigPath(cfgFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "config error: %v\n", e)
		}
		return nil, errInvalidConfig
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	return logging.NewLogger(os.Stderr, logging.ParseLevel(level))
}
