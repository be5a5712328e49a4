package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors.
// It never touches the network so it can gate every command.
func Validate(cfg *Config) []error {
	var errs []error

	owner, repo, ok := strings.Cut(cfg.Repository, "/")
	if cfg.Repository == "" {
		errs = append(errs, ValidationError{"GITHUB_REPOSITORY", "required"})
	} else if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		errs = append(errs, ValidationError{"GITHUB_REPOSITORY", "must be in format 'owner/repo'"})
	}

	if cfg.IssueNumber <= 0 {
		errs = append(errs, ValidationError{"ISSUE_NUMBER", "must be a positive issue number"})
	}

	if CleanSecret(cfg.GitHub.Token) == "" {
		errs = append(errs, ValidationError{"GH_PAT", "is missing/empty"})
	}

	if CleanSecret(cfg.LLM.APIKey) == "" {
		errs = append(errs, ValidationError{"OPENAI_API_KEY", "is missing/empty"})
	}

	switch cfg.LLM.Provider {
	case "openai", "openai-chat", "gemini":
	default:
		errs = append(errs, ValidationError{"LLM_PROVIDER", "must be 'openai', 'openai-chat' or 'gemini'"})
	}

	if cfg.LLM.Model == "" {
		errs = append(errs, ValidationError{"OPENAI_MODEL", "required"})
	}

	if cfg.Workflow.File == "" {
		errs = append(errs, ValidationError{"AGENT_WORKFLOW_FILE", "required"})
	}

	if cfg.Workflow.Ref == "" {
		errs = append(errs, ValidationError{"DISPATCH_REF", "required"})
	}

	if cfg.Limits.CooldownMinutes < 0 {
		errs = append(errs, ValidationError{"MIN_INTERVAL_MINUTES", "must not be negative"})
	}

	if cfg.Limits.MaxComments <= 0 {
		errs = append(errs, ValidationError{"MAX_COMMENTS", "must be greater than 0"})
	}

	return errs
}
