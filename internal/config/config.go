package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the values the agent workflow was tuned with.
const (
	DefaultIssueNumber     = 2
	DefaultModel           = "gpt-4o-mini"
	DefaultFallbackModel   = "gpt-4o-mini"
	DefaultProvider        = "openai"
	DefaultWorkflowFile    = "agent.yml"
	DefaultDispatchRef     = "main"
	DefaultCooldownMinutes = 12
	DefaultMaxComments     = 18
	DefaultGitHubHost      = "github.com"
)

// Config represents the full controller configuration
type Config struct {
	Repository  string         `yaml:"repository" env:"GITHUB_REPOSITORY"`
	IssueNumber int            `yaml:"issue_number" env:"ISSUE_NUMBER"`
	GitHub      GitHubConfig   `yaml:"github"`
	LLM         LLMConfig      `yaml:"llm"`
	Workflow    WorkflowConfig `yaml:"workflow"`
	Limits      LimitsConfig   `yaml:"limits"`
	Prompt      PromptConfig   `yaml:"prompt"`
	Pipeline    PipelineConfig `yaml:"pipeline"`
	LogLevel    string         `yaml:"log_level" env:"LOG_LEVEL"`
}

// GitHubConfig contains issue tracker access settings
type GitHubConfig struct {
	Host  string `yaml:"host" env:"GH_HOST"`
	Token string `yaml:"token" env:"GH_PAT"`
}

// LLMConfig contains text-generation provider settings
type LLMConfig struct {
	Provider      string `yaml:"provider" env:"LLM_PROVIDER"`
	Model         string `yaml:"model" env:"OPENAI_MODEL"`
	FallbackModel string `yaml:"fallback_model" env:"FALLBACK_MODEL"`
	APIKey        string `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL       string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// WorkflowConfig identifies the agent workflow that acts on /agent comments
type WorkflowConfig struct {
	File         string `yaml:"file" env:"AGENT_WORKFLOW_FILE"`
	Ref          string `yaml:"ref" env:"DISPATCH_REF"`
	DashboardURL string `yaml:"dashboard_url" env:"DASHBOARD_URL"`
}

// LimitsConfig contains the rate-limiting guards
type LimitsConfig struct {
	CooldownMinutes int `yaml:"cooldown_minutes" env:"MIN_INTERVAL_MINUTES"`
	MaxComments     int `yaml:"max_comments" env:"MAX_COMMENTS"`
}

// PromptConfig tunes the generated prompt
type PromptConfig struct {
	Goal string `yaml:"goal" env:"AGENT_GOAL"`
}

// PipelineConfig allows reordering or trimming the controller steps
type PipelineConfig struct {
	Steps []string `yaml:"steps"`
}

// Default returns a config populated with default values
func Default() *Config {
	return &Config{
		IssueNumber: DefaultIssueNumber,
		GitHub: GitHubConfig{
			Host: DefaultGitHubHost,
		},
		LLM: LLMConfig{
			Provider:      DefaultProvider,
			Model:         DefaultModel,
			FallbackModel: DefaultFallbackModel,
		},
		Workflow: WorkflowConfig{
			File: DefaultWorkflowFile,
			Ref:  DefaultDispatchRef,
		},
		Limits: LimitsConfig{
			CooldownMinutes: DefaultCooldownMinutes,
			MaxComments:     DefaultMaxComments,
		},
	}
}

// Load builds the config from defaults, the optional YAML file at path and
// the process environment, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		expandConfigEnvVars(cfg)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cleanSecrets(cfg)
	return cfg, nil
}

// FindConfigPath looks for config in common locations.
// An empty result means the environment is the only source.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		".github/agentctl.yaml",
		".github/agentctl.yml",
		"agentctl.yaml",
		"agentctl.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "gh-agentctl", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// Owner returns the owner half of the repository slug
func (cfg *Config) Owner() string {
	owner, _, _ := strings.Cut(cfg.Repository, "/")
	return owner
}

// Repo returns the name half of the repository slug
func (cfg *Config) Repo() string {
	_, repo, _ := strings.Cut(cfg.Repository, "/")
	return repo
}
