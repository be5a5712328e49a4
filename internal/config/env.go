package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if env var not set
	})
}

// expandConfigEnvVars expands environment variables in config string fields
func expandConfigEnvVars(cfg *Config) {
	cfg.Repository = expandEnvVars(cfg.Repository)
	cfg.GitHub.Token = expandEnvVars(cfg.GitHub.Token)
	cfg.LLM.APIKey = expandEnvVars(cfg.LLM.APIKey)
	cfg.LLM.BaseURL = expandEnvVars(cfg.LLM.BaseURL)
	cfg.Workflow.DashboardURL = expandEnvVars(cfg.Workflow.DashboardURL)
}

// applyEnvOverrides overwrites fields whose environment variable is set.
// LLM_API_KEY wins over OPENAI_API_KEY so non-OpenAI providers get a neutral name.
func applyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if key := os.Getenv("LLM_API_KEY"); strings.TrimSpace(key) != "" {
		cfg.LLM.APIKey = key
	}
	return nil
}

// LoadDotEnv loads a dotenv file into the process environment.
// Variables that are already set are left untouched.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	return godotenv.Load(path)
}

// CleanSecret strips line breaks and surrounding whitespace that CI secret
// stores tend to leave behind.
func CleanSecret(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(s)
}

func cleanSecrets(cfg *Config) {
	cfg.GitHub.Token = CleanSecret(cfg.GitHub.Token)
	cfg.LLM.APIKey = CleanSecret(cfg.LLM.APIKey)
	cfg.Repository = strings.TrimSpace(cfg.Repository)
}
