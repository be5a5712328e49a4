package llm

import (
	"context"
	"fmt"

	"github.com/Kavirubc/gh-agentctl/internal/config"
)

// Provider defines the interface for single-shot text generation
type Provider interface {
	// Complete sends prompt to model and returns the generated text.
	// Failures should be reported as *APIError so callers can classify them.
	Complete(ctx context.Context, model, prompt string) (string, error)
	Close() error
}

// Completion is the outcome of a generation call
type Completion struct {
	Text  string
	Model string // model that actually produced Text
}

// NewProvider creates a provider based on config
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	if config.CleanSecret(cfg.APIKey) == "" {
		return nil, fmt.Errorf("LLM API key not configured")
	}
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL)
	case "openai-chat":
		return NewChatProvider(cfg.APIKey, cfg.BaseURL)
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
