package llm

import (
	"context"
	"log/slog"
)

// FallbackProvider retries a generation once with a fallback model when the
// requested model is unavailable. Every other failure is returned as is.
type FallbackProvider struct {
	provider      Provider
	fallbackModel string
	logger        *slog.Logger
}

// NewFallbackProvider wraps provider with a single model fallback
func NewFallbackProvider(provider Provider, fallbackModel string, logger *slog.Logger) *FallbackProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackProvider{
		provider:      provider,
		fallbackModel: fallbackModel,
		logger:        logger,
	}
}

// Generate runs the prompt against model, falling back once on a
// model_unavailable error.
func (p *FallbackProvider) Generate(ctx context.Context, model, prompt string) (*Completion, error) {
	text, err := p.provider.Complete(ctx, model, prompt)
	if err == nil {
		return &Completion{Text: text, Model: model}, nil
	}

	if KindOf(err) != KindModelUnavailable || p.fallbackModel == "" {
		return nil, err
	}

	p.logger.Warn("Model unavailable, retrying with fallback model",
		"model", model, "fallback_model", p.fallbackModel, "error", err)

	text, err = p.provider.Complete(ctx, p.fallbackModel, prompt)
	if err != nil {
		return nil, err
	}

	return &Completion{Text: text, Model: p.fallbackModel}, nil
}

// Complete implements Provider
func (p *FallbackProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	completion, err := p.Generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}
	return completion.Text, nil
}

// Close releases resources
func (p *FallbackProvider) Close() error {
	return p.provider.Close()
}
