package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider.
// baseURL is optional and overrides the Gemini API endpoint.
func NewGeminiProvider(apiKey, baseURL string) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

// Complete generates content for the given prompt
func (p *GeminiProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var parts []string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			parts = append(parts, part.Text)
		}
	}

	return strings.Join(parts, "\n"), nil
}

// Close releases resources
func (p *GeminiProvider) Close() error {
	return nil
}

func classifyGeminiError(err error) error {
	var clientErr genai.ClientError
	if errors.As(err, &clientErr) {
		return newAPIError("gemini", clientErr.Code, clientErr.Message+" "+clientErr.Status, err)
	}

	var serverErr genai.ServerError
	if errors.As(err, &serverErr) {
		return newAPIError("gemini", serverErr.Code, serverErr.Message+" "+serverErr.Status, err)
	}

	return newAPIError("gemini", 0, err.Error(), err)
}
