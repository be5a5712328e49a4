package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ChatProvider implements Provider using OpenAI's chat completions endpoint
type ChatProvider struct {
	client *openai.Client
}

// NewChatProvider creates a new chat completions provider
func NewChatProvider(apiKey, baseURL string) (*ChatProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &ChatProvider{client: openai.NewClientWithConfig(cfg)}, nil
}

// Complete sends the prompt as a single user message
func (p *ChatProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyChatError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Close releases resources
func (p *ChatProvider) Close() error {
	return nil
}

func classifyChatError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := fmt.Sprintf("%s %v %s", apiErr.Message, apiErr.Code, apiErr.Type)
		return newAPIError("openai-chat", apiErr.HTTPStatusCode, msg, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return newAPIError("openai-chat", reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	return newAPIError("openai-chat", 0, err.Error(), err)
}
