package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/tidwall/gjson"
)

// OpenAIProvider implements Provider using the OpenAI Responses API
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider creates a Responses API provider.
// baseURL is optional and points the client at a compatible endpoint.
func NewOpenAIProvider(apiKey, baseURL string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{client: openai.NewClient(opts...)}, nil
}

// Complete generates a single response for the given prompt
func (p *OpenAIProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			msg := strings.Join([]string{apiErr.Message, apiErr.Code, apiErr.Type, apiErr.RawJSON()}, " ")
			return "", newAPIError("openai", apiErr.StatusCode, msg, err)
		}
		return "", newAPIError("openai", 0, err.Error(), err)
	}

	return ExtractOutputText(resp.RawJSON()), nil
}

// Close releases resources
func (p *OpenAIProvider) Close() error {
	return nil
}

// ExtractOutputText pulls the generated text out of a Responses API payload.
// The flattened output_text field wins; otherwise every output_text segment of
// the structured output list is joined in order.
func ExtractOutputText(raw string) string {
	if txt := gjson.Get(raw, "output_text").String(); txt != "" {
		return strings.TrimSpace(txt)
	}

	var parts []string
	gjson.Get(raw, "output").ForEach(func(_, item gjson.Result) bool {
		item.Get("content").ForEach(func(_, segment gjson.Result) bool {
			if segment.Get("type").String() == "output_text" {
				parts = append(parts, segment.Get("text").String())
			}
			return true
		})
		return true
	})

	return strings.TrimSpace(strings.Join(parts, "\n"))
}
