package adapter

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/plancraft/refinery/pkg/artifact"
)

// OpenAIAdapter implements the Adapter interface for OpenAI models. The
// strategist role defaults to this provider.
type OpenAIAdapter struct {
	client openai.Client
}

// NewOpenAIAdapter creates a new OpenAI adapter.
func NewOpenAIAdapter(apiKey string) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIAdapter{client: client}, nil
}

// Name returns the adapter identifier.
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Models returns the list of supported OpenAI models.
func (a *OpenAIAdapter) Models() []string {
	return []string{
		"gpt-4-turbo",
		"gpt-4o",
		"gpt-4o-mini",
	}
}

// Generate sends a completion request to OpenAI and returns the response as
// an artifact.
func (a *OpenAIAdapter) Generate(ctx context.Context, model string, req Request) (*artifact.Artifact, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(req.maxTokens())),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &AdapterError{Adapter: a.Name(), Err: fmt.Errorf("no choices returned")}
	}

	content := resp.Choices[0].Message.Content
	return artifact.New(content, a.Name(), model, req.Prompt), nil
}
