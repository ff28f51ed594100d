package adapter

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/plancraft/refinery/pkg/artifact"
)

// GoogleAdapter implements the Adapter interface for Gemini models. The
// critic role defaults to this provider.
type GoogleAdapter struct {
	client *genai.Client
}

// NewGoogleAdapter creates a new Google Gemini adapter.
func NewGoogleAdapter(apiKey string) (*GoogleAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &GoogleAdapter{client: client}, nil
}

// Name returns the adapter identifier.
func (a *GoogleAdapter) Name() string {
	return "google"
}

// Models returns the list of supported Gemini models.
func (a *GoogleAdapter) Models() []string {
	return []string{
		"gemini-1.5-flash",
		"gemini-2.0-flash",
	}
}

// Generate sends a completion request to Gemini and returns the response as
// an artifact.
func (a *GoogleAdapter) Generate(ctx context.Context, model string, req Request) (*artifact.Artifact, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.maxTokens()),
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), Err: err}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, &AdapterError{Adapter: a.Name(), Err: fmt.Errorf("no candidates returned")}
	}

	var content string
	if resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				content += part.Text
			}
		}
	}

	return artifact.New(content, a.Name(), model, req.Prompt), nil
}
