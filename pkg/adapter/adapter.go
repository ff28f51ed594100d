package adapter

import (
	"context"

	"github.com/plancraft/refinery/pkg/artifact"
)

// Request carries one completion request. System is optional; providers that
// have no native system role prepend it to the prompt. A zero Temperature
// means provider default; MaxTokens of zero means DefaultMaxTokens.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// DefaultMaxTokens bounds completions when the caller does not set a limit.
const DefaultMaxTokens = 4000

// Adapter defines the interface for LLM provider adapters.
type Adapter interface {
	// Generate sends a completion request to the model and returns an artifact.
	Generate(ctx context.Context, model string, req Request) (*artifact.Artifact, error)

	// Name returns the adapter's identifier.
	Name() string

	// Models returns the list of supported models.
	Models() []string
}

func (r Request) maxTokens() int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return DefaultMaxTokens
}

// combined returns the request as a single prompt string for providers that
// take one text block per turn.
func (r Request) combined() string {
	if r.System == "" {
		return r.Prompt
	}
	return r.System + "\n\n" + r.Prompt
}
