package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/plancraft/refinery/pkg/artifact"
)

// MockAdapter returns deterministic responses for local runs and tests.
// Responses can be keyed by a substring of the prompt, and individual calls
// can be scripted to fail.
type MockAdapter struct {
	mu              sync.Mutex
	responses       map[string]string
	failOn          map[string]error
	defaultResponse string
	calls           []Request
}

// NewMockAdapter creates a mock adapter with a default response.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{
		responses:       make(map[string]string),
		failOn:          make(map[string]error),
		defaultResponse: "mock response:",
	}
}

// Name returns the adapter identifier.
func (a *MockAdapter) Name() string {
	return "mock"
}

// Models returns the list of supported mock models.
func (a *MockAdapter) Models() []string {
	return []string{"mock-1"}
}

// RespondWith registers a canned response for prompts containing key.
func (a *MockAdapter) RespondWith(key, response string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[key] = response
}

// FailWith scripts an error for prompts containing key.
func (a *MockAdapter) FailWith(key string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failOn[key] = err
}

// Calls returns a copy of all requests seen so far, in order.
func (a *MockAdapter) Calls() []Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Request, len(a.calls))
	copy(out, a.calls)
	return out
}

// Generate returns a deterministic artifact for the request, or a scripted
// error when one matches.
func (a *MockAdapter) Generate(ctx context.Context, model string, req Request) (*artifact.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if model == "" {
		model = "mock-1"
	}

	a.mu.Lock()
	a.calls = append(a.calls, req)
	full := req.combined()
	for key, err := range a.failOn {
		if strings.Contains(full, key) {
			a.mu.Unlock()
			return nil, &AdapterError{Adapter: a.Name(), Err: err}
		}
	}
	for key, response := range a.responses {
		if strings.Contains(full, key) {
			a.mu.Unlock()
			return artifact.New(response, a.Name(), model, req.Prompt), nil
		}
	}
	defaultResponse := a.defaultResponse
	a.mu.Unlock()

	content := fmt.Sprintf("%s\n%s", defaultResponse, req.Prompt)
	return artifact.New(content, a.Name(), model, req.Prompt), nil
}
