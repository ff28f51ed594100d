package refine

import (
	"context"
	"fmt"
	"time"

	"github.com/plancraft/refinery/pkg/adapter"
	"github.com/plancraft/refinery/pkg/artifact"
	"github.com/plancraft/refinery/pkg/config"
)

// Critic is the refiner role: it reviews drafts with structured feedback and
// performs the final formatting pass. The final pass uses its own binding so
// it can run at a lower temperature.
type Critic struct {
	adapter adapter.Adapter
	binding config.Binding
	final   config.Binding
	finalAd adapter.Adapter
	timeout time.Duration
}

// NewCritic binds the critic and finalizer roles to their configured
// adapters.
func NewCritic(adapters map[string]adapter.Adapter, agents *config.AgentConfig) (*Critic, error) {
	binding, err := agents.Role(config.RoleCritic)
	if err != nil {
		return nil, err
	}
	a, ok := adapters[binding.Adapter]
	if !ok {
		return nil, fmt.Errorf("critic adapter %q not available", binding.Adapter)
	}

	final, err := agents.Role(config.RoleFinalizer)
	if err != nil {
		return nil, err
	}
	fa, ok := adapters[final.Adapter]
	if !ok {
		return nil, fmt.Errorf("finalizer adapter %q not available", final.Adapter)
	}

	return &Critic{
		adapter: a,
		binding: binding,
		final:   final,
		finalAd: fa,
		timeout: agents.RequestTimeout,
	}, nil
}

// Critique reviews a roadmap and returns structured feedback.
func (c *Critic) Critique(ctx context.Context, roadmap string) (*artifact.Artifact, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.adapter.Generate(callCtx, c.binding.Model, adapter.Request{
		Prompt:      fmt.Sprintf(critiquePrompt, roadmap),
		Temperature: c.binding.Temperature,
	})
}

// Finalize performs the final pass: it polishes the revised roadmap into a
// standalone document with no commentary about the refinement process.
func (c *Critic) Finalize(ctx context.Context, roadmap string) (*artifact.Artifact, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.finalAd.Generate(callCtx, c.final.Model, adapter.Request{
		Prompt:      fmt.Sprintf(finalizePrompt, roadmap),
		Temperature: c.final.Temperature,
	})
}
