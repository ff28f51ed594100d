// Package synthesis implements the multi-agent pipelines: a fixed sequence
// of specialist stages whose outputs are merged into a single roadmap
// document. Unlike the refinement loop, a failed stage does not abort the
// run; its section is omitted and its confidence recorded as zero.
package synthesis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/plancraft/refinery/pkg/adapter"
	"github.com/plancraft/refinery/pkg/config"
	"github.com/plancraft/refinery/pkg/history"
)

// Outcome is the result of one pipeline run. Results holds one entry per
// stage in execution order, failed stages included. Confidences always has a
// key for every stage role.
type Outcome struct {
	Roadmap     string
	Results     []AgentResult
	Confidences map[string]float64
	AgentsUsed  []string
}

type stageAgent struct {
	adapter adapter.Adapter
	binding config.Binding
}

// Pipeline runs the specialist stages of one variant in order.
type Pipeline struct {
	variant Variant
	stages  []Stage
	agents  map[string]stageAgent
	timeout time.Duration
	logger  func(format string, args ...any)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for observable output.
func WithLogger(logger func(format string, args ...any)) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline resolves every stage of the variant against the available
// adapters. A missing role binding or adapter is a construction error; the
// caller treats it as a dispatch failure.
func NewPipeline(variant Variant, adapters map[string]adapter.Adapter, agents *config.AgentConfig, opts ...Option) (*Pipeline, error) {
	stages, err := Stages(variant)
	if err != nil {
		return nil, err
	}

	bound := make(map[string]stageAgent, len(stages))
	for _, stage := range stages {
		binding, err := agents.Role(stage.Role)
		if err != nil {
			return nil, err
		}
		a, ok := adapters[binding.Adapter]
		if !ok {
			return nil, fmt.Errorf("stage %s: adapter %q not available", stage.Role, binding.Adapter)
		}
		bound[stage.Role] = stageAgent{adapter: a, binding: binding}
	}

	p := &Pipeline{
		variant: variant,
		stages:  stages,
		agents:  bound,
		timeout: agents.RequestTimeout,
		logger:  log.Printf,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Variant returns the pipeline's shape.
func (p *Pipeline) Variant() Variant { return p.variant }

// Run executes every stage in order against the project description,
// records each stage in the trail, and synthesizes the final document from
// the successful results. Run fails only when the context is done before a
// stage starts; per-stage LLM errors are folded into the outcome.
func (p *Pipeline) Run(ctx context.Context, description string, trail *history.Trail) (*Outcome, error) {
	outcome := &Outcome{
		Confidences: make(map[string]float64, len(p.stages)),
		AgentsUsed:  make([]string, 0, len(p.stages)),
	}
	byRole := make(map[string]AgentResult, len(p.stages))

	for i, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcome.AgentsUsed = append(outcome.AgentsUsed, stage.Role)

		p.log("[synthesis] stage %d/%d: %s", i+1, len(p.stages), stage.Role)
		result := p.runStage(ctx, stage, description, byRole)
		byRole[stage.Role] = result
		outcome.Results = append(outcome.Results, result)
		outcome.Confidences[stage.Role] = result.Confidence

		if result.Failed() {
			p.log("[synthesis] stage %s failed: %s", stage.Role, result.Err)
			trail.Record(stage.Role, i+1, "")
			continue
		}
		trail.Record(stage.Role, i+1, result.Content)
	}

	outcome.Roadmap = synthesize(p.variant, p.stages, byRole)
	return outcome, nil
}

func (p *Pipeline) runStage(ctx context.Context, stage Stage, description string, prior map[string]AgentResult) AgentResult {
	agent := p.agents[stage.Role]
	system, prompt := stage.Prompt(description, prior)

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	art, err := agent.adapter.Generate(callCtx, agent.binding.Model, adapter.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: agent.binding.Temperature,
	})
	if err != nil {
		return AgentResult{
			AgentType: stage.Role,
			Err:       fmt.Sprintf("%s agent error: %v", stage.Role, err),
		}
	}

	return AgentResult{
		Content:    art.Content,
		AgentType:  stage.Role,
		Confidence: stage.Confidence,
	}
}

func (p *Pipeline) log(format string, args ...any) {
	if p.logger != nil {
		p.logger(format, args...)
	}
}
