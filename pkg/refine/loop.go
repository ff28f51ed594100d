// Package refine implements the generator/critic refinement loop: a fixed
// four-step cycle (draft, critique, revise, finalize) between two agent
// roles. The loop is all-or-nothing: any step failure aborts the run with no
// partial roadmap, unlike the synthesis pipeline which tolerates failed
// stages.
package refine

import (
	"context"
	"fmt"
	"log"

	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/history"
	"github.com/plancraft/refinery/pkg/textproc"
)

// Iterations is the fixed iteration count reported in run metadata.
const Iterations = 3

// Step names recorded in the workflow trail.
const (
	StepDraft    = "generator_draft"
	StepCritique = "critic_review"
	StepRevise   = "generator_revise"
	StepFinalize = "critic_final"
)

// StepError reports which loop step failed and why.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("refinement step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Loop runs the fixed refinement cycle.
type Loop struct {
	generator *Generator
	critic    *Critic
	logger    func(format string, args ...any)
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets a custom logger for observable output.
func WithLogger(logger func(format string, args ...any)) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a refinement loop from the two roles.
func NewLoop(generator *Generator, critic *Critic, opts ...LoopOption) *Loop {
	l := &Loop{
		generator: generator,
		critic:    critic,
		logger:    log.Printf,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes the four steps against the prepared input and returns the
// final roadmap. Each step is appended to the trail with iteration indices
// 1,1,2,3. A failed step returns a StepError and nothing else.
func (l *Loop) Run(ctx context.Context, prepared textproc.PreparedInput, projectType classify.ProjectType, trail *history.Trail) (string, error) {
	description := prepared.Content
	if prepared.Mode == textproc.ModeChunked {
		description = chunkedFraming(prepared.Summary, prepared.ChunkCount, prepared.TokenCount)
	}

	l.log("[refine] iteration 1: generator drafting roadmap")
	draft, err := l.generator.Draft(ctx, description, projectType)
	if err != nil {
		return "", &StepError{Step: StepDraft, Err: err}
	}
	trail.Record(StepDraft, 1, draft.Content)

	l.log("[refine] iteration 1: critic reviewing draft")
	feedback, err := l.critic.Critique(ctx, draft.Content)
	if err != nil {
		return "", &StepError{Step: StepCritique, Err: err}
	}
	trail.Record(StepCritique, 1, feedback.Content)

	l.log("[refine] iteration 2: generator revising roadmap")
	revised, err := l.generator.Revise(ctx, draft.Content, feedback.Content)
	if err != nil {
		return "", &StepError{Step: StepRevise, Err: err}
	}
	trail.Record(StepRevise, 2, revised.Content)

	l.log("[refine] iteration 3: critic final pass")
	final, err := l.critic.Finalize(ctx, revised.Content)
	if err != nil {
		return "", &StepError{Step: StepFinalize, Err: err}
	}
	trail.Record(StepFinalize, 3, final.Content)

	return final.Content, nil
}

func (l *Loop) log(format string, args ...any) {
	if l.logger != nil {
		l.logger(format, args...)
	}
}
