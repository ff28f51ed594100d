// Package orchestrator is the top-level workflow router. It classifies the
// raw project description, dispatches to exactly one pipeline (the
// generator/critic refinement loop or a multi-agent synthesis variant), and
// normalizes whatever the pipeline returns into the canonical roadmap
// envelope. A synthesis pipeline that cannot be dispatched degrades to the
// refinement loop; a failed refinement loop has no fallback.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/plancraft/refinery/pkg/adapter"
	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/components"
	"github.com/plancraft/refinery/pkg/config"
	"github.com/plancraft/refinery/pkg/refine"
	"github.com/plancraft/refinery/pkg/synthesis"
	"github.com/plancraft/refinery/pkg/textproc"
)

// ErrEmptyInput is returned when the project description is blank.
var ErrEmptyInput = errors.New("project description must not be empty")

// Orchestrator routes requests through classification to the right pipeline.
// It is safe for concurrent use: all per-request state lives in the request
// context, and configuration is read-only after construction.
type Orchestrator struct {
	cfg        *config.Config
	adapters   map[string]adapter.Adapter
	classifier *classify.Classifier
	processor  *textproc.Processor
	catalog    *components.Catalog
	logger     func(format string, args ...any)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets a custom logger for observable output.
func WithLogger(logger func(format string, args ...any)) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithCatalog sets the component catalog used to enrich generator prompts.
// Without one, enrichment is skipped.
func WithCatalog(catalog *components.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// New builds an orchestrator over the given adapters. Pipelines are
// constructed per request so that a variant whose roles cannot be bound
// degrades instead of failing startup.
func New(cfg *config.Config, adapters map[string]adapter.Adapter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:        cfg,
		adapters:   adapters,
		classifier: classify.New(cfg.Signals),
		processor:  textproc.NewProcessor(),
		logger:     log.Printf,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Refine returns only the final roadmap text. On error it returns a
// human-readable error string instead of failing; this is a compatibility
// shim around RefineDetailed for callers that cannot handle typed errors.
func (o *Orchestrator) Refine(ctx context.Context, description string) string {
	result, err := o.RefineDetailed(ctx, description)
	if err != nil {
		return fmt.Sprintf("Error processing request: %v", err)
	}
	return result.Roadmap
}

// RefineDetailed runs the full workflow and returns the structured result.
// Classification runs against the original text, before any chunking.
func (o *Orchestrator) RefineDetailed(ctx context.Context, description string) (*RoadmapResult, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyInput
	}

	req := newRequestContext(description)
	cls := o.classifier.Classify(description)
	o.log("[orchestrator] request %s classified as %s", req.id, cls.Category)

	var (
		result *RoadmapResult
		err    error
	)
	switch cls.Category {
	case classify.CategoryComplexAI:
		result, err = o.runSynthesisWithFallback(ctx, synthesis.VariantComplexAI, req, cls)
	case classify.CategoryIoTHardware:
		result, err = o.runSynthesisWithFallback(ctx, synthesis.VariantIoT, req, cls)
	default:
		result, err = o.runRefinement(ctx, req, cls, false)
	}
	if err != nil {
		return nil, fmt.Errorf("processing failed: %w", err)
	}
	return result, nil
}

// Health reports whether required provider credentials are configured. No
// LLM call is made.
func (o *Orchestrator) Health() config.Status {
	return o.cfg.Status()
}

// runSynthesisWithFallback dispatches a synthesis variant. Only a dispatch
// failure (the pipeline cannot be constructed, or Run fails outside stage
// execution) triggers the refinement fallback; stage-level LLM failures are
// absorbed by the pipeline itself.
func (o *Orchestrator) runSynthesisWithFallback(ctx context.Context, variant synthesis.Variant, req *requestContext, cls classify.Result) (*RoadmapResult, error) {
	result, err := o.runSynthesis(ctx, variant, req, cls)
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	o.log("[orchestrator] synthesis dispatch failed (%v), falling back to refinement loop", err)
	return o.runRefinement(ctx, req, cls, true)
}

func (o *Orchestrator) runSynthesis(ctx context.Context, variant synthesis.Variant, req *requestContext, cls classify.Result) (*RoadmapResult, error) {
	pipeline, err := synthesis.NewPipeline(variant, o.adapters, o.cfg.Agents, synthesis.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	outcome, err := pipeline.Run(ctx, req.input, req.trail)
	if err != nil {
		return nil, err
	}

	totalTokens := 0
	for _, r := range outcome.Results {
		totalTokens += len(r.Content) / 4
	}

	return o.finalize(req, outcome.Roadmap, Metadata{
		ProcessingType:   processingType(variant),
		Category:         cls.Category,
		AgentsUsed:       outcome.AgentsUsed,
		ConfidenceScores: outcome.Confidences,
		TotalTokens:      totalTokens,
	}), nil
}

func (o *Orchestrator) runRefinement(ctx context.Context, req *requestContext, cls classify.Result, fallback bool) (*RoadmapResult, error) {
	generator, err := refine.NewGenerator(o.adapters, o.cfg.Agents, o.catalog)
	if err != nil {
		return nil, err
	}
	critic, err := refine.NewCritic(o.adapters, o.cfg.Agents)
	if err != nil {
		return nil, err
	}

	prepared := o.processor.Prepare(req.input)
	projectType := o.classifier.DetectProjectType(req.input)
	o.log("[orchestrator] refinement loop: mode=%s project_type=%s tokens=%d",
		prepared.Mode, projectType, prepared.TokenCount)

	loop := refine.NewLoop(generator, critic, refine.WithLogger(o.logger))
	roadmap, err := loop.Run(ctx, prepared, projectType, req.trail)
	if err != nil {
		return nil, err
	}

	return o.finalize(req, roadmap, Metadata{
		ProcessingType:    ProcessingStandard,
		Category:          cls.Category,
		Iterations:        refine.Iterations,
		AgentsUsed:        []string{config.RoleGenerator, config.RoleCritic},
		TotalTokens:       prepared.TokenCount,
		FallbackTriggered: fallback,
	}), nil
}

// finalize fills the envelope fields every run shares, substituting defaults
// for anything the pipeline left unset.
func (o *Orchestrator) finalize(req *requestContext, roadmap string, meta Metadata) *RoadmapResult {
	meta.RequestID = req.id
	meta.ProcessingTime = time.Since(req.startedAt).Seconds()
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}
	meta.WorkflowHistory = req.trail.Summarize()
	return &RoadmapResult{Roadmap: roadmap, Metadata: meta}
}

func processingType(variant synthesis.Variant) string {
	if variant == synthesis.VariantIoT {
		return ProcessingIoT
	}
	return ProcessingComplexAI
}

func (o *Orchestrator) log(format string, args ...any) {
	if o.logger != nil {
		o.logger(format, args...)
	}
}
