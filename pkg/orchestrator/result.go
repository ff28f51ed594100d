package orchestrator

import (
	"time"

	"github.com/google/uuid"

	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/history"
)

// Processing type tags reported in result metadata.
const (
	ProcessingStandard  = "standard"
	ProcessingComplexAI = "multi_agent_complex"
	ProcessingIoT       = "iot_hardware_specialist"
)

// Metadata describes one completed run. ConfidenceScores is populated only
// for synthesis runs; Iterations only for refinement runs.
type Metadata struct {
	RequestID         string             `json:"request_id"`
	ProcessingType    string             `json:"processing_type"`
	ProcessingTime    float64            `json:"processing_time"`
	Timestamp         time.Time          `json:"timestamp"`
	Category          classify.Category  `json:"category"`
	Iterations        int                `json:"iterations,omitempty"`
	AgentsUsed        []string           `json:"agents_used,omitempty"`
	ConfidenceScores  map[string]float64 `json:"confidence_scores,omitempty"`
	TotalTokens       int                `json:"total_tokens,omitempty"`
	FallbackTriggered bool               `json:"fallback_triggered,omitempty"`
	WorkflowHistory   history.Summary    `json:"workflow_history"`
}

// RoadmapResult is the canonical output envelope: the roadmap text plus run
// metadata. It is the only externally observable artifact besides errors.
type RoadmapResult struct {
	Roadmap  string   `json:"roadmap"`
	Metadata Metadata `json:"metadata"`
}

// requestContext is the unit of work for one run. It is created at entry,
// mutated only by the orchestrator, and discarded after the response.
type requestContext struct {
	id        string
	input     string
	startedAt time.Time
	trail     *history.Trail
}

func newRequestContext(input string) *requestContext {
	return &requestContext{
		id:        uuid.NewString(),
		input:     input,
		startedAt: time.Now(),
		trail:     history.NewTrail(),
	}
}
