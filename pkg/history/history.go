// Package history records the ordered step trail of one workflow run. The
// trail is diagnostic metadata for the response; control decisions never read
// it. Nothing is persisted across requests.
package history

import (
	"time"
)

// PreviewLimit bounds the stored content preview per step.
const PreviewLimit = 200

// StepRecord captures one completed workflow step.
type StepRecord struct {
	Step          string    `json:"step"`
	Iteration     int       `json:"iteration"`
	Timestamp     time.Time `json:"timestamp"`
	ContentLength int       `json:"content_length"`
	Preview       string    `json:"preview"`
}

// Trail is an append-only list of step records scoped to one request.
type Trail struct {
	records []StepRecord
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Record appends a step with a bounded content preview.
func (t *Trail) Record(step string, iteration int, content string) {
	preview := content
	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit] + "..."
	}
	t.records = append(t.records, StepRecord{
		Step:          step,
		Iteration:     iteration,
		Timestamp:     time.Now().UTC(),
		ContentLength: len(content),
		Preview:       preview,
	})
}

// Steps returns a copy of the recorded steps in order.
func (t *Trail) Steps() []StepRecord {
	out := make([]StepRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of recorded steps.
func (t *Trail) Len() int {
	return len(t.records)
}

// Summary is a compact view of a trail for diagnostics.
type Summary struct {
	TotalSteps int           `json:"total_steps"`
	Steps      []SummaryStep `json:"steps"`
}

// SummaryStep is one entry of a Summary.
type SummaryStep struct {
	Step          string `json:"step"`
	Iteration     int    `json:"iteration"`
	ContentLength int    `json:"content_length"`
}

// Summarize builds a Summary from the trail.
func (t *Trail) Summarize() Summary {
	s := Summary{TotalSteps: len(t.records)}
	for _, r := range t.records {
		s.Steps = append(s.Steps, SummaryStep{
			Step:          r.Step,
			Iteration:     r.Iteration,
			ContentLength: r.ContentLength,
		})
	}
	return s
}
