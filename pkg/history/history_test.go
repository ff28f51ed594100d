package history

import (
	"strings"
	"testing"
)

func TestTrailRecordsInOrder(t *testing.T) {
	trail := NewTrail()
	trail.Record("draft", 1, "first output")
	trail.Record("review", 1, "second output")
	trail.Record("revise", 2, "third output")

	steps := trail.Steps()
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[0].Step != "draft" || steps[2].Step != "revise" {
		t.Errorf("steps out of order: %+v", steps)
	}
	if steps[2].Iteration != 2 {
		t.Errorf("expected iteration 2 on revise, got %d", steps[2].Iteration)
	}
}

func TestPreviewIsBounded(t *testing.T) {
	trail := NewTrail()
	content := strings.Repeat("x", PreviewLimit*2)
	trail.Record("draft", 1, content)

	step := trail.Steps()[0]
	if step.ContentLength != len(content) {
		t.Errorf("content length must reflect the full content")
	}
	if len(step.Preview) != PreviewLimit+3 {
		t.Errorf("expected bounded preview with ellipsis, got %d chars", len(step.Preview))
	}
	if !strings.HasSuffix(step.Preview, "...") {
		t.Errorf("truncated preview must end with ellipsis")
	}
}

func TestSummarize(t *testing.T) {
	trail := NewTrail()
	trail.Record("draft", 1, "alpha")
	trail.Record("review", 1, "beta beta")

	summary := trail.Summarize()

	if summary.TotalSteps != 2 {
		t.Fatalf("expected 2 steps, got %d", summary.TotalSteps)
	}
	if summary.Steps[1].ContentLength != len("beta beta") {
		t.Errorf("summary content length mismatch: %+v", summary.Steps[1])
	}
}
