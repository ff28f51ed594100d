package refine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plancraft/refinery/pkg/adapter"
	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/config"
	"github.com/plancraft/refinery/pkg/history"
	"github.com/plancraft/refinery/pkg/textproc"
)

// Prompt fragments unique to each loop step, used to key mock responses.
const (
	draftKey    = "Create a comprehensive, specific project roadmap"
	critiqueKey = "ROADMAP TO ANALYZE"
	reviseKey   = "Create an improved version"
	finalizeKey = "FINAL ROADMAP"
)

func testAgentConfig() *config.AgentConfig {
	return &config.AgentConfig{
		Roles: map[string]config.Binding{
			config.RoleGenerator: {Adapter: "mock", Model: "mock-1", Temperature: 0.7},
			config.RoleCritic:    {Adapter: "mock", Model: "mock-1", Temperature: 0.8},
			config.RoleFinalizer: {Adapter: "mock", Model: "mock-1", Temperature: 0.3},
		},
		RequestTimeout: time.Second,
	}
}

func newTestLoop(t *testing.T, mock *adapter.MockAdapter) *Loop {
	t.Helper()
	adapters := map[string]adapter.Adapter{"mock": mock}

	generator, err := NewGenerator(adapters, testAgentConfig(), nil)
	require.NoError(t, err)
	critic, err := NewCritic(adapters, testAgentConfig())
	require.NoError(t, err)

	return NewLoop(generator, critic, WithLogger(t.Logf))
}

func TestLoopRunsFourSteps(t *testing.T) {
	mock := adapter.NewMockAdapter()
	mock.RespondWith(draftKey, "draft-1")
	mock.RespondWith(critiqueKey, "feedback-1")
	mock.RespondWith(reviseKey, "revised-1")
	mock.RespondWith(finalizeKey, "final-1")

	loop := newTestLoop(t, mock)
	trail := history.NewTrail()
	prepared := textproc.PreparedInput{Mode: textproc.ModeDirect, Content: "a todo app", TokenCount: 4}

	roadmap, err := loop.Run(context.Background(), prepared, classify.ProjectGeneralSoftware, trail)
	require.NoError(t, err)
	assert.Equal(t, "final-1", roadmap)

	steps := trail.Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, []string{StepDraft, StepCritique, StepRevise, StepFinalize},
		[]string{steps[0].Step, steps[1].Step, steps[2].Step, steps[3].Step})
	assert.Equal(t, []int{1, 1, 2, 3},
		[]int{steps[0].Iteration, steps[1].Iteration, steps[2].Iteration, steps[3].Iteration})
}

func TestLoopChainsStepOutputs(t *testing.T) {
	mock := adapter.NewMockAdapter()
	mock.RespondWith(draftKey, "draft-1")
	mock.RespondWith(critiqueKey, "feedback-1")
	mock.RespondWith(reviseKey, "revised-1")
	mock.RespondWith(finalizeKey, "final-1")

	loop := newTestLoop(t, mock)

	_, err := loop.Run(context.Background(),
		textproc.PreparedInput{Mode: textproc.ModeDirect, Content: "a todo app"},
		classify.ProjectGeneralSoftware, history.NewTrail())
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 4)
	// Critique sees the draft; revise sees draft and feedback but not the
	// original input; finalize sees only the revision.
	assert.Contains(t, calls[1].Prompt, "draft-1")
	assert.Contains(t, calls[2].Prompt, "draft-1")
	assert.Contains(t, calls[2].Prompt, "feedback-1")
	assert.NotContains(t, calls[2].Prompt, "a todo app")
	assert.Contains(t, calls[3].Prompt, "revised-1")
}

func TestLoopAbortsOnStepFailure(t *testing.T) {
	mock := adapter.NewMockAdapter()
	mock.RespondWith(draftKey, "draft-1")
	mock.FailWith(critiqueKey, errors.New("rate limited"))

	loop := newTestLoop(t, mock)
	trail := history.NewTrail()

	roadmap, err := loop.Run(context.Background(),
		textproc.PreparedInput{Mode: textproc.ModeDirect, Content: "a todo app"},
		classify.ProjectGeneralSoftware, trail)

	require.Error(t, err)
	assert.Empty(t, roadmap, "a failed loop must return no partial roadmap")

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepCritique, stepErr.Step)

	// Only the steps before the failure are recorded.
	assert.Equal(t, 1, trail.Len())
}

func TestLoopFramesChunkedInput(t *testing.T) {
	mock := adapter.NewMockAdapter()
	mock.RespondWith(draftKey, "draft-1")
	mock.RespondWith(critiqueKey, "feedback-1")
	mock.RespondWith(reviseKey, "revised-1")
	mock.RespondWith(finalizeKey, "final-1")

	loop := newTestLoop(t, mock)
	prepared := textproc.PreparedInput{
		Mode:       textproc.ModeChunked,
		Summary:    "Section 1:\ncondensed requirements",
		TokenCount: 5000,
		ChunkCount: 3,
	}

	_, err := loop.Run(context.Background(), prepared, classify.ProjectGeneralSoftware, history.NewTrail())
	require.NoError(t, err)

	calls := mock.Calls()
	require.NotEmpty(t, calls)
	assert.Contains(t, calls[0].Prompt, "condensed requirements")
	assert.Contains(t, calls[0].Prompt, "3 sections")
	assert.Contains(t, calls[0].Prompt, "5000 tokens")
}

func TestNewGeneratorRequiresBinding(t *testing.T) {
	adapters := map[string]adapter.Adapter{"mock": adapter.NewMockAdapter()}

	_, err := NewGenerator(adapters, &config.AgentConfig{Roles: map[string]config.Binding{}}, nil)
	assert.Error(t, err)

	_, err = NewGenerator(adapters, &config.AgentConfig{
		Roles: map[string]config.Binding{
			config.RoleGenerator: {Adapter: "missing", Model: "m"},
		},
	}, nil)
	assert.Error(t, err)
}
