package adapter

import (
	"context"
	"errors"
	"testing"
)

func TestMockAdapterKeyedResponses(t *testing.T) {
	mock := NewMockAdapter()
	mock.RespondWith("aquarium", "canned aquarium plan")

	art, err := mock.Generate(context.Background(), "", Request{Prompt: "plan my aquarium build"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Content != "canned aquarium plan" {
		t.Errorf("expected keyed response, got %q", art.Content)
	}
	if art.Adapter != "mock" {
		t.Errorf("artifact must carry the adapter name, got %q", art.Adapter)
	}
}

func TestMockAdapterMatchesSystemPrompt(t *testing.T) {
	mock := NewMockAdapter()
	mock.RespondWith("project strategist", "strategist reply")

	art, err := mock.Generate(context.Background(), "", Request{
		System: "You are a project strategist.",
		Prompt: "something unrelated",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Content != "strategist reply" {
		t.Errorf("keys must match against the combined prompt, got %q", art.Content)
	}
}

func TestMockAdapterScriptedFailure(t *testing.T) {
	mock := NewMockAdapter()
	boom := errors.New("rate limited")
	mock.FailWith("architecture", boom)

	_, err := mock.Generate(context.Background(), "", Request{Prompt: "design the architecture"})
	if err == nil {
		t.Fatal("expected scripted failure")
	}
	if !errors.Is(err, boom) {
		t.Errorf("scripted error must be wrapped, got %v", err)
	}
	if !IsCallFailure(err) {
		t.Errorf("adapter errors must count as call failures")
	}
}

func TestMockAdapterRecordsCalls(t *testing.T) {
	mock := NewMockAdapter()

	for _, prompt := range []string{"one", "two"} {
		if _, err := mock.Generate(context.Background(), "", Request{Prompt: prompt}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	calls := mock.Calls()
	if len(calls) != 2 || calls[0].Prompt != "one" || calls[1].Prompt != "two" {
		t.Errorf("calls not recorded in order: %+v", calls)
	}
}

func TestMockAdapterHonorsContext(t *testing.T) {
	mock := NewMockAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, "", Request{Prompt: "anything"}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestIsCallFailure(t *testing.T) {
	if IsCallFailure(nil) {
		t.Error("nil is not a call failure")
	}
	if !IsCallFailure(context.DeadlineExceeded) {
		t.Error("timeout must count as a call failure")
	}
	if IsCallFailure(errors.New("some programmer mistake")) {
		t.Error("plain errors are not call failures")
	}
	if !IsCallFailure(&AdapterError{Adapter: "openai", Status: 429}) {
		t.Error("adapter errors are call failures")
	}
}
