package artifact

import (
	"strings"
	"testing"
)

func TestNewArtifact(t *testing.T) {
	a := New("roadmap text", "mock", "mock-1", "draft a roadmap")

	if a.ID == "" {
		t.Error("expected a generated ID")
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if len(a.Hash) != 16 {
		t.Errorf("expected a 16-char hash, got %q", a.Hash)
	}

	same := New("roadmap text", "mock", "mock-1", "different prompt")
	if same.Hash != a.Hash {
		t.Error("hash must depend on content, adapter and model only")
	}
	other := New("other text", "mock", "mock-1", "draft a roadmap")
	if other.Hash == a.Hash {
		t.Error("different content must hash differently")
	}
}

func TestPreview(t *testing.T) {
	a := New(strings.Repeat("x", 100), "mock", "mock-1", "")

	if got := a.Preview(0); got != a.Content {
		t.Errorf("non-positive limit must return full content")
	}
	if got := a.Preview(200); got != a.Content {
		t.Errorf("limit beyond length must return full content")
	}
	if got := a.Preview(10); got != strings.Repeat("x", 10)+"..." {
		t.Errorf("unexpected truncated preview: %q", got)
	}
}
