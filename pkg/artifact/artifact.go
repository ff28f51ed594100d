package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Artifact is an immutable record of one LLM completion: the text that came
// back plus enough provenance (adapter, model, prompt) to reproduce the call.
type Artifact struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Adapter   string    `json:"adapter"`
	Model     string    `json:"model"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	Hash      string    `json:"hash"`
}

// New creates an Artifact with a fresh ID and computed content hash.
func New(content, adapter, model, prompt string) *Artifact {
	a := &Artifact{
		ID:        uuid.NewString(),
		Content:   content,
		Adapter:   adapter,
		Model:     model,
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}
	a.Hash = a.computeHash()
	return a
}

// Preview returns at most limit bytes of the content, with an ellipsis when
// truncated. Step-history records use this to keep previews bounded.
func (a *Artifact) Preview(limit int) string {
	if limit <= 0 || len(a.Content) <= limit {
		return a.Content
	}
	return a.Content[:limit] + "..."
}

func (a *Artifact) computeHash() string {
	h := sha256.New()
	h.Write([]byte(a.Content))
	h.Write([]byte(a.Adapter))
	h.Write([]byte(a.Model))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
