package textproc

import (
	"strings"
	"testing"
)

func TestPrepareDirectIdentity(t *testing.T) {
	p := NewProcessor()
	text := "Build me a simple todo app with reminders and a weekly summary view."

	prepared := p.Prepare(text)

	if prepared.Mode != ModeDirect {
		t.Fatalf("expected direct mode, got %s", prepared.Mode)
	}
	if prepared.Content != text {
		t.Errorf("direct mode must pass content through unchanged")
	}
	if prepared.TokenCount <= 0 {
		t.Errorf("expected positive token count, got %d", prepared.TokenCount)
	}
	if prepared.ChunkCount != 0 || len(prepared.Chunks) != 0 {
		t.Errorf("direct mode must not produce chunks")
	}
}

func TestPrepareChunkedLongInput(t *testing.T) {
	p := NewProcessor()
	text := strings.Repeat("The quick brown fox jumps over the lazy dog near the river bank. ", 500)

	prepared := p.Prepare(text)

	if prepared.Mode != ModeChunked {
		t.Fatalf("expected chunked mode, got %s", prepared.Mode)
	}
	if prepared.TokenCount <= TokenThreshold {
		t.Fatalf("test input too small: %d tokens", prepared.TokenCount)
	}
	if prepared.ChunkCount < 2 {
		t.Errorf("expected multiple chunks, got %d", prepared.ChunkCount)
	}
	if prepared.ChunkCount != len(prepared.Chunks) {
		t.Errorf("chunk count %d does not match %d chunks", prepared.ChunkCount, len(prepared.Chunks))
	}
	if prepared.Summary == "" {
		t.Errorf("chunked mode must produce a summary")
	}
}

func TestChunkSingleWindow(t *testing.T) {
	p := NewProcessor()
	text := "Short input that fits in one window."

	chunks := p.Chunk(text)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("single-window chunking must return the text unchanged")
	}
}

func TestChunkBoundariesAndOverlap(t *testing.T) {
	p := &Processor{chunkSize: 100, overlap: 20}
	text := strings.Repeat("The filter pump cycles on every hour to keep the tank clear. ", 20)

	chunks := p.Chunk(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk == "" {
			t.Fatalf("chunk %d is empty", i)
		}
		if len(chunk) > p.chunkSize {
			t.Errorf("chunk %d exceeds window: %d chars", i, len(chunk))
		}
		// Every window contains a sentence terminator, so every cut
		// should land on one.
		if !strings.HasSuffix(chunk, ".") {
			t.Errorf("chunk %d does not end at a sentence boundary: %q", i, chunk)
		}
	}
	for i := 0; i < len(chunks)-1; i++ {
		next := chunks[i+1]
		if len(next) > 10 {
			next = next[:10]
		}
		if !strings.Contains(chunks[i], next) {
			t.Errorf("chunk %d does not overlap with chunk %d", i, i+1)
		}
	}
}

func TestSummarizeSingleChunkIdentity(t *testing.T) {
	p := NewProcessor()
	chunk := "A single chunk passes through summarization untouched, whitespace and all."

	if got := p.Summarize([]string{chunk}); got != chunk {
		t.Errorf("expected identity for single chunk, got %q", got)
	}
}

func TestSummarizeLabelsSections(t *testing.T) {
	p := NewProcessor()
	chunks := []string{
		"- sensor calibration\n- pump control\n- alert thresholds",
		"The second portion of the document describes the cloud backend in much greater detail than anyone asked for, covering ingestion, storage and several dashboard views across multiple paragraphs of prose. It continues with deployment notes. It ends with open questions.",
	}

	summary := p.Summarize(chunks)

	if !strings.Contains(summary, "Section 1:") || !strings.Contains(summary, "Section 2:") {
		t.Fatalf("summary missing section labels:\n%s", summary)
	}
	if !strings.Contains(summary, "- sensor calibration") {
		t.Errorf("summary should keep list items from chunk 1")
	}
}

func TestSummarizeKeyLineLimit(t *testing.T) {
	p := NewProcessor()
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, "- bullet item")
	}
	chunks := []string{strings.Join(lines, "\n"), "Second chunk so summarize does not short-circuit."}

	summary := p.Summarize(chunks)

	section1 := strings.Split(summary, "\n\n")[0]
	if got := strings.Count(section1, "- bullet item"); got > 5 {
		t.Errorf("expected at most 5 key lines per section, got %d", got)
	}
}

func TestTokenCountTracksOriginalText(t *testing.T) {
	p := NewProcessor()
	text := strings.Repeat("Sentence after sentence describing the build in exhaustive detail. ", 400)

	prepared := p.Prepare(text)

	if prepared.Mode != ModeChunked {
		t.Fatalf("expected chunked mode, got %s", prepared.Mode)
	}
	if prepared.TokenCount != p.CountTokens(text) {
		t.Errorf("token count must reflect the original text, not the summary")
	}
}
