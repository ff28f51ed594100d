// Package textproc normalizes raw project descriptions so they fit model
// context budgets: small inputs pass through untouched, oversized inputs are
// chunked at sentence boundaries and condensed into a per-section summary.
package textproc

import (
	"fmt"
	"strings"

	"github.com/tiktoken-go/tokenizer"
)

// Mode describes how an input was prepared.
type Mode string

const (
	ModeDirect  Mode = "direct"
	ModeChunked Mode = "chunked"
)

const (
	// TokenThreshold is the largest input passed downstream unmodified.
	TokenThreshold = 2000
	// DefaultChunkSize is the chunk window in characters.
	DefaultChunkSize = 3000
	// DefaultOverlap is the character overlap between adjacent chunks and
	// also the lookback window for sentence-break detection.
	DefaultOverlap = 200
)

// PreparedInput is the preprocessor output. TokenCount always reflects the
// original unprocessed text, even in chunked mode where only the summary is
// sent downstream.
type PreparedInput struct {
	Mode       Mode     `json:"mode"`
	Content    string   `json:"content,omitempty"`
	Chunks     []string `json:"chunks,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	TokenCount int      `json:"token_count"`
	ChunkCount int      `json:"chunk_count,omitempty"`
}

// Processor splits and summarizes oversized text.
type Processor struct {
	chunkSize int
	overlap   int
	codec     tokenizer.Codec
}

// NewProcessor creates a processor with the default chunk geometry. Token
// counts use the GPT-4 encoding; if the codec cannot be constructed the
// processor falls back to a 4-characters-per-token estimate.
func NewProcessor() *Processor {
	p := &Processor{chunkSize: DefaultChunkSize, overlap: DefaultOverlap}
	if codec, err := tokenizer.ForModel(tokenizer.GPT4); err == nil {
		p.codec = codec
	}
	return p
}

// CountTokens returns the approximate token count of text.
func (p *Processor) CountTokens(text string) int {
	if p.codec != nil {
		if count, err := p.codec.Count(text); err == nil {
			return count
		}
	}
	return len(text) / 4
}

// Prepare classifies the input as direct or chunked and builds the summary
// for chunked inputs.
func (p *Processor) Prepare(text string) PreparedInput {
	tokenCount := p.CountTokens(text)

	if tokenCount <= TokenThreshold {
		return PreparedInput{
			Mode:       ModeDirect,
			Content:    text,
			TokenCount: tokenCount,
		}
	}

	chunks := p.Chunk(text)
	return PreparedInput{
		Mode:       ModeChunked,
		Chunks:     chunks,
		Summary:    p.Summarize(chunks),
		TokenCount: tokenCount,
		ChunkCount: len(chunks),
	}
}

// Chunk splits text into overlapping windows, preferring to cut at a sentence
// terminator or blank-line paragraph break found within the lookback window.
// Chunks that trim to empty are discarded.
func (p *Processor) Chunk(text string) []string {
	if len(text) <= p.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + p.chunkSize

		if end < len(text) {
			searchStart := end - DefaultOverlap
			if searchStart < start {
				searchStart = start
			}
			if brk := findBreak(text, end, searchStart); brk != -1 {
				end = brk
			}
		}

		sliceEnd := end
		if sliceEnd > len(text) {
			sliceEnd = len(text)
		}
		if chunk := strings.TrimSpace(text[start:sliceEnd]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		start = end - p.overlap
		if start >= len(text) {
			break
		}
	}

	return chunks
}

// findBreak searches backward from end to searchStart (exclusive) for a
// sentence terminator or a blank-line paragraph break. It returns the cut
// position just after the break, or -1.
func findBreak(text string, end, searchStart int) int {
	for i := end; i > searchStart; i-- {
		c := text[i]
		if c == '.' || c == '!' || c == '?' {
			return i + 1
		}
		if c == '\n' && i > 0 && text[i-1] == '\n' {
			return i + 1
		}
	}
	return -1
}

// Summarize condenses chunks into labeled sections. A single chunk is
// returned unchanged. Each section keeps up to five key lines (list items or
// short lines), falling back to the chunk's first three sentences.
func (p *Processor) Summarize(chunks []string) string {
	if len(chunks) == 0 {
		return ""
	}
	if len(chunks) == 1 {
		return chunks[0]
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		keyLines := extractKeyLines(chunk, 5)
		if len(keyLines) > 0 {
			parts = append(parts, fmt.Sprintf("Section %d:\n%s", i+1, strings.Join(keyLines, "\n")))
			continue
		}
		sentences := strings.Split(chunk, ". ")
		if len(sentences) > 3 {
			sentences = sentences[:3]
		}
		parts = append(parts, fmt.Sprintf("Section %d:\n%s.", i+1, strings.Join(sentences, ". ")))
	}

	return strings.Join(parts, "\n\n")
}

func extractKeyLines(chunk string, limit int) []string {
	var keyLines []string
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isListItem(line) || len(line) < 100 {
			keyLines = append(keyLines, line)
			if len(keyLines) == limit {
				break
			}
		}
	}
	return keyLines
}

func isListItem(line string) bool {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return true
	}
	// Numbered list markers like "1." through "9."
	if len(line) >= 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
		return true
	}
	return false
}
