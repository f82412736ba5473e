// Package chunker splits extracted text into fixed-size overlapping
// windows for embedding. Retrieval stays granular and every chunk fits
// the embedding model's input limit.
package chunker

import (
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

const (
	// DefaultWindow is the chunk size in characters (runes)
	DefaultWindow = 1000

	// DefaultOverlap is how many characters consecutive chunks share
	DefaultOverlap = 200
)

// Chunker produces contiguous rune windows of fixed size with fixed
// overlap. For text of length L the chunk count is
// ceil((L-O)/(W-O)); text no longer than one window yields exactly
// one chunk.
type Chunker struct {
	window  int
	overlap int
}

// New creates a Chunker. Non-positive or inconsistent parameters fall
// back to the defaults.
func New(window, overlap int) *Chunker {
	if window <= 0 {
		window = DefaultWindow
	}
	if overlap < 0 || overlap >= window {
		overlap = DefaultOverlap
		if overlap >= window {
			overlap = window / 5
		}
	}
	return &Chunker{window: window, overlap: overlap}
}

// Window returns the configured chunk size
func (c *Chunker) Window() int { return c.window }

// Overlap returns the configured overlap
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits text into windows. Empty text yields no chunks.
// Offsets are rune positions within the input.
func (c *Chunker) Chunk(text string) []domain.Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := c.window - c.overlap
	var chunks []domain.Chunk
	for start, pos := 0, 0; start < len(runes); start, pos = start+step, pos+1 {
		end := start + c.window
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, domain.Chunk{
			Content:   string(runes[start:end]),
			Position:  pos,
			StartChar: start,
			EndChar:   end,
		})
		if end == len(runes) {
			break
		}
	}
	return chunks
}
