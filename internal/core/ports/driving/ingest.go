package driving

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// IngestService turns one uploaded notice into durable, searchable
// knowledge: raw persistence, text extraction, structured
// summarization, summary persistence, then chunk embedding and
// indexing. Side effects are strictly additive; a failure never rolls
// back steps that already completed.
type IngestService interface {
	// Ingest processes one upload end to end. Extraction and
	// summarization failures abort the request (domain.ErrExtraction,
	// domain.ErrSummarization); an indexing failure is reported inside
	// the result instead of as an error.
	Ingest(ctx context.Context, upload domain.Upload) (*domain.IngestResult, error)
}
