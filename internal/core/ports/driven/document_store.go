package driven

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// DocumentStore persists document records and supports nearest-neighbor
// search over their embeddings. Implementations are constructed with a
// fixed embedding dimension and must reject vectors of any other length
// with domain.ErrDimensionMismatch.
type DocumentStore interface {
	// Insert stores one document record. Records are append-only;
	// there is no dedup across repeated ingestion of the same file.
	Insert(ctx context.Context, doc *domain.Document) error

	// InsertBatch stores multiple document records in one transaction
	InsertBatch(ctx context.Context, docs []*domain.Document) error

	// Query returns the k records nearest to vector, ranked by
	// distance. Ties beyond distance are broken by store-native
	// ordering.
	Query(ctx context.Context, vector []float32, k int) ([]domain.ScoredDocument, error)

	// Dimensions returns the embedding dimension the store accepts
	Dimensions() int

	// Count returns the number of stored records
	Count(ctx context.Context) (int64, error)
}

// InteractionStore records user actions on recommended programs.
// Append-only; entries are never mutated or deleted.
type InteractionStore interface {
	// Log appends one interaction entry; clicked_at is assigned by
	// the store
	Log(ctx context.Context, entry *domain.InteractionLog) error

	// List returns all entries, most recent first
	List(ctx context.Context) ([]*domain.InteractionLog, error)

	// Stats aggregates the log: top clicked programs and per-language
	// usage counts
	Stats(ctx context.Context, topN int) (*domain.InteractionStats, error)
}
