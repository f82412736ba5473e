package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL with
// the pgvector extension. The store is constructed with the embedding
// dimension of its schema and rejects vectors of any other length
// before they reach the database.
type DocumentStore struct {
	db         *DB
	dimensions int
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB, dimensions int) *DocumentStore {
	return &DocumentStore{db: db, dimensions: dimensions}
}

const insertDocumentQuery = `
	INSERT INTO documents (id, content, embedding, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5)
`

// Insert stores one document record
func (s *DocumentStore) Insert(ctx context.Context, doc *domain.Document) error {
	if err := s.checkDimensions(doc); err != nil {
		return err
	}
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return err
	}
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx, insertDocumentQuery,
		doc.ID,
		doc.Content,
		pgvector.NewVector(doc.Embedding),
		metadataJSON,
		createdAt,
	)
	return err
}

// InsertBatch stores multiple document records in one transaction
func (s *DocumentStore) InsertBatch(ctx context.Context, docs []*domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	for _, doc := range docs {
		if err := s.checkDimensions(doc); err != nil {
			return err
		}
	}

	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertDocumentQuery)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, doc := range docs {
			metadataJSON, err := json.Marshal(doc.Metadata)
			if err != nil {
				return err
			}
			createdAt := doc.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now()
			}
			if _, err := stmt.ExecContext(ctx,
				doc.ID, doc.Content, pgvector.NewVector(doc.Embedding), metadataJSON, createdAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// Query returns the k records nearest to vector by L2 distance
func (s *DocumentStore) Query(ctx context.Context, vector []float32, k int) ([]domain.ScoredDocument, error) {
	if len(vector) != s.dimensions {
		return nil, fmt.Errorf("%w: got %d, store expects %d",
			domain.ErrDimensionMismatch, len(vector), s.dimensions)
	}
	if k <= 0 {
		k = 1
	}

	query := `
		SELECT id, content, metadata, created_at, embedding <-> $1 AS distance
		FROM documents
		ORDER BY embedding <-> $1
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, pgvector.NewVector(vector), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ScoredDocument
	for rows.Next() {
		var (
			doc          domain.Document
			metadataJSON []byte
			distance     float64
		)
		if err := rows.Scan(&doc.ID, &doc.Content, &metadataJSON, &doc.CreatedAt, &distance); err != nil {
			return nil, err
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &doc.Metadata); err != nil {
				return nil, err
			}
		}
		results = append(results, domain.ScoredDocument{Document: &doc, Distance: distance})
	}
	return results, rows.Err()
}

// Dimensions returns the embedding dimension the store accepts
func (s *DocumentStore) Dimensions() int {
	return s.dimensions
}

// Count returns the number of stored records
func (s *DocumentStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

func (s *DocumentStore) checkDimensions(doc *domain.Document) error {
	if len(doc.Embedding) != s.dimensions {
		return fmt.Errorf("%w: document %s has %d, store expects %d",
			domain.ErrDimensionMismatch, doc.ID, len(doc.Embedding), s.dimensions)
	}
	return nil
}
