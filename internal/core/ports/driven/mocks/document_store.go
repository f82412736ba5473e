package mocks

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// MockDocumentStore is an in-memory mock implementation of
// DocumentStore for testing. Query ranks by Euclidean distance.
type MockDocumentStore struct {
	mu         sync.RWMutex
	dimensions int
	documents  []*domain.Document
	insertErr  error
	queryErr   error
}

// NewMockDocumentStore creates a new MockDocumentStore accepting
// vectors of the given dimension
func NewMockDocumentStore(dimensions int) *MockDocumentStore {
	return &MockDocumentStore{dimensions: dimensions}
}

func (m *MockDocumentStore) Insert(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if len(doc.Embedding) != m.dimensions {
		return fmt.Errorf("%w: got %d, store expects %d",
			domain.ErrDimensionMismatch, len(doc.Embedding), m.dimensions)
	}
	m.documents = append(m.documents, doc)
	return nil
}

func (m *MockDocumentStore) InsertBatch(ctx context.Context, docs []*domain.Document) error {
	for _, doc := range docs {
		if err := m.Insert(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockDocumentStore) Query(ctx context.Context, vector []float32, k int) ([]domain.ScoredDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if len(vector) != m.dimensions {
		return nil, fmt.Errorf("%w: got %d, store expects %d",
			domain.ErrDimensionMismatch, len(vector), m.dimensions)
	}

	scored := make([]domain.ScoredDocument, 0, len(m.documents))
	for _, doc := range m.documents {
		scored = append(scored, domain.ScoredDocument{
			Document: doc,
			Distance: euclidean(vector, doc.Embedding),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})
	if k < len(scored) {
		scored = scored[:k]
	}
	return scored, nil
}

func (m *MockDocumentStore) Dimensions() int {
	return m.dimensions
}

func (m *MockDocumentStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.documents)), nil
}

func euclidean(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Helper methods for testing

// SetInsertError makes subsequent Insert calls fail
func (m *MockDocumentStore) SetInsertError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertErr = err
}

// SetQueryError makes subsequent Query calls fail
func (m *MockDocumentStore) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryErr = err
}

// Documents returns every stored record in insertion order
func (m *MockDocumentStore) Documents() []*domain.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Document(nil), m.documents...)
}
