package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// MockInteractionStore is an in-memory mock implementation of
// InteractionStore for testing
type MockInteractionStore struct {
	mu      sync.RWMutex
	entries []*domain.InteractionLog
	nextID  int64
	logErr  error
}

// NewMockInteractionStore creates a new MockInteractionStore
func NewMockInteractionStore() *MockInteractionStore {
	return &MockInteractionStore{nextID: 1}
}

func (m *MockInteractionStore) Log(ctx context.Context, entry *domain.InteractionLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logErr != nil {
		return m.logErr
	}
	entry.ID = m.nextID
	m.nextID++
	entry.ClickedAt = time.Now()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockInteractionStore) List(ctx context.Context) ([]*domain.InteractionLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]*domain.InteractionLog(nil), m.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ClickedAt.After(out[j].ClickedAt)
	})
	return out, nil
}

func (m *MockInteractionStore) Stats(ctx context.Context, topN int) (*domain.InteractionStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byProgram := make(map[string]int64)
	byLang := make(map[string]int64)
	for _, e := range m.entries {
		byProgram[e.ProgramTitle]++
		byLang[e.UserLang]++
	}

	stats := &domain.InteractionStats{Total: int64(len(m.entries))}
	for title, clicks := range byProgram {
		stats.TopPrograms = append(stats.TopPrograms, domain.ProgramClicks{Title: title, Clicks: clicks})
	}
	sort.SliceStable(stats.TopPrograms, func(i, j int) bool {
		return stats.TopPrograms[i].Clicks > stats.TopPrograms[j].Clicks
	})
	if topN > 0 && topN < len(stats.TopPrograms) {
		stats.TopPrograms = stats.TopPrograms[:topN]
	}
	for lang, count := range byLang {
		stats.Languages = append(stats.Languages, domain.LanguageCount{Language: lang, Count: count})
	}
	sort.SliceStable(stats.Languages, func(i, j int) bool {
		return stats.Languages[i].Count > stats.Languages[j].Count
	})
	return stats, nil
}

// Helper methods for testing

// SetLogError makes subsequent Log calls fail
func (m *MockInteractionStore) SetLogError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logErr = err
}

// Entries returns every logged entry in insertion order
func (m *MockInteractionStore) Entries() []*domain.InteractionLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.InteractionLog(nil), m.entries...)
}
