package mocks

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// MockObjectStore is an in-memory mock implementation of ObjectStore
// for testing
type MockObjectStore struct {
	mu       sync.RWMutex
	objects  map[string][]byte
	modified map[string]time.Time
	putErr   error
}

// NewMockObjectStore creates a new MockObjectStore
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		objects:  make(map[string][]byte),
		modified: make(map[string]time.Time),
	}
}

func (m *MockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = append([]byte(nil), data...)
	m.modified[key] = time.Now()
	return nil
}

func (m *MockObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MockObjectStore) List(ctx context.Context, prefix string) ([]driven.ObjectInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var infos []driven.ObjectInfo
	for key, data := range m.objects {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		infos = append(infos, driven.ObjectInfo{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: m.modified[key],
		})
	}
	return infos, nil
}

// Helper methods for testing

// SetPutError makes subsequent Put calls fail
func (m *MockObjectStore) SetPutError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putErr = err
}

// Len returns the number of stored objects
func (m *MockObjectStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// SetModified overrides an object's last-modified timestamp
func (m *MockObjectStore) SetModified(key string, ts time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modified[key] = ts
}
