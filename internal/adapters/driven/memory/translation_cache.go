// Package memory provides an in-process TranslationCache for
// single-instance deployments that run without Redis.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TranslationCache = (*TranslationCache)(nil)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// TranslationCache is a map with per-entry TTL. Expired entries are
// dropped lazily on read; the memory cost is bounded by the notice
// count times the language count.
type TranslationCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewTranslationCache creates a new in-process TranslationCache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached payload for key, if present and fresh
func (c *TranslationCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.payload, true, nil
}

// Set stores payload under key for ttl
func (c *TranslationCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		payload:   append([]byte(nil), payload...),
		expiresAt: c.now().Add(ttl),
	}
	return nil
}
