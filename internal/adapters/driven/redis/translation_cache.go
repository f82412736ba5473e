package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TranslationCache = (*TranslationCache)(nil)

// Redis key namespace for cached translations
const translationPrefix = "schoolbuddy:"

// TranslationCache implements driven.TranslationCache using Redis.
// Expiry is handled by Redis TTL; a cold cache only costs an extra
// model call.
type TranslationCache struct {
	client *redis.Client
}

// NewTranslationCache creates a new Redis-backed TranslationCache
func NewTranslationCache(client *redis.Client) *TranslationCache {
	return &TranslationCache{client: client}
}

// Get returns the cached payload for key, if present and fresh
func (c *TranslationCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, translationPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: getting %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores payload under key for ttl
func (c *TranslationCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, translationPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: setting %s: %w", key, err)
	}
	return nil
}
