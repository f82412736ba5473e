package driven

import (
	"context"
	"time"
)

// TranslationCache caches translated notice summaries for a bounded
// time. A miss is not an error; Get reports it via the ok flag.
// Implementations may be remote (Redis) or in-process.
type TranslationCache interface {
	// Get returns the cached payload for key, if present and fresh
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key for ttl
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
