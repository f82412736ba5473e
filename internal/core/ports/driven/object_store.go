package driven

import (
	"context"
	"time"
)

// ObjectInfo describes one stored object in a listing
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStore is durable key/blob storage for raw uploads and derived
// summaries. Writes to an existing key overwrite it; there is no
// versioning and no delete path in the pipelines.
type ObjectStore interface {
	// Put stores data under key, replacing any prior object
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get retrieves the object stored under key.
	// Returns domain.ErrNotFound when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// List returns the objects under the given key prefix with their
	// last-modified timestamps, in no particular order
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
