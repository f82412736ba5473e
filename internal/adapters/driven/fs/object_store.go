// Package fs provides a filesystem-backed object store for local
// development and tests. Keys map to paths under a root directory;
// the raw/ and analysis/ prefixes become subdirectories.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ObjectStore = (*ObjectStore)(nil)

// ObjectStore implements driven.ObjectStore on a local directory
type ObjectStore struct {
	root string
}

// New creates a filesystem object store rooted at dir, creating it if
// needed
func New(dir string) (*ObjectStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("fs: root directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fs: creating root: %w", err)
	}
	return &ObjectStore{root: dir}, nil
}

// Put stores data under key, replacing any prior object
func (s *ObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("fs: creating directory for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fs: writing %s: %w", key, err)
	}
	return nil
}

// Get retrieves the object stored under key
func (s *ObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fs: reading %s: %w", key, err)
	}
	return data, nil
}

// List returns the objects under the given key prefix
func (s *ObjectStore) List(ctx context.Context, prefix string) ([]driven.ObjectInfo, error) {
	var infos []driven.ObjectInfo
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, driven.ObjectInfo{
			Key:          key,
			Size:         fi.Size(),
			LastModified: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fs: listing %s: %w", prefix, err)
	}
	return infos, nil
}

// path maps a key to a filesystem path, rejecting escapes from the
// root
func (s *ObjectStore) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("fs: key is required")
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("fs: invalid key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
