package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/jigsaw/pkg/observability"
)

// FileCache keeps each key in its own JSON file under a directory. Files are
// spread over 256 subdirectories named after the first byte of the key hash.
// Writes replace a file atomically, so a crash leaves the previous value.
type FileCache struct {
	dir string
}

// NewFileCache opens a store rooted at dir, creating it when missing.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is one stored key. FileCache writes it as JSON, with Data in
// base64.
type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Dir returns the store directory.
func (c *FileCache) Dir() string { return c.dir }

// Get returns the value under key. Unreadable and expired entries are
// removed and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	hooks := observability.Store()
	path := c.path(key)

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		hooks.OnStoreRead(ctx, key, false)
		return nil, false, nil
	case err != nil:
		hooks.OnStoreError(ctx, "get", key, err)
		return nil, false, err
	}

	var e fileEntry
	if json.Unmarshal(raw, &e) != nil || e.expired(time.Now()) {
		_ = os.Remove(path)
		hooks.OnStoreRead(ctx, key, false)
		return nil, false, nil
	}
	hooks.OnStoreRead(ctx, key, true)
	return e.Data, true, nil
}

// Set stores data under key, expiring after ttl when ttl is positive.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := writeAtomic(c.path(key), raw); err != nil {
		observability.Store().OnStoreError(ctx, "set", key, err)
		return err
	}
	observability.Store().OnStoreWrite(ctx, key, len(data))
	return nil
}

// Delete removes key. A missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	err := os.Remove(c.path(key))
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	observability.Store().OnStoreError(ctx, "delete", key, err)
	return err
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

// Hash returns the hex SHA-256 digest of data. FileCache names entry files
// after the digest of their key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

var _ Cache = (*FileCache)(nil)
