package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryCache is a process-local store. Values are copied in and out.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]fileEntry
	closed  bool
}

// NewMemoryCache creates an empty in-memory store.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]fileEntry)}
}

// Get retrieves a value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false, ErrClosed
	}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if entry.expired(time.Now()) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return slices.Clone(entry.Data), true, nil
}

// Set stores a value.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	entry := fileEntry{Key: key, Data: slices.Clone(data)}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	delete(c.entries, key)
	return nil
}

// Close discards all entries. Later calls fail with ErrClosed.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = nil
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
