// Package history keeps the most recently played images.
//
// The list is bounded, most-recent-first and free of duplicates. It is stored
// as a JSON array of data URLs under a single key of a [cache.Cache]. Reads
// never fail: a missing, unreadable or malformed list is an empty one.
package history

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jigsaw/pkg/cache"
	"github.com/matzehuels/jigsaw/pkg/errors"
)

// DefaultMax is the default number of remembered images.
const DefaultMax = 5

// History is a bounded most-recently-used list of image data URLs.
type History struct {
	store  cache.Cache
	key    string
	max    int
	logger *log.Logger
}

// Option configures a History.
type Option func(*History)

// WithMax sets the list bound. Values below one keep the default.
func WithMax(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.max = n
		}
	}
}

// WithKeyer sets the keyer producing the storage key.
func WithKeyer(k cache.Keyer) Option {
	return func(h *History) {
		if k != nil {
			h.key = k.HistoryKey()
		}
	}
}

// WithLogger sets the logger for degraded reads.
func WithLogger(l *log.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates a history backed by store. A nil store behaves like
// [cache.NullCache].
func New(store cache.Cache, opts ...Option) *History {
	if store == nil {
		store = cache.NewNullCache()
	}
	h := &History{
		store:  store,
		key:    cache.HistoryKey,
		max:    DefaultMax,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Max returns the list bound.
func (h *History) Max() int { return h.max }

// Key returns the storage key.
func (h *History) Key() string { return h.key }

// List returns the stored entries, most recent first.
func (h *History) List(ctx context.Context) []string {
	data, ok, err := h.store.Get(ctx, h.key)
	if err != nil {
		h.logger.Warn("could not read history", "err", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		h.logger.Warn("discarding malformed history", "err", err)
		return nil
	}
	entries = slices.DeleteFunc(entries, func(s string) bool { return s == "" })
	if len(entries) > h.max {
		entries = entries[:h.max]
	}
	return entries
}

// Add moves entry to the front of the list, dropping an identical older
// entry and the oldest entries beyond the bound.
func (h *History) Add(ctx context.Context, entry string) error {
	if entry == "" {
		return errors.New(errors.ErrCodeInvalidInput, "empty history entry")
	}
	entries := slices.DeleteFunc(h.List(ctx), func(s string) bool { return s == entry })
	entries = slices.Insert(entries, 0, entry)
	if len(entries) > h.max {
		entries = entries[:h.max]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode history")
	}
	if err := h.store.Set(ctx, h.key, data, 0); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailure, err, "save history")
	}
	return nil
}

// Get returns entry n, counting from one.
func (h *History) Get(ctx context.Context, n int) (string, error) {
	entries := h.List(ctx)
	if n < 1 || n > len(entries) {
		return "", errors.New(errors.ErrCodeNotFound, "no history entry %d (have %d)", n, len(entries))
	}
	return entries[n-1], nil
}

// Clear removes every entry.
func (h *History) Clear(ctx context.Context) error {
	if err := h.store.Delete(ctx, h.key); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailure, err, "clear history")
	}
	return nil
}
