package cache

import "errors"

// Sentinel errors for store operations.
var (
	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("store closed")

	// ErrEmptyKey is returned when a key is empty.
	ErrEmptyKey = errors.New("empty key")
)
