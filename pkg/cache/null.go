package cache

import (
	"context"
	"time"
)

// NullCache keeps nothing. It backs --no-store and any store that failed to
// open: every Get is a miss and every write succeeds without effect.
type NullCache struct{}

// NewNullCache returns a NullCache as a Cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
