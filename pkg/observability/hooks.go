// Package observability provides hooks for game and store events.
//
// Libraries emit events through the registered hooks; the application decides
// what to do with them. The defaults are no-ops, so nothing is recorded unless
// main registers an implementation.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGameHooks(&myGameHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	board := puzzle.New(l)
//	observability.Game().OnGenerate(ctx, l.Grid.String(), board.Total(), time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from a play session.
type GameHooks interface {
	// OnGenerate records a new puzzle being generated.
	OnGenerate(ctx context.Context, grid string, pieces int, duration time.Duration)

	// OnSnap records a piece snapping into place.
	OnSnap(ctx context.Context, index, placed, total int)

	// OnVictory records a completed puzzle.
	OnVictory(ctx context.Context, grid string, elapsed time.Duration)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from the local key-value store.
type StoreHooks interface {
	// OnStoreRead records a read; hit is false for missing or expired keys.
	OnStoreRead(ctx context.Context, key string, hit bool)

	// OnStoreWrite records a write of size bytes.
	OnStoreWrite(ctx context.Context, key string, size int)

	// OnStoreError records a failed store operation.
	OnStoreError(ctx context.Context, op, key string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnGenerate(context.Context, string, int, time.Duration) {}
func (NoopGameHooks) OnSnap(context.Context, int, int, int)                  {}
func (NoopGameHooks) OnVictory(context.Context, string, time.Duration)       {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreRead(context.Context, string, bool)           {}
func (NoopStoreHooks) OnStoreWrite(context.Context, string, int)           {}
func (NoopStoreHooks) OnStoreError(context.Context, string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gameHooks  GameHooks  = NoopGameHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetGameHooks registers custom game hooks.
// This should be called once at application startup.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gameHooks = NoopGameHooks{}
	storeHooks = NoopStoreHooks{}
}
