package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Game hooks
	g := NoopGameHooks{}
	g.OnGenerate(ctx, "2x3", 6, time.Millisecond)
	g.OnSnap(ctx, 4, 1, 6)
	g.OnVictory(ctx, "2x3", time.Minute)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnStoreRead(ctx, "puzzle-history", true)
	s.OnStoreWrite(ctx, "puzzle-lang", 2)
	s.OnStoreError(ctx, "set", "puzzle-history", errors.New("disk full"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Game() should return NoopGameHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customGame := &testGameHooks{}
	SetGameHooks(customGame)
	if Game() != customGame {
		t.Error("SetGameHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Reset() should restore NoopGameHooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGameHooks{}
	SetGameHooks(custom)

	// Setting nil should be ignored
	SetGameHooks(nil)
	SetStoreHooks(nil)

	if Game() != custom {
		t.Error("SetGameHooks(nil) should be ignored")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("SetStoreHooks(nil) should keep the default")
	}

	Reset()
}

// Test implementations
type testGameHooks struct{ NoopGameHooks }
type testStoreHooks struct{ NoopStoreHooks }
