package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// lockedBuffer is a bytes.Buffer safe for the spinner goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var out lockedBuffer
	s := newSpinner(&out, "Loading photo.png...")
	s.start(context.Background())

	waitFor(t, func() bool { return strings.Contains(out.String(), "Loading photo.png...") })
	s.stop()

	if !strings.HasSuffix(out.String(), "\r") {
		t.Errorf("stop should clear the line, output ends %q", out.String()[max(0, len(out.String())-10):])
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	var out lockedBuffer
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(&out, "Loading...")
	s.start(ctx)
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner did not stop after cancellation")
	}
	s.stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(&lockedBuffer{}, "Loading...")
	s.start(context.Background())
	s.stop()
	s.stop()

	// Never started.
	newSpinner(&lockedBuffer{}, "idle").stop()
}

func TestSpin(t *testing.T) {
	var out lockedBuffer
	boom := errors.New("boom")

	v, err := spin(context.Background(), &out, "Working...", func() (int, error) { return 42, nil })
	if v != 42 || err != nil {
		t.Errorf("spin() = %d, %v; want 42, nil", v, err)
	}

	_, err = spin(context.Background(), &out, "Working...", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Errorf("spin() error = %v, want %v", err, boom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	v, err = spin(ctx, &out, "Working...", func() (int, error) {
		cancel()
		return 7, nil
	})
	if v != 0 || !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled spin() = %d, %v; want 0, context.Canceled", v, err)
	}
}
