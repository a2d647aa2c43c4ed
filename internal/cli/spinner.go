package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// spinnerFrames are drawn in order, one per spinnerInterval.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner draws a progress indicator on one line of w until stopped or
// until its context ends.
type spinner struct {
	w       io.Writer
	message string

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{w: w, message: message, stopped: make(chan struct{})}
}

// start begins the animation on its own goroutine.
func (s *spinner) start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// stop ends the animation and clears its line. It may be called more than
// once.
func (s *spinner) stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			close(s.stopped)
			return
		}
		s.cancel()
		<-s.stopped
	})
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// spin runs fn behind a spinner on w. A cancelled ctx takes precedence over
// fn's result.
func spin[T any](ctx context.Context, w io.Writer, message string, fn func() (T, error)) (T, error) {
	s := newSpinner(w, message)
	s.start(ctx)
	v, err := fn()
	s.stop()

	if ctx.Err() != nil {
		var zero T
		return zero, ctx.Err()
	}
	return v, err
}
