// Package cli implements the jigsaw command-line interface.
//
// This package provides the interactive play surface, a geometry inspector
// for debugging layouts, and commands to manage the recent-image history and
// the interface language. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - play: Play a puzzle in the terminal with the mouse
//   - layout: Print the computed frame, cells and scatter zones
//   - history: List, clear or locate the recent-image history
//   - lang: Show or select the interface language
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; game and store events are logged at debug
// level through observability hooks.
//
// # Example
//
//	import "github.com/matzehuels/jigsaw/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jigsaw/pkg/observability"
)

// newLogger returns a logger with short wall-clock timestamps, e.g.
// "14:32:01.45", filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a command step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Loaded photo.jpg (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or log.Default when ctx
// carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logGameHooks logs game events at debug level.
type logGameHooks struct{ logger *log.Logger }

func (h logGameHooks) OnGenerate(_ context.Context, grid string, pieces int, d time.Duration) {
	h.logger.Debug("generated", "grid", grid, "pieces", pieces, "took", d.Round(time.Microsecond))
}

func (h logGameHooks) OnSnap(_ context.Context, index, placed, total int) {
	h.logger.Debug("snapped", "piece", index, "placed", placed, "total", total)
}

func (h logGameHooks) OnVictory(_ context.Context, grid string, elapsed time.Duration) {
	h.logger.Debug("victory", "grid", grid, "elapsed", elapsed.Round(time.Millisecond))
}

// logStoreHooks logs store events at debug level and failures at warn.
type logStoreHooks struct{ logger *log.Logger }

func (h logStoreHooks) OnStoreRead(_ context.Context, key string, hit bool) {
	h.logger.Debug("store read", "key", key, "hit", hit)
}

func (h logStoreHooks) OnStoreWrite(_ context.Context, key string, size int) {
	h.logger.Debug("store write", "key", key, "bytes", size)
}

func (h logStoreHooks) OnStoreError(_ context.Context, op, key string, err error) {
	h.logger.Warn("store failure", "op", op, "key", key, "err", err)
}

var (
	_ observability.GameHooks  = logGameHooks{}
	_ observability.StoreHooks = logStoreHooks{}
)
