package session

import (
	"context"
	"time"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/observability"
	"github.com/matzehuels/jigsaw/pkg/picture"
	"github.com/matzehuels/jigsaw/pkg/puzzle"
)

// Start saves the image to the history and generates a puzzle on a surface
// of the given size. History failures are logged and ignored.
func (s *Session) Start(ctx context.Context, surface layout.Size) (*puzzle.Board, error) {
	if err := s.requireImage(); err != nil {
		return nil, err
	}
	if err := errors.ValidateSurface(surface.W, surface.H); err != nil {
		return nil, err
	}
	s.remember(ctx)
	return s.generate(ctx, surface), nil
}

// Restart regenerates the puzzle with the same image and grid. Every piece
// is unplaced at a fresh scatter position. The surface may differ from the
// previous one.
func (s *Session) Restart(ctx context.Context, surface layout.Size) (*puzzle.Board, error) {
	if err := s.requireImage(); err != nil {
		return nil, err
	}
	if err := errors.ValidateSurface(surface.W, surface.H); err != nil {
		return nil, err
	}
	return s.generate(ctx, surface), nil
}

func (s *Session) remember(ctx context.Context) {
	snap, err := picture.Snapshot(s.image, s.snapshotSize)
	if err != nil {
		s.log().Warn("could not snapshot image", "err", err)
		return
	}
	if err := s.history.Add(ctx, picture.DataURL(snap)); err != nil {
		s.log().Warn("could not save to history", "err", err)
	}
}

func (s *Session) generate(ctx context.Context, surface layout.Size) *puzzle.Board {
	start := time.Now()

	s.layout = layout.Build(s.image.Size(), surface, s.grid, s.layoutOpts...)
	s.pieces = picture.Pieces(s.image, s.layout)
	s.board = puzzle.New(s.layout,
		puzzle.WithRand(s.rng),
		puzzle.WithSnapThreshold(s.threshold),
	)
	s.step = StepGame
	s.started = time.Now()

	s.log().Debug("puzzle generated",
		"grid", s.grid.String(),
		"surface", surface,
		"frame", s.layout.Frame.Size,
	)
	observability.Game().OnGenerate(ctx, s.grid.String(), s.board.Total(), time.Since(start))
	return s.board
}

// Release drops the dragged piece and reports snap and victory events.
func (s *Session) Release(ctx context.Context) (puzzle.Drop, bool) {
	if s.board == nil {
		return puzzle.Drop{}, false
	}
	d, ok := s.board.Release()
	if !ok {
		return d, false
	}
	if d.Snapped {
		observability.Game().OnSnap(ctx, d.Index, s.board.Placed(), s.board.Total())
	}
	if d.Victory {
		elapsed := s.Elapsed()
		s.log().Info("puzzle complete", "grid", s.grid.String(), "elapsed", elapsed.Round(time.Second))
		observability.Game().OnVictory(ctx, s.grid.String(), elapsed)
	}
	return d, true
}

// Elapsed returns the time since the current puzzle was generated.
func (s *Session) Elapsed() time.Duration {
	if s.board == nil {
		return 0
	}
	return time.Since(s.started)
}

// Progress returns the translated "count/total" progress line.
func (s *Session) Progress(ctx context.Context) string {
	count, total := 0, 0
	if s.board != nil {
		count, total = s.board.Placed(), s.board.Total()
	}
	return s.localizer.T(ctx, "progress", i18n.Params{"count": count, "total": total})
}

// T translates key in the session's language.
func (s *Session) T(ctx context.Context, key string, params i18n.Params) string {
	return s.localizer.T(ctx, key, params)
}
