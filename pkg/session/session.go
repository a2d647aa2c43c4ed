// Package session holds the state of one interactive puzzle session.
//
// A [Session] moves between two steps. In the setup step an image is loaded
// and a grid chosen; [Session.Start] generates a puzzle and enters the game
// step. [Session.Restart] regenerates the same image and grid with every
// piece unplaced, and [Session.Reset] returns to setup with no image.
//
// # Usage
//
//	sess := session.New(
//	    session.WithHistory(history.New(store)),
//	    session.WithLocalizer(i18n.NewLocalizer(store)),
//	)
//	if err := sess.LoadFile(ctx, "photo.jpg"); err != nil {
//	    return err
//	}
//	board, err := sess.Start(ctx, layout.Size{W: 160, H: 90})
//
// Sessions are not safe for concurrent use; the host's event loop owns them.
package session

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/jigsaw/pkg/history"
	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/picture"
	"github.com/matzehuels/jigsaw/pkg/puzzle"
)

// Step is the phase a session is in.
type Step int

const (
	StepSetup Step = iota
	StepGame
)

func (s Step) String() string {
	if s == StepGame {
		return "game"
	}
	return "setup"
}

// Session is one puzzle session.
type Session struct {
	id        uuid.UUID
	history   *history.History
	localizer *i18n.Localizer
	logger    *log.Logger
	rng       *rand.Rand

	snapshotSize int
	threshold    float64
	layoutOpts   []layout.Option

	step    Step
	image   *picture.Image
	label   string
	grid    layout.Grid
	layout  *layout.Layout
	board   *puzzle.Board
	pieces  []image.Image
	started time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithHistory sets the recent-image history.
func WithHistory(h *history.History) Option {
	return func(s *Session) { s.history = h }
}

// WithLocalizer sets the localizer for user-facing strings.
func WithLocalizer(l *i18n.Localizer) Option {
	return func(s *Session) { s.localizer = l }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand sets the generator used for scattering pieces.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSnapshotSize sets the longest side of history snapshots.
func WithSnapshotSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.snapshotSize = n
		}
	}
}

// WithSnapThreshold sets the snap distance of generated boards.
func WithSnapThreshold(d float64) Option {
	return func(s *Session) { s.threshold = d }
}

// WithLayoutOptions sets options passed to layout.Build.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(s *Session) { s.layoutOpts = append(s.layoutOpts, opts...) }
}

// New creates a session in the setup step with the default grid.
func New(opts ...Option) *Session {
	s := &Session{
		id:           uuid.New(),
		logger:       log.Default(),
		snapshotSize: picture.DefaultSnapshotSize,
		threshold:    puzzle.DefaultSnapThreshold,
		grid:         layout.DefaultGrid,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = history.New(nil, history.WithLogger(s.logger))
	}
	if s.localizer == nil {
		s.localizer = i18n.NewLocalizer(nil, i18n.WithLogger(s.logger))
	}
	if s.rng == nil {
		s.rng = layout.NewRand()
	}
	return s
}

// log returns the logger with the session field attached. The child is
// derived per call so output changes on the parent take effect.
func (s *Session) log() *log.Logger {
	return s.logger.With("session", s.id.String()[:8])
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id.String() }

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Image returns the loaded image, or nil.
func (s *Session) Image() *picture.Image { return s.image }

// Label returns a description of where the image came from.
func (s *Session) Label() string { return s.label }

// Grid returns the selected grid.
func (s *Session) Grid() layout.Grid { return s.grid }

// Board returns the current board; nil during setup.
func (s *Session) Board() *puzzle.Board { return s.board }

// Layout returns the current layout; nil during setup.
func (s *Session) Layout() *layout.Layout { return s.layout }

// PieceImages returns the piece images scaled to the current layout.
func (s *Session) PieceImages() []image.Image { return s.pieces }

// History returns the session's recent-image history.
func (s *Session) History() *history.History { return s.history }

// Localizer returns the session's localizer.
func (s *Session) Localizer() *i18n.Localizer { return s.localizer }
