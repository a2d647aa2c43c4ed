package puzzle

import (
	"math/rand/v2"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

// DefaultSnapThreshold is the drop distance in pixels below which a piece
// snaps into place.
const DefaultSnapThreshold = 20.0

// Piece is the state of one puzzle piece.
type Piece struct {
	Index    int
	Row, Col int
	Size     layout.Size

	// Pos is the current top-left corner and Target the correct one, both in
	// surface coordinates.
	Pos    layout.Point
	Target layout.Point

	Placed bool
}

// Bounds returns the piece's current rectangle, truncated to whole pixels.
func (p Piece) Bounds() layout.Rect {
	return layout.Rect{X: int(p.Pos.X), Y: int(p.Pos.Y), W: p.Size.W, H: p.Size.H}
}

// Contains reports whether pt lies over the piece at its current position.
func (p Piece) Contains(pt layout.Point) bool {
	return pt.X >= p.Pos.X && pt.X < p.Pos.X+float64(p.Size.W) &&
		pt.Y >= p.Pos.Y && pt.Y < p.Pos.Y+float64(p.Size.H)
}

// drag is the single drag slot.
type drag struct {
	index  int
	offset layout.Point
}

// Board is one puzzle instance.
type Board struct {
	layout    *layout.Layout
	pieces    []Piece
	order     []int // z-order, bottom first
	active    *drag
	threshold float64
	victory   bool
}

// Option configures New.
type Option func(*options)

type options struct {
	rng       *rand.Rand
	threshold float64
}

// WithRand sets the generator used for the initial scatter.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSnapThreshold sets the snap distance in pixels. Non-positive values
// keep the default.
func WithSnapThreshold(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.threshold = d
		}
	}
}

// New creates a board for l with every piece unplaced at a fresh random
// scatter position.
func New(l *layout.Layout, opts ...Option) *Board {
	o := options{threshold: DefaultSnapThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = layout.NewRand()
	}

	b := &Board{
		layout:    l,
		pieces:    make([]Piece, len(l.Cells)),
		order:     make([]int, len(l.Cells)),
		threshold: o.threshold,
	}
	for i := range l.Cells {
		row, col := l.Grid.Cell(i)
		b.pieces[i] = Piece{
			Index:  i,
			Row:    row,
			Col:    col,
			Size:   l.PieceSize(i),
			Pos:    l.Scatter(o.rng, i),
			Target: l.Target(i),
		}
		b.order[i] = i
	}
	return b
}

// Layout returns the geometry the board was built from.
func (b *Board) Layout() *layout.Layout { return b.layout }

// Threshold returns the snap distance.
func (b *Board) Threshold() float64 { return b.threshold }

// Total returns the number of pieces.
func (b *Board) Total() int { return len(b.pieces) }

// Piece returns a copy of piece index.
func (b *Board) Piece(index int) Piece { return b.pieces[index] }

// Pieces returns a copy of all pieces ordered by index.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// ZOrder returns piece indices from bottom to top.
func (b *Board) ZOrder() []int {
	out := make([]int, len(b.order))
	copy(out, b.order)
	return out
}

// Placed returns the number of placed pieces.
func (b *Board) Placed() int {
	n := 0
	for _, p := range b.pieces {
		if p.Placed {
			n++
		}
	}
	return n
}

// Complete reports whether every piece is placed.
func (b *Board) Complete() bool { return b.Placed() == len(b.pieces) }

// CheckVictory reports true the first time it observes a complete board and
// false on every later call.
func (b *Board) CheckVictory() bool {
	if b.victory || !b.Complete() {
		return false
	}
	b.victory = true
	return true
}

// Won reports whether the victory has been signaled.
func (b *Board) Won() bool { return b.victory }

// PieceAt returns the topmost piece under pt.
func (b *Board) PieceAt(pt layout.Point) (int, bool) {
	for i := len(b.order) - 1; i >= 0; i-- {
		idx := b.order[i]
		if b.pieces[idx].Contains(pt) {
			return idx, true
		}
	}
	return 0, false
}

// raise moves index to the top of the z-order.
func (b *Board) raise(index int) {
	for i, idx := range b.order {
		if idx == index {
			copy(b.order[i:], b.order[i+1:])
			b.order[len(b.order)-1] = index
			return
		}
	}
}
