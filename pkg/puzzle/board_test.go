package puzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

func newTestBoard(t *testing.T, grid layout.Grid, opts ...Option) *Board {
	t.Helper()
	l := layout.Build(layout.Size{W: 800, H: 400}, layout.Size{W: 1000, H: 1000}, grid)
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 1)))}, opts...)
	return New(l, opts...)
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(t, layout.Grid{Rows: 2, Cols: 3})

	if b.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", b.Total())
	}
	if b.Placed() != 0 || b.Complete() || b.Won() {
		t.Error("new board should have nothing placed")
	}
	if _, ok := b.Dragging(); ok {
		t.Error("new board should be idle")
	}
	if b.Threshold() != DefaultSnapThreshold {
		t.Errorf("Threshold() = %v, want %v", b.Threshold(), DefaultSnapThreshold)
	}

	l := b.Layout()
	for i, p := range b.Pieces() {
		if p.Index != i {
			t.Errorf("piece %d has index %d", i, p.Index)
		}
		if p.Target != l.Target(i) {
			t.Errorf("piece %d target = %v, want %v", i, p.Target, l.Target(i))
		}
		if p.Size != l.PieceSize(i) {
			t.Errorf("piece %d size = %v, want %v", i, p.Size, l.PieceSize(i))
		}
		if overlapsFrame(p, l) {
			t.Errorf("piece %d scattered onto the frame at %v", i, p.Pos)
		}
	}
}

func overlapsFrame(p Piece, l *layout.Layout) bool {
	f := l.Frame
	if p.Pos.X+float64(p.Size.W) <= f.Left() || p.Pos.X >= f.Right() {
		return false
	}
	if p.Pos.Y+float64(p.Size.H) <= f.Top() || p.Pos.Y >= f.Bottom() {
		return false
	}
	return true
}

func TestWithSnapThreshold(t *testing.T) {
	b := newTestBoard(t, layout.Grid{Rows: 2, Cols: 2}, WithSnapThreshold(4))
	if b.Threshold() != 4 {
		t.Errorf("Threshold() = %v, want 4", b.Threshold())
	}

	b = newTestBoard(t, layout.Grid{Rows: 2, Cols: 2}, WithSnapThreshold(0))
	if b.Threshold() != DefaultSnapThreshold {
		t.Errorf("Threshold() = %v, want default", b.Threshold())
	}
}

func TestPieceAtTopmost(t *testing.T) {
	b := newTestBoard(t, layout.Grid{Rows: 2, Cols: 2})

	// Stack piece 1 on top of piece 0.
	b.pieces[0].Pos = layout.Point{X: 10, Y: 10}
	b.pieces[1].Pos = layout.Point{X: 20, Y: 20}
	b.pieces[2].Pos = layout.Point{X: 600, Y: 250}
	b.pieces[3].Pos = layout.Point{X: 600, Y: 250}

	idx, ok := b.PieceAt(layout.Point{X: 25, Y: 25})
	if !ok || idx != 1 {
		t.Fatalf("PieceAt() = %d, %v; want 1 on top", idx, ok)
	}

	// Grabbing piece 0 raises it above piece 1.
	if !b.Grab(0, layout.Point{X: 11, Y: 11}) {
		t.Fatal("Grab(0) failed")
	}
	b.Cancel()
	if idx, _ := b.PieceAt(layout.Point{X: 25, Y: 25}); idx != 0 {
		t.Errorf("PieceAt() after raise = %d, want 0", idx)
	}
	if order := b.ZOrder(); order[len(order)-1] != 0 {
		t.Errorf("ZOrder() = %v, want 0 on top", order)
	}

	if _, ok := b.PieceAt(layout.Point{X: -5, Y: -5}); ok {
		t.Error("PieceAt() outside all pieces should miss")
	}
}

func TestPiecesReturnsCopy(t *testing.T) {
	b := newTestBoard(t, layout.Grid{Rows: 2, Cols: 2})
	ps := b.Pieces()
	ps[0].Placed = true
	if b.Piece(0).Placed {
		t.Error("mutating Pieces() result should not change the board")
	}
}
