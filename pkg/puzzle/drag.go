package puzzle

import "github.com/matzehuels/jigsaw/pkg/layout"

// Drop is the outcome of releasing a dragged piece.
type Drop struct {
	Index    int
	Distance float64 // distance to the correct position at release
	Snapped  bool
	Victory  bool // the last piece was placed by this drop
}

// Dragging returns the index of the piece being dragged.
func (b *Board) Dragging() (int, bool) {
	if b.active == nil {
		return 0, false
	}
	return b.active.index, true
}

// Grab starts dragging piece index, keeping the grab point under pointer for
// subsequent moves. It returns false, leaving the board unchanged, when the
// piece is already placed or the index is out of range.
//
// There is a single drag slot: grabbing while another piece is held replaces
// it without a release check.
func (b *Board) Grab(index int, pointer layout.Point) bool {
	if index < 0 || index >= len(b.pieces) || b.pieces[index].Placed {
		return false
	}
	b.active = &drag{index: index, offset: pointer.Sub(b.pieces[index].Pos)}
	b.raise(index)
	return true
}

// Press grabs the topmost piece under pointer.
func (b *Board) Press(pointer layout.Point) (int, bool) {
	index, ok := b.PieceAt(pointer)
	if !ok || !b.Grab(index, pointer) {
		return 0, false
	}
	return index, true
}

// Move drags the held piece so the grab point follows pointer. The piece is
// clamped to stay fully inside the surface. Move returns false when idle.
func (b *Board) Move(pointer layout.Point) bool {
	if b.active == nil {
		return false
	}
	p := &b.pieces[b.active.index]
	pos := pointer.Sub(b.active.offset)

	surface := b.layout.Surface
	pos.X = max(0, min(pos.X, float64(surface.W-p.Size.W)))
	pos.Y = max(0, min(pos.Y, float64(surface.H-p.Size.H)))
	p.Pos = pos
	return true
}

// Release drops the held piece. A piece released closer than the snap
// threshold to its correct position is moved there exactly and placed. The
// second return value is false when idle.
func (b *Board) Release() (Drop, bool) {
	if b.active == nil {
		return Drop{}, false
	}
	index := b.active.index
	b.active = nil

	p := &b.pieces[index]
	d := Drop{Index: index, Distance: p.Pos.Dist(p.Target)}
	if d.Distance < b.threshold {
		p.Pos = p.Target
		p.Placed = true
		d.Snapped = true
	}
	d.Victory = b.CheckVictory()
	return d, true
}

// Cancel clears the drag slot without a release check.
func (b *Board) Cancel() { b.active = nil }
