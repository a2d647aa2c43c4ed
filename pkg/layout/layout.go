package layout

import (
	"image"
	"math"
	"math/rand/v2"
)

// Layout is the complete geometry of one puzzle instance.
type Layout struct {
	Surface Size
	Source  Size
	Grid    Grid
	Frame   Frame
	Margin  float64

	// Widths holds one entry per column and Heights one per row. They sum to
	// the frame width and height exactly.
	Widths  []int
	Heights []int

	// Cells holds each piece's target rectangle in surface coordinates,
	// indexed by row*cols+col.
	Cells []Rect
}

// Option configures Build.
type Option func(*config)

type config struct {
	fillRatio float64
	margin    float64
}

// WithFillRatio sets the fraction of the surface the frame may occupy.
func WithFillRatio(r float64) Option {
	return func(c *config) { c.fillRatio = r }
}

// WithMargin sets the gap kept between scatter zones and the frame.
func WithMargin(m float64) Option {
	return func(c *config) { c.margin = m }
}

// Build computes the layout of a grid over a source image placed on surface.
// The frame is sized by ComputeFrame and centered on the surface; cell
// positions are rounded to whole pixels.
//
// source and grid must be non-degenerate; callers validate them first.
func Build(source, surface Size, grid Grid, opts ...Option) *Layout {
	cfg := config{fillRatio: DefaultFillRatio, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&cfg)
	}

	frameSize := ComputeFrame(source.Aspect(), surface, cfg.fillRatio)
	frame := Frame{Origin: centered(surface, frameSize), Size: frameSize}

	l := &Layout{
		Surface: surface,
		Source:  source,
		Grid:    grid,
		Frame:   frame,
		Margin:  cfg.margin,
		Widths:  Partition(frameSize.W, grid.Cols),
		Heights: Partition(frameSize.H, grid.Rows),
	}

	xs, ys := offsets(l.Widths), offsets(l.Heights)
	l.Cells = make([]Rect, 0, grid.Count())
	for row := range grid.Rows {
		for col := range grid.Cols {
			l.Cells = append(l.Cells, Rect{
				X: int(math.Round(frame.Left() + float64(xs[col]))),
				Y: int(math.Round(frame.Top() + float64(ys[row]))),
				W: l.Widths[col],
				H: l.Heights[row],
			})
		}
	}
	return l
}

// Target returns the correct top-left position of piece index.
func (l *Layout) Target(index int) Point { return l.Cells[index].Origin() }

// PieceSize returns the size of piece index.
func (l *Layout) PieceSize(index int) Size { return l.Cells[index].Size() }

// Zones returns the scatter zones for piece index, after the fallback pass.
func (l *Layout) Zones(index int) []Zone {
	return ScatterZones(l.Frame, l.Surface, l.PieceSize(index), l.Margin)
}

// Scatter returns a random initial position for piece index.
func (l *Layout) Scatter(rng *rand.Rand, index int) Point {
	return Sample(rng, l.Zones(index))
}

// SourceCells returns the crop rectangle of every piece within the source
// image, indexed by row*cols+col. Boundaries are rounded from the exact
// fractional cell size; the last row and column run to the image edge and
// every rectangle is at least one pixel in each dimension.
func SourceCells(source Size, grid Grid) []image.Rectangle {
	xs := sourceSpans(source.W, grid.Cols)
	ys := sourceSpans(source.H, grid.Rows)

	cells := make([]image.Rectangle, 0, grid.Count())
	for _, y := range ys {
		for _, x := range xs {
			cells = append(cells, image.Rect(x[0], y[0], x[0]+x[1], y[0]+y[1]))
		}
	}
	return cells
}

// sourceSpans returns [start, length] pairs splitting total into count spans.
func sourceSpans(total, count int) [][2]int {
	cell := float64(total) / float64(count)
	spans := make([][2]int, count)
	for i := range spans {
		start := int(math.Round(float64(i) * cell))
		var length int
		if i == count-1 {
			length = total - start
		} else {
			length = int(math.Round(float64(i+1)*cell)) - start
		}
		spans[i] = [2]int{start, max(1, length)}
	}
	return spans
}
