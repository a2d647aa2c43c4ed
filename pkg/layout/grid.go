package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/jigsaw/pkg/errors"
)

// Grid is the rows×cols specification of a puzzle. Both values are at least 1.
type Grid struct {
	Rows, Cols int
}

// DefaultGrid is the grid selected before the user picks one.
var DefaultGrid = Grid{Rows: 2, Cols: 3}

// FallbackGrid is used when the active selection cannot be parsed at start.
var FallbackGrid = Grid{Rows: 3, Cols: 3}

// Options is the fixed set of grid sizes offered by the grid selector.
var Options = []Grid{
	{Rows: 2, Cols: 3},
	{Rows: 3, Cols: 3},
	{Rows: 4, Cols: 3},
	{Rows: 4, Cols: 4},
	{Rows: 5, Cols: 4},
	{Rows: 5, Cols: 5},
}

// Count returns the number of pieces.
func (g Grid) Count() int { return g.Rows * g.Cols }

// Index returns the linear index of (row, col).
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// Cell returns the (row, col) of a linear index.
func (g Grid) Cell(index int) (row, col int) { return index / g.Cols, index % g.Cols }

// Validate reports whether g is a usable grid.
func (g Grid) Validate() error { return errors.ValidateGrid(g.Rows, g.Cols) }

// String returns the grid as "RxC".
func (g Grid) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// Label returns the grid as displayed by the selector ("R×C").
func (g Grid) Label() string { return fmt.Sprintf("%d×%d", g.Rows, g.Cols) }

// Offered reports whether g is one of the selector Options.
func (g Grid) Offered() bool {
	for _, o := range Options {
		if o == g {
			return true
		}
	}
	return false
}

// ParseGrid parses "RxC", "R×C" or "R,C".
func ParseGrid(s string) (Grid, error) {
	rows, cols, err := splitGrid(s)
	if err != nil {
		return Grid{}, err
	}
	r, err := strconv.Atoi(rows)
	if err != nil {
		return Grid{}, errors.Wrap(errors.ErrCodeInvalidGrid, err, "grid %q: rows", s)
	}
	c, err := strconv.Atoi(cols)
	if err != nil {
		return Grid{}, errors.Wrap(errors.ErrCodeInvalidGrid, err, "grid %q: cols", s)
	}
	g := Grid{Rows: r, Cols: c}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// ParseGridFallback is ParseGrid with each unusable value replaced by the
// matching side of FallbackGrid, so "0,4" gives 3x4. Without a separator
// the whole FallbackGrid is used. The error is ParseGrid's.
func ParseGridFallback(s string) (Grid, error) {
	g, err := ParseGrid(s)
	if err == nil {
		return g, nil
	}
	g = FallbackGrid
	rows, cols, serr := splitGrid(s)
	if serr != nil {
		return g, err
	}
	if r, aerr := strconv.Atoi(rows); aerr == nil && errors.ValidateGrid(r, 1) == nil {
		g.Rows = r
	}
	if c, aerr := strconv.Atoi(cols); aerr == nil && errors.ValidateGrid(1, c) == nil {
		g.Cols = c
	}
	return g, err
}

func splitGrid(s string) (rows, cols string, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, sep := range []string{"x", "×", ","} {
		if r, c, ok := strings.Cut(s, sep); ok {
			return strings.TrimSpace(r), strings.TrimSpace(c), nil
		}
	}
	return "", "", errors.New(errors.ErrCodeInvalidGrid, "grid %q: want RxC", s)
}

// Partition splits frameDimension into count integer cells. Every cell but
// the last is floor(frameDimension/count) wide; the last absorbs the
// remainder so the cells sum to frameDimension exactly.
//
// count must be at least 1.
func Partition(frameDimension, count int) []int {
	if count < 1 {
		panic(fmt.Sprintf("layout: partition count %d < 1", count))
	}
	base := frameDimension / count
	cells := make([]int, count)
	for i := range cells {
		cells[i] = base
	}
	cells[count-1] = frameDimension - base*(count-1)
	return cells
}

// offsets returns the running sums of cells, starting at 0.
func offsets(cells []int) []int {
	out := make([]int, len(cells))
	sum := 0
	for i, c := range cells {
		out[i] = sum
		sum += c
	}
	return out
}
