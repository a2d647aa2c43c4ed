package io

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/layout"
)

// Document is an imported layout with the scatter positions it recorded.
type Document struct {
	Layout *layout.Layout

	// Scatter is nil when the export carried no positions.
	Scatter []layout.Point
}

// ReadJSON decodes a layout written by [WriteJSON].
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed, the
// widths or heights are not positive or do not partition the frame, or a
// piece does not sit at its cell within the frame. A degenerate grid or
// surface gives INVALID_GRID or INVALID_SURFACE.
func ReadJSON(r io.Reader) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}

	g := layout.Grid{Rows: data.Grid.Rows, Cols: data.Grid.Cols}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateSurface(data.Surface.W, data.Surface.H); err != nil {
		return nil, err
	}
	if len(data.Widths) != g.Cols || sum(data.Widths) != data.Frame.W {
		return nil, errors.New(errors.ErrCodeInvalidInput, "widths do not partition a frame %d wide into %d columns", data.Frame.W, g.Cols)
	}
	if len(data.Heights) != g.Rows || sum(data.Heights) != data.Frame.H {
		return nil, errors.New(errors.ErrCodeInvalidInput, "heights do not partition a frame %d high into %d rows", data.Frame.H, g.Rows)
	}
	if !positive(data.Widths) || !positive(data.Heights) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "column widths and row heights must be positive")
	}
	if len(data.Pieces) != g.Count() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%d pieces for a %s grid", len(data.Pieces), g)
	}

	l := &layout.Layout{
		Surface: layout.Size{W: data.Surface.W, H: data.Surface.H},
		Source:  layout.Size{W: data.Source.W, H: data.Source.H},
		Grid:    g,
		Frame: layout.Frame{
			Origin: layout.Point{X: data.Frame.X, Y: data.Frame.Y},
			Size:   layout.Size{W: data.Frame.W, H: data.Frame.H},
		},
		Margin:  data.Margin,
		Widths:  data.Widths,
		Heights: data.Heights,
		Cells:   make([]layout.Rect, len(data.Pieces)),
	}

	// Cells are rebuilt the way layout.Build places them and must match.
	xs, ys := offsets(data.Widths), offsets(data.Heights)
	doc := &Document{Layout: l}
	for i, p := range data.Pieces {
		row, col := g.Cell(i)
		cell := layout.Rect{
			X: int(math.Round(l.Frame.Left() + float64(xs[col]))),
			Y: int(math.Round(l.Frame.Top() + float64(ys[row]))),
			W: data.Widths[col],
			H: data.Heights[row],
		}
		if p.Index != i || p.Row != row || p.Col != col || (layout.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}) != cell {
			return nil, errors.New(errors.ErrCodeInvalidInput, "piece %d does not match its cell %v", i, cell)
		}
		l.Cells[i] = cell

		if p.Scatter != nil {
			if doc.Scatter == nil {
				doc.Scatter = make([]layout.Point, len(data.Pieces))
			}
			doc.Scatter[i] = layout.Point{X: p.Scatter.X, Y: p.Scatter.Y}
		}
	}
	return doc, nil
}

// ImportJSON reads the layout file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

func positive(xs []int) bool {
	for _, x := range xs {
		if x <= 0 {
			return false
		}
	}
	return true
}

func offsets(xs []int) []int {
	out := make([]int, len(xs))
	total := 0
	for i, x := range xs {
		out[i] = total
		total += x
	}
	return out
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
