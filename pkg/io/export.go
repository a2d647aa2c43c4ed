package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

// WriteJSON encodes l as JSON and writes it to w. scatter, when not nil,
// holds one initial position per piece.
func WriteJSON(l *layout.Layout, scatter []layout.Point, w io.Writer) error {
	if scatter != nil && len(scatter) != len(l.Cells) {
		return fmt.Errorf("scatter has %d positions for %d pieces", len(scatter), len(l.Cells))
	}

	out := document{
		Surface: size{W: l.Surface.W, H: l.Surface.H},
		Source:  size{W: l.Source.W, H: l.Source.H},
		Grid:    grid{Rows: l.Grid.Rows, Cols: l.Grid.Cols},
		Margin:  l.Margin,
		Frame:   frame{X: l.Frame.Left(), Y: l.Frame.Top(), W: l.Frame.Size.W, H: l.Frame.Size.H},
		Widths:  l.Widths,
		Heights: l.Heights,
		Pieces:  make([]piece, len(l.Cells)),
	}

	for i, c := range l.Cells {
		row, col := l.Grid.Cell(i)
		p := piece{Index: i, Row: row, Col: col, X: c.X, Y: c.Y, W: c.W, H: c.H}
		for _, z := range l.Zones(i) {
			p.Zones = append(p.Zones, zone{Side: z.Side.String(), XMin: z.XMin, XMax: z.XMax, YMin: z.YMin, YMax: z.YMax})
		}
		if scatter != nil {
			p.Scatter = &point{X: scatter[i].X, Y: scatter[i].Y}
		}
		out.Pieces[i] = p
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes l to a JSON file at path.
func ExportJSON(l *layout.Layout, scatter []layout.Point, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(l, scatter, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
