// Package io provides JSON import and export for puzzle layouts.
//
// A layout is a pure function of the surface, source and grid sizes plus the
// fill ratio and margin, so the export is mostly a record of inputs and the
// computed geometry for external tools. Scatter positions, which are random,
// are included when supplied.
//
// # JSON Format
//
//	{
//	  "surface": {"w": 1000, "h": 1000},
//	  "source":  {"w": 800, "h": 600},
//	  "grid":    {"rows": 2, "cols": 3},
//	  "margin":  5,
//	  "frame":   {"x": 233.5, "y": 325, "w": 533, "h": 350},
//	  "widths":  [177, 177, 179],
//	  "heights": [175, 175],
//	  "pieces": [
//	    {"index": 0, "row": 0, "col": 0, "x": 234, "y": 325, "w": 177, "h": 175,
//	     "zones": [{"side": "left", "x_min": 0, "x_max": 51.5, "y_min": 0, "y_max": 825}],
//	     "scatter": {"x": 12.5, "y": 480}}
//	  ]
//	}
//
// # Import
//
// [ReadJSON] and [ImportJSON] rebuild the [layout.Layout] from the recorded
// frame, widths and heights and check that they are consistent with the grid.
// Zones are not read back; they are derived from the frame and margin.
//
// # Export
//
// Use [ExportJSON] to write a layout to a file, or [WriteJSON] to write to any
// io.Writer:
//
//	err := io.ExportJSON(l, scatter, "layout.json")
//
// [layout.Layout]: github.com/matzehuels/jigsaw/pkg/layout.Layout
package io
