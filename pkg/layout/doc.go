// Package layout computes the geometry of a jigsaw puzzle instance.
//
// # Overview
//
// Given the dimensions of a decoded source image, the size of the play
// surface and a grid specification, this package decides:
//
//   - The size of the assembled puzzle frame ([ComputeFrame]), centered
//     within the play surface.
//   - The integer size of every grid cell ([Partition]), with the last row
//     and column absorbing rounding remainders so the cells tile the frame
//     exactly.
//   - The scatter zones around the frame where a piece may start
//     ([ScatterZones]) and a uniformly random point inside one of them
//     ([Sample]).
//
// # Building a Layout
//
// Use [Build] with the source size, the surface size and a [Grid]:
//
//	l := layout.Build(layout.Size{W: 800, H: 400}, layout.Size{W: 1000, H: 1000},
//	    layout.Grid{Rows: 3, Cols: 3},
//	    layout.WithMargin(5),
//	)
//
// The returned [Layout] holds one cell rectangle and one correct position per
// piece, indexed by row*cols+col.
//
// # Scatter Zones
//
// Left and right zones span the full surface height. Top and bottom zones are
// confined to the frame's horizontal extent. When no zone fits, a looser
// fallback lets top and bottom zones span the full surface width. When even
// that yields nothing, [Sample] returns the origin rather than failing, so
// puzzle generation is never blocked.
//
// # Options
//
//   - [WithFillRatio]: Fraction of the surface the frame may occupy (default 0.5)
//   - [WithMargin]: Gap kept between scatter zones and the frame (default 5)
package layout
