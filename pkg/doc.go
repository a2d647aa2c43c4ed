// Package pkg provides the core libraries for the Jigsaw puzzle game.
//
// # Overview
//
// Jigsaw cuts an image into a grid of pieces, scatters them around a play
// surface and lets the player drag them back into place. The pkg directory is
// organized into three areas:
//
//  1. Geometry and game state - [layout], [puzzle]
//  2. Images and sessions - [picture], [session]
//  3. Persistence and support - [cache], [history], [i18n], [io],
//     [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow of one game:
//
//	PNG/JPEG bytes
//	     ↓
//	[picture] package (sniff, decode, slice into pieces)
//	     ↓
//	[layout] package (frame, cells, scatter zones for a surface)
//	     ↓
//	[puzzle] package (piece positions, drag, snap, victory)
//	     ↓
//	host (terminal surface in internal/cli)
//
// [session] ties these together with the recent-image [history], which is
// kept in a [cache] store as data URLs, and the selected language from
// [i18n].
//
// # Quick Start
//
//	img, err := picture.LoadFile("photo.jpg")
//	if err != nil {
//	    return err
//	}
//
//	surface := layout.Size{W: 120, H: 80}
//	l := layout.Build(img.Size(), surface, layout.Grid{Rows: 2, Cols: 3})
//	pieces := picture.Pieces(img, l)
//	board := puzzle.New(l)
//
//	// Drive the board from pointer events.
//	board.Press(pointer)
//	board.Move(pointer)
//	if d, ok := board.Release(); ok && d.Victory {
//	    fmt.Println("done")
//	}
//
// # Coordinates
//
// All geometry is in play-surface pixels with the origin at the top-left
// corner. Piece positions are float64 so drags are exact; cells are whole
// pixels.
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/layout
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/puzzle
// [picture]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/picture
// [session]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/session
// [cache]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/cache
// [history]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/history
// [i18n]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/i18n
// [io]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/jigsaw/pkg/buildinfo
package pkg
