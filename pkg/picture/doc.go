// Package picture loads the source image of a puzzle and derives everything
// the game needs from it: piece images, history snapshots and data URLs.
//
// Content is sniffed from the bytes, never trusted from a file name. Only
// PNG and JPEG are accepted:
//
//	img, err := picture.LoadFile("photo.jpg")
//	if errors.Is(err, errors.ErrCodeUnsupportedType) {
//	    // not an image we can play with
//	}
//
// Piece images are cut along [layout.SourceCells] by [Slice] and scaled to
// their on-surface size by [Resample]. Snapshots for the recent-image history
// are taken by [Snapshot]; they keep the original bytes when the image is
// small enough and are re-encoded as JPEG otherwise.
package picture
