package picture

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

// Slice cuts img into one image per grid cell, indexed by row*cols+col.
func Slice(img *Image, grid layout.Grid) []image.Image {
	origin := img.Decoded.Bounds().Min
	cells := layout.SourceCells(img.Size(), grid)

	pieces := make([]image.Image, len(cells))
	for i, cell := range cells {
		pieces[i] = imaging.Crop(img.Decoded, cell.Add(origin))
	}
	return pieces
}

// Resample scales src to size with bilinear filtering.
func Resample(src image.Image, size layout.Size) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, max(1, size.W), max(1, size.H)))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Pieces slices img and resamples every piece to its size in l.
func Pieces(img *Image, l *layout.Layout) []image.Image {
	pieces := Slice(img, l.Grid)
	for i, p := range pieces {
		pieces[i] = Resample(p, l.PieceSize(i))
	}
	return pieces
}
