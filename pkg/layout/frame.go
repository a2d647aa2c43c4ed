package layout

import "math"

// DefaultFillRatio is the fraction of each surface dimension the frame may
// occupy.
const DefaultFillRatio = 0.5

// ComputeFrame returns the largest rectangle with the given aspect ratio
// (width/height) that fits within surface scaled by fillRatio.
//
// The frame is fitted to the available width first; if the resulting height
// exceeds the available height it is fitted to the height instead. Both
// dimensions are rounded to whole pixels.
//
// aspect must be positive and finite; it comes from a decoded image.
func ComputeFrame(aspect float64, surface Size, fillRatio float64) Size {
	availW := float64(surface.W) * fillRatio
	availH := float64(surface.H) * fillRatio

	var w, h float64
	if availW/aspect <= availH {
		w, h = availW, availW/aspect
	} else {
		w, h = availH*aspect, availH
	}
	return Size{W: int(math.Round(w)), H: int(math.Round(h))}
}

// centered returns the top-left corner of inner centered within outer.
// The result may be fractional.
func centered(outer, inner Size) Point {
	return Point{
		X: float64(outer.W-inner.W) / 2,
		Y: float64(outer.H-inner.H) / 2,
	}
}
