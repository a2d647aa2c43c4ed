package layout

// DefaultMargin is the gap in pixels kept between a scattered piece and the
// frame.
const DefaultMargin = 5

// Side identifies which side of the frame a zone lies on.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

// Frame is the assembled-puzzle rectangle placed on the surface. Its origin
// may be fractional because it is centered.
type Frame struct {
	Origin Point
	Size   Size
}

// Left returns the x-coordinate of the left edge.
func (f Frame) Left() float64 { return f.Origin.X }

// Top returns the y-coordinate of the top edge.
func (f Frame) Top() float64 { return f.Origin.Y }

// Right returns the x-coordinate of the right edge.
func (f Frame) Right() float64 { return f.Origin.X + float64(f.Size.W) }

// Bottom returns the y-coordinate of the bottom edge.
func (f Frame) Bottom() float64 { return f.Origin.Y + float64(f.Size.H) }

// Zone is a rectangle of admissible top-left positions for a piece. A piece
// whose top-left corner lies in a zone does not touch the frame expanded by
// the margin.
type Zone struct {
	Side       Side
	XMin, XMax float64
	YMin, YMax float64
}

// Valid reports whether the zone has a non-negative extent on both axes.
func (z Zone) Valid() bool { return z.XMax >= z.XMin && z.YMax >= z.YMin }

// Contains reports whether p lies within the closed zone.
func (z Zone) Contains(p Point) bool {
	return p.X >= z.XMin && p.X <= z.XMax && p.Y >= z.YMin && p.Y <= z.YMax
}

// Zones returns the primary scatter zones for a piece of the given size.
//
// A left or right strip is included when it is at least piece.W+margin wide
// and spans the full surface height. A top or bottom strip is included when
// it is at least piece.H+margin tall and the frame is at least as wide as the
// piece; it spans only the frame's horizontal extent.
func Zones(f Frame, surface, piece Size, margin float64) []Zone {
	zones := sideZones(f, surface, piece, margin)

	pw, ph := float64(piece.W), float64(piece.H)
	if float64(f.Size.W) >= pw {
		if f.Top() >= ph+margin {
			zones = append(zones, Zone{
				Side: SideTop,
				XMin: f.Left(), XMax: f.Right() - pw,
				YMin: 0, YMax: f.Top() - ph - margin,
			})
		}
		if float64(surface.H)-f.Bottom() >= ph+margin {
			zones = append(zones, Zone{
				Side: SideBottom,
				XMin: f.Left(), XMax: f.Right() - pw,
				YMin: f.Bottom() + margin, YMax: float64(surface.H) - ph,
			})
		}
	}
	return valid(zones)
}

// FallbackZones is the looser pass used when Zones finds nothing: top and
// bottom strips span the full surface width and no longer require the frame
// to be as wide as the piece.
func FallbackZones(f Frame, surface, piece Size, margin float64) []Zone {
	zones := sideZones(f, surface, piece, margin)

	sw, sh := float64(surface.W), float64(surface.H)
	pw, ph := float64(piece.W), float64(piece.H)
	if f.Top() >= ph+margin {
		zones = append(zones, Zone{
			Side: SideTop,
			XMin: 0, XMax: sw - pw,
			YMin: 0, YMax: f.Top() - ph - margin,
		})
	}
	if sh-f.Bottom() >= ph+margin {
		zones = append(zones, Zone{
			Side: SideBottom,
			XMin: 0, XMax: sw - pw,
			YMin: f.Bottom() + margin, YMax: sh - ph,
		})
	}
	return valid(zones)
}

// ScatterZones returns Zones, or FallbackZones when the primary pass is
// empty. The result may still be empty.
func ScatterZones(f Frame, surface, piece Size, margin float64) []Zone {
	if zones := Zones(f, surface, piece, margin); len(zones) > 0 {
		return zones
	}
	return FallbackZones(f, surface, piece, margin)
}

func sideZones(f Frame, surface, piece Size, margin float64) []Zone {
	sw, sh := float64(surface.W), float64(surface.H)
	pw, ph := float64(piece.W), float64(piece.H)

	var zones []Zone
	if f.Left() >= pw+margin {
		zones = append(zones, Zone{
			Side: SideLeft,
			XMin: 0, XMax: f.Left() - pw - margin,
			YMin: 0, YMax: sh - ph,
		})
	}
	if sw-f.Right() >= pw+margin {
		zones = append(zones, Zone{
			Side: SideRight,
			XMin: f.Right() + margin, XMax: sw - pw,
			YMin: 0, YMax: sh - ph,
		})
	}
	return zones
}

// valid drops zones with a negative extent, which happens when a piece is
// taller or wider than the whole surface.
func valid(zones []Zone) []Zone {
	out := zones[:0]
	for _, z := range zones {
		if z.Valid() {
			out = append(out, z)
		}
	}
	return out
}
