package layout

import (
	"math/rand/v2"
	"testing"
)

func TestZonesAllSides(t *testing.T) {
	f := Frame{Origin: Point{X: 250, Y: 375}, Size: Size{W: 500, H: 250}}
	got := Zones(f, Size{W: 1000, H: 1000}, Size{W: 100, H: 50}, 5)

	want := []Zone{
		{Side: SideLeft, XMin: 0, XMax: 145, YMin: 0, YMax: 950},
		{Side: SideRight, XMin: 755, XMax: 900, YMin: 0, YMax: 950},
		{Side: SideTop, XMin: 250, XMax: 650, YMin: 0, YMax: 320},
		{Side: SideBottom, XMin: 250, XMax: 650, YMin: 630, YMax: 950},
	}
	if len(got) != len(want) {
		t.Fatalf("Zones() returned %d zones, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("zone %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestZonesTopBottomConfinedToFrame(t *testing.T) {
	// Wide surface, no room at the sides: only top/bottom, spanning the frame.
	f := Frame{Origin: Point{X: 10, Y: 100}, Size: Size{W: 80, H: 50}}
	got := Zones(f, Size{W: 100, H: 250}, Size{W: 20, H: 20}, 5)

	if len(got) != 2 {
		t.Fatalf("Zones() = %+v, want top and bottom", got)
	}
	for _, z := range got {
		if z.XMin != f.Left() || z.XMax != f.Right()-20 {
			t.Errorf("%v zone spans [%v, %v], want frame extent [%v, %v]", z.Side, z.XMin, z.XMax, f.Left(), f.Right()-20)
		}
	}
}

func TestZonesSideStripsUseFullHeight(t *testing.T) {
	f := Frame{Origin: Point{X: 100, Y: 0}, Size: Size{W: 100, H: 100}}
	got := Zones(f, Size{W: 300, H: 100}, Size{W: 30, H: 30}, 5)

	if len(got) != 2 {
		t.Fatalf("Zones() = %+v, want left and right", got)
	}
	for _, z := range got {
		if z.YMin != 0 || z.YMax != 70 {
			t.Errorf("%v zone spans y [%v, %v], want [0, 70]", z.Side, z.YMin, z.YMax)
		}
	}
}

func TestScatterZonesFallback(t *testing.T) {
	// The piece is wider than the frame and there is no room beside it, so only
	// the fallback pass with full-width top/bottom strips finds space.
	f := Frame{Origin: Point{X: 50, Y: 450}, Size: Size{W: 200, H: 100}}
	surface := Size{W: 300, H: 1000}
	piece := Size{W: 210, H: 40}

	if primary := Zones(f, surface, piece, 5); len(primary) != 0 {
		t.Fatalf("primary Zones() = %+v, want none", primary)
	}

	got := ScatterZones(f, surface, piece, 5)
	want := []Zone{
		{Side: SideTop, XMin: 0, XMax: 90, YMin: 0, YMax: 405},
		{Side: SideBottom, XMin: 0, XMax: 90, YMin: 555, YMax: 960},
	}
	if len(got) != len(want) {
		t.Fatalf("ScatterZones() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("zone %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScatterZonesNone(t *testing.T) {
	f := Frame{Origin: Point{}, Size: Size{W: 100, H: 100}}
	got := ScatterZones(f, Size{W: 100, H: 100}, Size{W: 10, H: 10}, 5)
	if len(got) != 0 {
		t.Fatalf("ScatterZones() = %+v, want none", got)
	}
	if p := Sample(nil, got); p != (Point{}) {
		t.Errorf("Sample(no zones) = %v, want origin", p)
	}
}

func TestZonesDropNegativeExtent(t *testing.T) {
	// A piece taller than the surface fits beside the frame horizontally but has
	// no vertical room; the strip must be dropped rather than returned inverted.
	f := Frame{Origin: Point{X: 200, Y: 0}, Size: Size{W: 50, H: 50}}
	got := ScatterZones(f, Size{W: 300, H: 50}, Size{W: 40, H: 80}, 5)
	for _, z := range got {
		if !z.Valid() {
			t.Errorf("invalid zone returned: %+v", z)
		}
	}
}

func TestZonesNeverTouchExpandedFrame(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const margin = 5.0

	for range 2000 {
		surface := Size{W: 20 + rng.IntN(1500), H: 20 + rng.IntN(1000)}
		frame := ComputeFrame(0.2+rng.Float64()*4, surface, DefaultFillRatio)
		f := Frame{Origin: centered(surface, frame), Size: frame}
		piece := Size{W: 1 + rng.IntN(frame.W+40), H: 1 + rng.IntN(frame.H+40)}

		for _, z := range ScatterZones(f, surface, piece, margin) {
			if !z.Valid() {
				t.Fatalf("invalid zone %+v", z)
			}
			for _, p := range []Point{
				{X: z.XMin, Y: z.YMin}, {X: z.XMax, Y: z.YMin},
				{X: z.XMin, Y: z.YMax}, {X: z.XMax, Y: z.YMax},
			} {
				if overlapsExpanded(p, piece, f, margin) {
					t.Fatalf("piece %v at %v overlaps frame %+v (zone %+v, surface %v)", piece, p, f, z, surface)
				}
			}
		}
	}
}

func overlapsExpanded(p Point, piece Size, f Frame, margin float64) bool {
	left, right := f.Left()-margin, f.Right()+margin
	top, bottom := f.Top()-margin, f.Bottom()+margin
	if p.X+float64(piece.W) <= left || p.X >= right {
		return false
	}
	if p.Y+float64(piece.H) <= top || p.Y >= bottom {
		return false
	}
	return true
}
