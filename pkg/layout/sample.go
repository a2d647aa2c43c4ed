package layout

import "math/rand/v2"

// NewRand returns a generator seeded from the runtime's entropy source.
// There is no reproducibility contract for scatter positions.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Sample picks one zone uniformly at random and returns a uniformly random
// point inside it. A zero-width or zero-height range yields its single
// coordinate. With no zones Sample returns the origin, accepting a possible
// overlap with the frame over blocking puzzle generation.
//
// A nil rng uses a freshly seeded generator.
func Sample(rng *rand.Rand, zones []Zone) Point {
	if len(zones) == 0 {
		return Point{}
	}
	if rng == nil {
		rng = NewRand()
	}

	z := zones[rng.IntN(len(zones))]
	xRange := max(0, z.XMax-z.XMin)
	yRange := max(0, z.YMax-z.YMin)

	p := Point{X: z.XMin, Y: z.YMin}
	if xRange > 0 {
		p.X += rng.Float64() * xRange
	}
	if yRange > 0 {
		p.Y += rng.Float64() * yRange
	}
	return p
}
