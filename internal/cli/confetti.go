package cli

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

// Victory effect timings.
const (
	bannerDuration   = 3 * time.Second
	confettiDuration = 5 * time.Second
	confettiCount    = 100
	frameInterval    = 50 * time.Millisecond
)

// particle is one confetti piece. Positions are in surface pixels and
// velocities in pixels per second.
type particle struct {
	x, y   float64
	vx, vy float64
	phase  float64
	col    color.RGBA
}

// confetti is a burst of particles falling from above the surface.
type confetti struct {
	started time.Time
	parts   []particle
}

func newConfetti(rng *rand.Rand, surface layout.Size, now time.Time) *confetti {
	w, h := float64(surface.W), float64(surface.H)
	// Slowest particles still clear the bottom edge by the end.
	fall := 1.6 * h / confettiDuration.Seconds()

	parts := make([]particle, confettiCount)
	for i := range parts {
		r, g, b := colorful.Hsl(rng.Float64()*360, 1, 0.5).RGB255()
		parts[i] = particle{
			x:     rng.Float64() * w,
			y:     -rng.Float64() * h / 2,
			vx:    (rng.Float64() - 0.5) * w / 10,
			vy:    fall * (1 + rng.Float64()),
			phase: rng.Float64() * 2 * math.Pi,
			col:   color.RGBA{R: r, G: g, B: b, A: 255},
		}
	}
	return &confetti{started: now, parts: parts}
}

// done reports whether the burst is over at now.
func (c *confetti) done(now time.Time) bool {
	return now.Sub(c.started) >= confettiDuration
}

// draw paints every particle at its position at now. Each particle covers
// one terminal cell.
func (c *confetti) draw(cv *canvas, now time.Time) {
	t := now.Sub(c.started).Seconds()
	for _, p := range c.parts {
		x := int(p.x + p.vx*t + 3*math.Sin(p.phase+t*4))
		y := int(p.y+p.vy*t) &^ 1
		cv.set(x, y, p.col)
		cv.set(x, y+1, p.col)
	}
}
