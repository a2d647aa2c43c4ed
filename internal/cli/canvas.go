package cli

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

// halfBlock draws the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const halfBlock = "▀"

// maxCachedCells bounds the rendered-cell cache before it is dropped.
const maxCachedCells = 1 << 16

// canvas is a pixel buffer shown two pixels per terminal cell: one column
// is one pixel wide, one row is two pixels high.
type canvas struct {
	w, h int
	pix  []color.RGBA
}

func newCanvas(size layout.Size) *canvas {
	w, h := max(0, size.W), max(0, size.H)
	return &canvas{w: w, h: h, pix: make([]color.RGBA, w*h)}
}

func (c *canvas) clear(col color.RGBA) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

func (c *canvas) inside(x, y int) bool { return x >= 0 && y >= 0 && x < c.w && y < c.h }

func (c *canvas) set(x, y int, col color.RGBA) {
	if c.inside(x, y) {
		c.pix[y*c.w+x] = col
	}
}

func (c *canvas) at(x, y int) color.RGBA {
	if !c.inside(x, y) {
		return color.RGBA{}
	}
	return c.pix[y*c.w+x]
}

func (c *canvas) fillRect(r layout.Rect, col color.RGBA) {
	for y := max(0, r.Y); y < min(c.h, r.Bottom()); y++ {
		for x := max(0, r.X); x < min(c.w, r.Right()); x++ {
			c.pix[y*c.w+x] = col
		}
	}
}

func (c *canvas) strokeRect(r layout.Rect, col color.RGBA) {
	for x := r.X; x < r.Right(); x++ {
		c.set(x, r.Y, col)
		c.set(x, r.Bottom()-1, col)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		c.set(r.X, y, col)
		c.set(r.Right()-1, y, col)
	}
}

// drawImage copies img with its top-left corner at (x, y), clipped to the
// canvas. Transparent pixels are skipped.
func (c *canvas) drawImage(img image.Image, x, y int) {
	b := img.Bounds()
	rgba, fast := img.(*image.RGBA)
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= c.h {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if dx < 0 || dx >= c.w {
				continue
			}
			var col color.RGBA
			if fast {
				col = rgba.RGBAAt(sx, sy)
			} else {
				col = color.RGBAModel.Convert(img.At(sx, sy)).(color.RGBA)
			}
			if col.A == 0 {
				continue
			}
			c.pix[dy*c.w+dx] = col
		}
	}
}

// rows returns the number of terminal rows the canvas occupies.
func (c *canvas) rows() int { return (c.h + 1) / 2 }

// cellCache memoizes styled half-block strings by colour pair.
type cellCache map[uint64]string

func (cc cellCache) cell(top, bottom color.RGBA, n int) string {
	key := uint64(rgbKey(top))<<24 | uint64(rgbKey(bottom))
	s, ok := cc[key]
	if !ok {
		if len(cc) >= maxCachedCells {
			clear(cc)
		}
		s = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hexColor(top))).
			Background(lipgloss.Color(hexColor(bottom))).
			Render(halfBlock)
		cc[key] = s
	}
	if n == 1 {
		return s
	}
	return strings.Repeat(s, n)
}

// render returns one string per terminal row. Runs of identical cells share
// a style lookup.
func (c *canvas) render(cc cellCache) []string {
	lines := make([]string, c.rows())
	var b strings.Builder
	for row := range lines {
		b.Reset()
		ty, by := row*2, row*2+1
		for x := 0; x < c.w; {
			top, bottom := c.at(x, ty), c.at(x, by)
			n := 1
			for x+n < c.w && c.at(x+n, ty) == top && c.at(x+n, by) == bottom {
				n++
			}
			b.WriteString(cc.cell(top, bottom, n))
			x += n
		}
		lines[row] = b.String()
	}
	return lines
}

func rgbKey(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
