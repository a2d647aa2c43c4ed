package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/jigsaw/pkg/errors"
)

// Size is a width and height in surface pixels.
type Size struct {
	W, H int
}

// Aspect returns W/H. The caller guarantees a non-zero height.
func (s Size) Aspect() float64 { return float64(s.W) / float64(s.H) }

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// String returns the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// ParseSize parses "WxH". Both dimensions must be positive.
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, errors.New(errors.ErrCodeInvalidSurface, "size %q: want WxH", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return Size{}, errors.Wrap(errors.ErrCodeInvalidSurface, err, "size %q: width", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return Size{}, errors.Wrap(errors.ErrCodeInvalidSurface, err, "size %q: height", s)
	}
	if err := errors.ValidateSurface(width, height); err != nil {
		return Size{}, err
	}
	return Size{W: width, H: height}, nil
}

// Point is a position in play-surface coordinates.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rect is an integer rectangle anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Origin returns the top-left corner as a Point.
func (r Rect) Origin() Point { return Point{X: float64(r.X), Y: float64(r.Y)} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Expand grows r by d on every side.
func (r Rect) Expand(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
