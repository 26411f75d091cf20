package quadtree

import (
	"fmt"
	"image"
)

// Quadrant indexes the children of a divided node. The y axis grows
// downward, so north is the top half of a region.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Region is an axis-aligned rectangle in pixel space.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRegion returns a region with a positive extent.
func NewRegion(x, y, width, height int) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("%w: non-positive size %dx%d", ErrInvalidRegion, width, height)
	}
	if x < 0 || y < 0 {
		return Region{}, fmt.Errorf("%w: negative origin (%d,%d)", ErrInvalidRegion, x, y)
	}
	return Region{X: x, Y: y, Width: width, Height: height}, nil
}

// RegionOf converts an image rectangle.
func RegionOf(r image.Rectangle) (Region, error) {
	return NewRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Region) Area() int {
	return r.Width * r.Height
}

func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Within reports whether r lies completely inside bounds.
func (r Region) Within(bounds image.Rectangle) bool {
	return r.Rect().In(bounds)
}

// Quarter splits r into four regions indexed by Quadrant. The west and
// north halves take the floor of an odd extent, so the quarters always tile
// r with no gap or overlap.
func (r Region) Quarter() [4]Region {
	wl, hl := r.Width/2, r.Height/2
	wr, hr := r.Width-wl, r.Height-hl

	var q [4]Region
	q[NE] = Region{X: r.X + wl, Y: r.Y, Width: wr, Height: hl}
	q[NW] = Region{X: r.X, Y: r.Y, Width: wl, Height: hl}
	q[SW] = Region{X: r.X, Y: r.Y + hl, Width: wl, Height: hr}
	q[SE] = Region{X: r.X + wl, Y: r.Y + hl, Width: wr, Height: hr}
	return q
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
