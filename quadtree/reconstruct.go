package quadtree

import (
	"image"

	"golang.org/x/image/draw"
)

// Sink receives flat color fills. A later fill over an overlapping area
// takes precedence.
type Sink interface {
	Fill(r Region, c Color)
}

type SinkFunc func(r Region, c Color)

func (f SinkFunc) Fill(r Region, c Color) {
	f(r, c)
}

// Canvas paints fills into a draw.Image.
type Canvas struct {
	Dst draw.Image
}

func (c Canvas) Fill(r Region, col Color) {
	draw.Draw(c.Dst, r.Rect(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Reconstruct emits one fill per node, parents before children, so every
// pixel ends with the color of its deepest covering node.
func (t *Tree) Reconstruct(sink Sink) {
	t.Walk(func(n *Node, _ int) bool {
		sink.Fill(n.Region, t.AverageColor(n))
		return true
	})
}

// ReconstructLeaves emits one fill per leaf. The fills never overlap and
// cover the root region exactly once.
func (t *Tree) ReconstructLeaves(sink Sink) {
	for _, n := range t.Leaves() {
		sink.Fill(n.Region, t.AverageColor(n))
	}
}

// Render returns the leaf reconstruction as an opaque image with the bounds
// of the root region.
func (t *Tree) Render() *image.RGBA {
	dst := image.NewRGBA(t.Root.Region.Rect())
	t.ReconstructLeaves(Canvas{Dst: dst})
	return dst
}
