package quadtree

import (
	"fmt"
	"image"
)

// Tree is the decomposition of one pixel source. The source must not change
// while the tree is decomposed or reconstructed.
type Tree struct {
	Root *Node

	src image.Image
	cfg Config
}

// NewTree returns an undecomposed tree over the full bounds of src.
func NewTree(src image.Image, cfg Config) (*Tree, error) {
	r, err := RegionOf(src.Bounds())
	if err != nil {
		return nil, fmt.Errorf("image bounds %v: %w", src.Bounds(), err)
	}
	return NewTreeRegion(src, r, cfg)
}

// NewTreeRegion returns an undecomposed tree over r, which must lie inside
// the bounds of src.
func NewTreeRegion(src image.Image, r Region, cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, fmt.Errorf("%w: non-positive size %dx%d", ErrInvalidRegion, r.Width, r.Height)
	}
	if !r.Within(src.Bounds()) {
		return nil, fmt.Errorf("%w: %v extends past image bounds %v", ErrInvalidRegion, r, src.Bounds())
	}

	return &Tree{
		Root: newNode(r),
		src:  src,
		cfg:  cfg,
	}, nil
}

func (t *Tree) Config() Config {
	return t.cfg
}

// Decompose splits the tree down to the configured depth. Calling it again
// keeps the existing divisions.
func (t *Tree) Decompose() {
	t.Root.Decompose(t.src, t.cfg.SampleStride, t.cfg.DispersionThreshold, t.cfg.MaxDepth)
}

// Walk visits every node in pre-order, NE, NW, SW then SE.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	t.Root.Walk(fn)
}

// Leaves returns the undivided nodes in pre-order.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	t.Walk(func(n *Node, _ int) bool {
		if !n.Divided() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// AverageColor returns the cached mean color of n.
func (t *Tree) AverageColor(n *Node) Color {
	return n.AverageColor(t.src, t.cfg.SampleStride)
}

type Stats struct {
	Nodes  int
	Leaves int
	Depth  int
}

func (t *Tree) Stats() Stats {
	var s Stats
	t.Walk(func(n *Node, depth int) bool {
		s.Nodes++
		if !n.Divided() {
			s.Leaves++
		}
		s.Depth = max(s.Depth, depth)
		return true
	})
	return s
}
