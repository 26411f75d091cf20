package quadtree

import "image"

// Node covers one region of the source image. It is either a leaf or
// divided into exactly four children; a divided node never becomes a leaf
// again.
type Node struct {
	Region Region

	children [4]*Node
	divided  bool

	average  Color
	averaged bool
}

func newNode(r Region) *Node {
	return &Node{Region: r}
}

func (n *Node) Divided() bool {
	return n.divided
}

// Child returns the child in quadrant q, or nil for a leaf.
func (n *Node) Child(q Quadrant) *Node {
	if !n.divided {
		return nil
	}
	return n.children[q]
}

// Children returns the four children in Quadrant order, or nil for a leaf.
func (n *Node) Children() []*Node {
	if !n.divided {
		return nil
	}
	return n.children[:]
}

// Subdivide allocates the four children. It reports false and leaves the
// node untouched when it is already divided.
func (n *Node) Subdivide() bool {
	if n.divided {
		return false
	}
	for q, r := range n.Region.Quarter() {
		n.children[q] = newNode(r)
	}
	n.divided = true
	return true
}

// AverageColor returns the mean color of a sample of the node region taken
// from src, computing it on first use.
func (n *Node) AverageColor(src image.Image, stride int) Color {
	if !n.averaged {
		n.average = Average(Sample(src, n.Region, stride))
		n.averaged = true
	}
	return n.average
}

// Decompose samples the node region and subdivides it when the sample is too
// varied, then recurses into the children with one level less of depth.
// Nothing splits once depth reaches zero.
func (n *Node) Decompose(src image.Image, stride int, threshold float64, depth int) {
	if depth <= 0 {
		return
	}

	if !n.divided {
		s := Sample(src, n.Region, stride)
		if !n.averaged {
			n.average, n.averaged = Average(s), true
		}
		if !ShouldSplit(Dispersion(s), threshold) {
			return
		}
		n.Subdivide()
	}

	for _, c := range n.children {
		c.Decompose(src, stride, threshold, depth-1)
	}
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) || !n.divided {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}
