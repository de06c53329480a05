// Node construction and tree traversal helpers.
package bsp

import "github.com/katalvlaran/lvlgen/core"

// Node is one rectangle of partitioned dungeon space. A leaf becomes a
// room; an internal node records the corridor band that separates its two
// children. Corridor is the zero Rect on leaves and on internal nodes
// produced in corridor-less mode.
type Node struct {
	// Bounds is the space this node owns, in absolute grid coordinates.
	Bounds core.Rect
	// Corridor is the band between Left and Right; empty unless this node
	// split with a non-zero corridor width.
	Corridor core.Rect
	// Left and Right are the two halves of a split node; both nil on leaves.
	Left  *Node
	Right *Node

	counter *Counter
}

// NewNode constructs a node over bounds and records the construction on c.
// Panics on a nil counter: every node of a run must share the run's counter.
func NewNode(bounds core.Rect, c *Counter) *Node {
	if c == nil {
		panic("bsp: NewNode(nil counter)")
	}
	c.next()
	return &Node{Bounds: bounds, counter: c}
}

// IsLeaf reports whether the node has no children.
// Complexity: O(1).
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves collects the leaf nodes in pre-order (left subtree before right).
// This is the canonical room order for the whole pipeline: rasterization
// and door placement both follow it.
// Complexity: O(n) time, O(n) output.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(m *Node) {
		if m.IsLeaf() {
			leaves = append(leaves, m)
		}
	})
	return leaves
}

// Walk visits every node in pre-order: the node itself, then the left
// subtree, then the right.
// Complexity: O(n) time, O(depth) stack.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	if n.Left != nil {
		n.Left.Walk(fn)
	}
	if n.Right != nil {
		n.Right.Walk(fn)
	}
}

// Depth returns the height of the subtree rooted at n; a leaf has depth 0.
// Complexity: O(n) time, O(depth) stack.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	d := n.Left.Depth()
	if r := n.Right.Depth(); r > d {
		d = r
	}
	return d + 1
}
