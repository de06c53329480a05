package bsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/bsp"
	"github.com/katalvlaran/lvlgen/core"
)

func TestNewCounter_StartsAtZero(t *testing.T) {
	c := bsp.NewCounter()
	assert.Equal(t, 0, c.Count())
}

func TestNewNode_CountsConstructions(t *testing.T) {
	c := bsp.NewCounter()
	n := bsp.NewNode(core.Rect{W: 10, H: 10}, c)
	require.NotNil(t, n)
	assert.Equal(t, 1, c.Count())

	bsp.NewNode(core.Rect{X: 10, W: 10, H: 10}, c)
	assert.Equal(t, 2, c.Count())
}

func TestNewNode_NilCounterPanics(t *testing.T) {
	require.Panics(t, func() {
		bsp.NewNode(core.Rect{W: 10, H: 10}, nil)
	})
}

func TestNode_FreshNodeIsLeaf(t *testing.T) {
	n := bsp.NewNode(core.Rect{W: 8, H: 8}, bsp.NewCounter())
	assert.True(t, n.IsLeaf())
	assert.Equal(t, 0, n.Depth())
	assert.True(t, n.Corridor.IsEmpty())

	leaves := n.Leaves()
	require.Len(t, leaves, 1)
	assert.Same(t, n, leaves[0])
}

// TestNode_WalkPreOrder wires a two-level tree by hand and checks that
// Walk and Leaves follow left-before-right pre-order.
func TestNode_WalkPreOrder(t *testing.T) {
	c := bsp.NewCounter()
	root := bsp.NewNode(core.Rect{W: 40, H: 20}, c)
	root.Corridor = core.Rect{X: 18, Y: 0, W: 4, H: 20}
	root.Left = bsp.NewNode(core.Rect{W: 18, H: 20}, c)
	root.Right = bsp.NewNode(core.Rect{X: 22, W: 18, H: 20}, c)

	var walked []*bsp.Node
	root.Walk(func(n *bsp.Node) { walked = append(walked, n) })
	require.Len(t, walked, 3)
	assert.Same(t, root, walked[0])
	assert.Same(t, root.Left, walked[1])
	assert.Same(t, root.Right, walked[2])

	leaves := root.Leaves()
	require.Len(t, leaves, 2)
	assert.Same(t, root.Left, leaves[0])
	assert.Same(t, root.Right, leaves[1])
	assert.Equal(t, 1, root.Depth())
}
