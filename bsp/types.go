// Package bsp - shared types for the partition tree.
//
// This file declares the construction Counter and the Params value that
// rides along the recursive split.
package bsp

// Counter tracks how many nodes one generation run has constructed.
// The split gate compares it against Params.MinIterations, so a run must
// create its own Counter and never share it across runs; stale counts
// would let early stopping fire too soon.
type Counter struct {
	constructions int
}

// NewCounter returns a fresh counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Count reports how many nodes have been constructed so far.
// Complexity: O(1).
func (c *Counter) Count() int {
	return c.constructions
}

// next records one more construction and returns the new total.
func (c *Counter) next() int {
	c.constructions++
	return c.constructions
}

// Params carries the split tuning knobs. It is passed by value: when a
// subtree degrades to corridor-less mode it mutates only its own copy, so
// siblings keep the settings they inherited.
type Params struct {
	// CorridorWidth is the band reserved between the two children of a
	// split, in cells. Zero means corridor-less mode.
	CorridorWidth int
	// MinRoomSize is the floor on both dimensions of every child produced
	// while corridors are still in play.
	MinRoomSize int
	// AdjustedMinRoomSize replaces MinRoomSize once a subtree degrades to
	// corridor-less mode, letting tight spaces still split into small rooms.
	AdjustedMinRoomSize int
	// SplitChance is the probability in [0,1] that a node stops splitting
	// early once the counter gate is open.
	SplitChance float64
	// MinIterations is how many node constructions must have happened
	// before SplitChance is allowed to stop a node.
	MinIterations int
}
