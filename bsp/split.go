// Recursive splitting - the partition algorithm itself.
//
// Determinism:
//   - All randomness flows through the *rand.Rand argument; no globals.
//   - The chance draw is consumed on every call, whether or not it stops
//     the node, so the stream shape never depends on earlier outcomes.
//   - Children are constructed and recursed left before right.
package bsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlgen/core"
)

const (
	// snapStep is the coarse alignment grid for split coordinates; room
	// edges land on multiples of this step wherever the size floor allows.
	snapStep = 10

	// defaultRNGSeed is the fixed seed behind a nil RNG argument, kept
	// stable so undirected callers still get reproducible trees.
	defaultRNGSeed int64 = 1
)

// Split recursively divides the node until every descendant is either
// stopped by chance or too small to cut further. The decision sequence per
// node:
//
//  1. Early-stop gate: draw once from rng; the node stays a leaf when the
//     draw is ≤ p.SplitChance AND the run has already constructed at least
//     p.MinIterations nodes. The warm-up keeps the first splits mandatory.
//  2. Size floor: a cut along either axis must leave two children of at
//     least p.MinRoomSize plus the corridor band. If neither axis has the
//     room for that, a corridor-bearing node degrades to corridor-less
//     mode (CorridorWidth 0, MinRoomSize = AdjustedMinRoomSize) and
//     re-checks; an already corridor-less node stays a leaf.
//  3. Axis: wider than tall cuts vertically (side-by-side children), the
//     transpose cuts horizontally, a square flips a coin.
//  4. Coordinate: uniform over the feasible range, snapped to the nearest
//     multiple of snapStep, then clamped back into the range so the
//     corridor stays inside the parent and both children keep the floor.
//  5. The corridor band is recorded on this node, both children inherit
//     the (possibly degraded) params copy, and the split recurses.
//
// A nil rng falls back to the deterministic default stream.
// Complexity: O(nodes produced) time, O(depth) stack.
func (n *Node) Split(p Params, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}

	// 1. Early-stop gate. The draw happens unconditionally.
	if draw := rng.Float64(); draw <= p.SplitChance && n.counter.Count() >= p.MinIterations {
		return
	}

	// 2. Size floor, with one-shot degradation to corridor-less mode.
	threshold := 2*p.MinRoomSize + p.CorridorWidth
	if n.Bounds.W <= threshold && n.Bounds.H <= threshold {
		if p.CorridorWidth == 0 {
			return
		}
		p.CorridorWidth = 0
		p.MinRoomSize = p.AdjustedMinRoomSize
		threshold = 2 * p.MinRoomSize
		if n.Bounds.W <= threshold && n.Bounds.H <= threshold {
			return
		}
	}

	// 3. Axis by aspect; a square defers to the RNG. Whenever the floor
	// check passed on one axis only, that axis is also the longer one, so
	// the chosen cut always fits.
	vertical := n.Bounds.W > n.Bounds.H
	if n.Bounds.W == n.Bounds.H {
		vertical = rng.Intn(2) == 0
	}

	// 4-5. Cut, record the band, construct children, recurse.
	if vertical {
		lo := n.Bounds.X + p.MinRoomSize
		hi := n.Bounds.XMax() - p.MinRoomSize - p.CorridorWidth
		s := splitCoord(lo, hi, rng)

		n.Corridor = rect(s, n.Bounds.Y, p.CorridorWidth, n.Bounds.H)
		n.Left = NewNode(rect(n.Bounds.X, n.Bounds.Y, s-n.Bounds.X, n.Bounds.H), n.counter)
		n.Right = NewNode(rect(s+p.CorridorWidth, n.Bounds.Y, n.Bounds.XMax()-s-p.CorridorWidth, n.Bounds.H), n.counter)
	} else {
		lo := n.Bounds.Y + p.MinRoomSize
		hi := n.Bounds.YMax() - p.MinRoomSize - p.CorridorWidth
		s := splitCoord(lo, hi, rng)

		n.Corridor = rect(n.Bounds.X, s, n.Bounds.W, p.CorridorWidth)
		n.Left = NewNode(rect(n.Bounds.X, n.Bounds.Y, n.Bounds.W, s-n.Bounds.Y), n.counter)
		n.Right = NewNode(rect(n.Bounds.X, s+p.CorridorWidth, n.Bounds.W, n.Bounds.YMax()-s-p.CorridorWidth), n.counter)
	}

	n.Left.Split(p, rng)
	n.Right.Split(p, rng)
}

// rect is shorthand for a core.Rect literal; the split bodies read better
// without field names on every child rectangle.
func rect(x, y, w, h int) core.Rect {
	return core.Rect{X: x, Y: y, W: w, H: h}
}

// splitCoord draws uniformly from [lo, hi], snaps to the nearest multiple
// of snapStep (half rounds away from zero, correct for negative
// coordinates too), and clamps the result back into [lo, hi].
// Callers guarantee lo <= hi.
func splitCoord(lo, hi int, rng *rand.Rand) int {
	s := lo + rng.Intn(hi-lo+1)
	snapped := int(math.Round(float64(s)/snapStep)) * snapStep
	if snapped < lo {
		snapped = lo
	}
	if snapped > hi {
		snapped = hi
	}
	return snapped
}
