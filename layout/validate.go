// Package layout - option and bounds validation.
//
// Validation is staged: field ranges first, then the derived geometry
// (bounds minus buffer) against the room floor. Only sentinel errors from
// types.go are returned, so callers can branch with errors.Is.
package layout

import "github.com/katalvlaran/lvlgen/core"

// validateOptions checks o against bounds. Deterministic, side-effect free.
// Complexity: O(1).
func validateOptions(bounds core.Rect, o Options) error {
	if bounds.IsEmpty() {
		return core.ErrEmptyBounds
	}
	if o.MinRoomSize < 1 || o.AdjustedMinRoomSize < 1 {
		return ErrRoomSize
	}
	if o.CorridorWidth < 0 {
		return ErrCorridorWidth
	}
	if o.SplitChance < 0 || o.SplitChance > 1 {
		return ErrSplitChance
	}
	if o.MinIterations < 0 {
		return ErrMinIterations
	}
	if o.BufferMargin < 1 {
		return ErrBufferMargin
	}

	root := bounds.Inset(o.BufferMargin)
	if root.IsEmpty() || root.W < o.MinRoomSize || root.H < o.MinRoomSize {
		return ErrBoundsTooSmall
	}
	return nil
}
