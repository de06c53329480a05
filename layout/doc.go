// Package layout assembles the full generation pipeline: partition tree,
// rasterization, door placement, and the connectivity report.
//
// What:
//
//   - Build turns a bounding rectangle plus functional Options into a
//     Result: the tile grid, the partition tree, room rectangles, doors,
//     and the indices of unreachable rooms.
//   - The draw order is fixed and load-bearing: grass, outer wall ring,
//     corridor bands in pre-order, then rooms with their rings. Later
//     stamps overwrite earlier ones.
//
// Why:
//
//   - One entry point wires the bsp, core, and doorway packages together
//     the same way every time, so a seed fully describes a level.
//   - Unreachable rooms are reported, not repaired; callers decide whether
//     to regenerate, patch, or keep them as secrets.
//
// Options:
//
//   - WithCorridorWidth, WithMinRoomSize, WithAdjustedMinRoomSize: geometry
//     floors for the split walk.
//   - WithSplitChance, WithMinIterations: early-stop tuning.
//   - WithBufferMargin: untouched border around the partitioned area.
//   - WithSeed, WithRand: determinism controls.
//
// Errors:
//
//   - ErrCorridorWidth, ErrRoomSize, ErrSplitChance, ErrMinIterations,
//     ErrBufferMargin, ErrBoundsTooSmall: option validation.
//   - core.ErrEmptyBounds: degenerate bounds rectangle.
//
// Complexity: O(W×H) for a W×H map; the tree and door phases are bounded
// by the rasterized area.
package layout
