// Package doorway cuts door cells into room wall rings, connecting rooms to
// corridors and to each other.
//
// What:
//
//   - PlaceDoors scans every room ring for wall cells backed by a corridor
//     and opens one of them per room, picked at random.
//   - Rooms without corridor contact are stitched to door-owning neighbors
//     through shared walls, pass after pass, until no pass makes progress.
//   - Door records the cut position and the room side it pierces.
//
// Why:
//
//   - Rooms and corridors are stamped independently; doors are what turn a
//     set of sealed boxes into a traversable level.
//   - Best-effort semantics: an unreachable room is a reportable outcome,
//     not a failure of the placement pass.
//
// Complexity:
//
//   - Corridor phase: O(R×P) for R rooms of perimeter P.
//   - Stitch phase: O(R³) worst case (each pass is O(R²) and each pass
//     places at least one door or halts). Practical inputs stay far below.
//
// Errors:
//
//   - ErrNilGrid: PlaceDoors was handed a nil grid.
//
// Determinism: all randomness flows through the caller's *rand.Rand; a nil
// rng selects a fixed default stream, so results are reproducible by seed.
package doorway
