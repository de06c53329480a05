// Package bsp grows the binary space partition tree that decides where
// rooms and corridor bands go before anything touches the grid.
//
// What:
//
//   - Node is one rectangle of dungeon space; internal nodes carry the
//     corridor band separating their two children, leaves become rooms.
//   - Counter is the shared construction counter for one generation run;
//     the split gate reads it to decide when early stopping may kick in.
//   - Split recursively divides a node: a chance gate, a size floor with a
//     corridor-less degradation mode, axis choice by aspect, and a split
//     coordinate snapped to a coarse alignment step.
//   - Leaves, Walk, and Depth expose the finished tree for rasterization
//     and for structural assertions.
//
// Why:
//
//   - Separation of concerns: the tree is pure geometry. Drawing it onto a
//     tile grid and cutting doors are later, independent passes.
//   - Determinism: all randomness flows through the *rand.Rand handed to
//     Split; the same seed always grows the same tree.
//
// Complexity:
//
//   - Split:  O(n) time over the n nodes produced, O(depth) stack.
//   - Leaves: O(n) time, O(n) output.
//   - Walk:   O(n) time, O(depth) stack.
//   - Depth:  O(n) time, O(depth) stack.
//
// Errors:
//
// None. Callers validate parameters before splitting (see lvlgen/layout);
// NewNode panics on a nil counter, which is a programming error, and a nil
// RNG falls back to the deterministic default stream.
package bsp
