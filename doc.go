// Package lvlgen is your in-memory forge for carving, exploring, and
// analyzing procedural 2D dungeon layouts — from tile primitives to a
// full seeded generation pipeline.
//
// 🚀 What is lvlgen?
//
//	A modern, deterministic, dependency-light library that brings together:
//		• Tile primitives: points, rectangles & a dense tile grid with
//		  fail-fast bounds checking
//		• Space partitioning: a recursive BSP tree with corridor bands,
//		  size floors and a corridor-less degradation mode
//		• Rasterization: a fixed draw order that stamps grass, perimeter
//		  walls, corridors, rooms and room walls onto the grid
//		• Door placement: corridor-adjacent door cutting plus a shuffled
//		  stitching pass for rooms the corridor web never reached
//		• Analysis: walkable-region labelling and a disconnected-room
//		  report on every result
//
// ✨ Why choose lvlgen?
//
//   - Deterministic – same seed ⇒ identical layout, on every platform
//   - Beginner-friendly – one Build call, clear functional options
//   - Honest results – unreachable rooms are reported, never hidden
//   - Extensible – the partition tree and grid are fully inspectable
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — TileKind, Point, Rect, Grid & region analysis
//	bsp/     — partition tree: Node, Counter, recursive Split
//	doorway/ — Door, Side & the two-phase door placer
//	layout/  — options, validation, the Build pipeline & Result
//
// Quick ASCII example:
//
//	    ########┄┄########
//	    #......#┄┄#......#
//	    #......+┄┄+......#
//	    ########┄┄########
//
//	two rooms opened onto the corridor band between them.
//
// Dive into the package docs and examples/ for full walkthroughs, and
// layout.Build for the one-call entry point.
//
//	go get github.com/katalvlaran/lvlgen
package lvlgen
