// Package core provides the tile primitives and the dense grid every other
// lvlgen package draws on and reads back.
//
// What:
//
//   - TileKind enumerates cell content: Empty, Wall, Floor, Door, Corridor, Grass.
//   - Point and Rect are immutable coordinate values; Rect ranges are half-open.
//   - Grid is a dense field of tile kinds over an absolute bounds rectangle,
//     with fail-fast (panicking) out-of-bounds access.
//   - FillRect and DrawPerimeterWalls are the raster primitives the layout
//     pipeline stamps rooms, corridors, and wall rings with.
//   - Regions labels contiguous passable areas (4-connectivity) for
//     connectivity analysis.
//
// Why:
//
//   - Dungeon rasterization: a later stamp always overwrites an earlier one,
//     so draw-order contracts stay trivial to reason about.
//   - Bug surfacing: an out-of-bounds write is a generation bug, and the grid
//     panics with the offending coordinate instead of clamping it away.
//   - Reachability: region labels answer "which rooms ended up connected"
//     without re-deriving walkability in every caller.
//
// Complexity:
//
//   - At / Set / InBounds:   O(1).
//   - FillRect:              O(area of the rectangle).
//   - DrawPerimeterWalls:    O(perimeter of the rectangle).
//   - Regions:               O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyBounds: grid requested over a rectangle with no cells.
//
// Out-of-bounds reads and writes panic; they are programming errors, not
// runtime conditions, and are never reported as error values.
package core
