// Grid construction, cell access, and the draw primitives used by the
// layout raster passes. All coordinates are absolute: a grid built over
// bounds [10,10 40x30] is addressed with X in [10,50) and Y in [10,40).
package core

import "fmt"

// Grid is a dense rectangular field of tile kinds covering Bounds.
// Storage is flat row-major and owned by the Grid; nothing aliases caller
// memory. Grid is not safe for concurrent mutation.
type Grid struct {
	bounds Rect
	cells  []TileKind
}

// NewGrid allocates a grid over bounds with every cell Empty.
// Returns ErrEmptyBounds if bounds has no cells.
// Complexity: O(W×H) time and memory.
func NewGrid(bounds Rect) (*Grid, error) {
	if bounds.IsEmpty() {
		return nil, ErrEmptyBounds
	}
	return &Grid{
		bounds: bounds,
		cells:  make([]TileKind, bounds.W*bounds.H),
	}, nil
}

// Bounds returns the rectangle the grid covers.
// Complexity: O(1).
func (g *Grid) Bounds() Rect { return g.bounds }

// InBounds reports whether p addresses a cell of the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return g.bounds.Contains(p)
}

// index maps an absolute point to its row-major storage slot.
// Callers must have bounds-checked p first.
func (g *Grid) index(p Point) int {
	return (p.Y-g.bounds.Y)*g.bounds.W + (p.X - g.bounds.X)
}

// At returns the tile kind stored at p. Reading outside the grid is a
// programming error and panics with the offending coordinate; the grid
// never clamps or wraps.
// Complexity: O(1).
func (g *Grid) At(p Point) TileKind {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("core: read at %s outside grid bounds %s", p, g.bounds))
	}
	return g.cells[g.index(p)]
}

// Set stores kind k at p. Writing outside the grid is a programming error
// and panics with the offending coordinate; the grid never clamps or wraps.
// Complexity: O(1).
func (g *Grid) Set(p Point, k TileKind) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("core: write of %s at %s outside grid bounds %s", k, p, g.bounds))
	}
	g.cells[g.index(p)] = k
}

// FillRect stamps kind k over every cell of r, iterating the half-open
// ranges [X, XMax) × [Y, YMax). An empty rectangle writes nothing.
// Cells outside the grid panic via Set.
// Complexity: O(r.W×r.H).
func (g *Grid) FillRect(r Rect, k TileKind) {
	for y := r.Y; y < r.YMax(); y++ {
		for x := r.X; x < r.XMax(); x++ {
			g.Set(Point{X: x, Y: y}, k)
		}
	}
}

// DrawPerimeterWalls sets the one-cell ring immediately outside r to Wall:
// columns r.X-1 and r.XMax(), rows r.Y-1 and r.YMax(), corners included.
// The ring must fit on the grid; callers keep at least one cell of slack
// around any rectangle they outline.
// Complexity: O(r.W + r.H).
func (g *Grid) DrawPerimeterWalls(r Rect) {
	// Horizontal runs, corners included.
	for x := r.X - 1; x <= r.XMax(); x++ {
		g.Set(Point{X: x, Y: r.Y - 1}, Wall)
		g.Set(Point{X: x, Y: r.YMax()}, Wall)
	}
	// Vertical runs between the corner rows.
	for y := r.Y; y < r.YMax(); y++ {
		g.Set(Point{X: r.X - 1, Y: y}, Wall)
		g.Set(Point{X: r.XMax(), Y: y}, Wall)
	}
}

// Count returns how many cells currently hold kind k.
// Complexity: O(W×H).
func (g *Grid) Count(k TileKind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}
