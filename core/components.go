package core

import "github.com/zyedidia/generic/mapset"

// neighborOffsets is the orthogonal 4-neighborhood in fixed N/E/S/W order.
// Region traversal sticks to this order so results are deterministic.
var neighborOffsets = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Regions finds all contiguous regions of cells whose kind satisfies
// passable, under 4-directional connectivity.
// Returns a slice of regions; each region lists its cells in BFS discovery
// order, seeded in row-major scan order, so output is deterministic for a
// given grid.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for the visited set and output.
func Regions(g *Grid, passable func(TileKind) bool) [][]Point {
	seen := mapset.New[Point]()
	var regions [][]Point

	b := g.Bounds()
	for y := b.Y; y < b.YMax(); y++ {
		for x := b.X; x < b.XMax(); x++ {
			p0 := Point{X: x, Y: y}
			if !passable(g.At(p0)) || seen.Has(p0) {
				continue
			}
			// BFS to collect the region.
			queue := []Point{p0}
			seen.Put(p0)
			var region []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				for _, d := range neighborOffsets {
					v := Point{X: u.X + d.X, Y: u.Y + d.Y}
					if !g.InBounds(v) || !passable(g.At(v)) || seen.Has(v) {
						continue
					}
					seen.Put(v)
					queue = append(queue, v)
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
