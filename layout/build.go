package layout

import (
	"math/rand"

	"github.com/katalvlaran/lvlgen/bsp"
	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/doorway"
)

// builder carries the mutable state of one generation run.
type builder struct {
	g     *core.Grid
	opts  Options
	rng   *rand.Rand
	root  *bsp.Node
	rooms []core.Rect
}

// Build generates a complete level over bounds.
//
// The pipeline runs in a fixed order: validate options, fill the map with
// grass, draw the outer wall ring, grow the partition tree, stamp corridor
// bands, stamp rooms with their wall rings, cut doors, and finally report
// rooms that ended up unreachable. Later stamps overwrite earlier ones, so
// the order is part of the contract.
//
// Build never touches shared state; concurrent calls are safe as long as
// any stream passed via WithRand is not shared between them.
//
// Returns a validation sentinel (ErrCorridorWidth, ErrRoomSize,
// ErrSplitChance, ErrMinIterations, ErrBufferMargin, ErrBoundsTooSmall) or
// core.ErrEmptyBounds on bad input; otherwise the error is nil.
func Build(bounds core.Rect, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(bounds, o); err != nil {
		return nil, err
	}

	g, err := core.NewGrid(bounds)
	if err != nil {
		return nil, err
	}

	b := &builder{g: g, opts: o, rng: o.Rand}
	if b.rng == nil {
		b.rng = rngFromSeed(o.Seed)
	}

	b.paintBase()
	b.growTree()
	b.stampCorridors()
	b.stampRooms()

	doors, err := doorway.PlaceDoors(b.g, b.rooms, b.rng)
	if err != nil {
		return nil, err
	}

	return &Result{
		Grid:         b.g,
		Root:         b.root,
		Rooms:        b.rooms,
		Doors:        doors,
		Disconnected: b.disconnectedRooms(),
	}, nil
}

// paintBase fills the whole map with grass and rings the partitioned area
// with the outer wall. BufferMargin >= 1 keeps the ring inside the grid.
func (b *builder) paintBase() {
	bounds := b.g.Bounds()
	b.g.FillRect(bounds, core.Grass)
	b.g.DrawPerimeterWalls(bounds.Inset(b.opts.BufferMargin))
}

// growTree partitions the buffer-inset area. The run gets a fresh counter;
// the gate in the split walk depends on it starting at zero.
func (b *builder) growTree() {
	area := b.g.Bounds().Inset(b.opts.BufferMargin)
	b.root = bsp.NewNode(area, bsp.NewCounter())
	b.root.Split(bsp.Params{
		CorridorWidth:       b.opts.CorridorWidth,
		MinRoomSize:         b.opts.MinRoomSize,
		AdjustedMinRoomSize: b.opts.AdjustedMinRoomSize,
		SplitChance:         b.opts.SplitChance,
		MinIterations:       b.opts.MinIterations,
	}, b.rng)
}

// stampCorridors rasterizes every corridor band in pre-order, parents
// before children.
func (b *builder) stampCorridors() {
	b.root.Walk(func(n *bsp.Node) {
		if !n.Corridor.IsEmpty() {
			b.g.FillRect(n.Corridor, core.Corridor)
		}
	})
}

// stampRooms rasterizes every leaf as a floor-filled room with a wall ring
// just outside it, in leaf pre-order. Rings overwrite corridor edges and,
// for wall-sharing rooms, one column or row of an earlier neighbor.
func (b *builder) stampRooms() {
	leaves := b.root.Leaves()
	b.rooms = make([]core.Rect, 0, len(leaves))
	for _, leaf := range leaves {
		b.g.FillRect(leaf.Bounds, core.Floor)
		b.g.DrawPerimeterWalls(leaf.Bounds)
		b.rooms = append(b.rooms, leaf.Bounds)
	}
}

// passable is the traversal rule behind the connectivity report: floors,
// doors, and corridors carry movement, everything else blocks it.
func passable(k core.TileKind) bool {
	return k == core.Floor || k == core.Door || k == core.Corridor
}

// disconnectedRooms maps every room to its connected region and reports the
// indices of rooms outside the region holding the most rooms. A room whose
// rectangle retained no passable cell counts as disconnected too.
func (b *builder) disconnectedRooms() []int {
	if len(b.rooms) == 0 {
		return nil
	}

	regions := core.Regions(b.g, passable)
	if len(regions) == 0 {
		all := make([]int, len(b.rooms))
		for i := range all {
			all[i] = i
		}
		return all
	}

	cellRegion := make(map[core.Point]int)
	for i, region := range regions {
		for _, p := range region {
			cellRegion[p] = i
		}
	}

	// First passable cell in row-major order decides a room's region.
	roomRegion := make([]int, len(b.rooms))
	tally := make([]int, len(regions))
	for i, room := range b.rooms {
		roomRegion[i] = -1
	cells:
		for y := room.Y; y < room.YMax(); y++ {
			for x := room.X; x < room.XMax(); x++ {
				if r, ok := cellRegion[core.Point{X: x, Y: y}]; ok {
					roomRegion[i] = r
					tally[r]++
					break cells
				}
			}
		}
	}

	// Ties keep the lowest region index, which is fixed by scan order.
	main := 0
	for r, n := range tally {
		if n > tally[main] {
			main = r
		}
	}

	var out []int
	for i, r := range roomRegion {
		if r != main {
			out = append(out, i)
		}
	}
	return out
}
