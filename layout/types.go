// Package layout - tunable options, sentinel errors, and the Result type
// for dungeon generation.
package layout

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlgen/bsp"
	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/doorway"
)

// Sentinel errors surfaced by Build after option validation.
var (
	// ErrCorridorWidth is returned when the corridor width is negative.
	ErrCorridorWidth = errors.New("layout: corridor width must not be negative")

	// ErrRoomSize is returned when either room size floor is non-positive.
	// AdjustedMinRoomSize may exceed MinRoomSize: that tuning makes a
	// degraded subtree stop splitting instead of going corridor-less.
	ErrRoomSize = errors.New("layout: room size floors must be positive")

	// ErrSplitChance is returned when the early-stop chance leaves [0,1].
	ErrSplitChance = errors.New("layout: split chance must lie in [0,1]")

	// ErrMinIterations is returned when the warm-up node count is negative.
	ErrMinIterations = errors.New("layout: minimum iterations must not be negative")

	// ErrBufferMargin is returned when the margin between the map edge and
	// the partitioned area is below one cell; the outer wall ring needs it.
	ErrBufferMargin = errors.New("layout: buffer margin must be at least 1")

	// ErrBoundsTooSmall is returned when the bounds, after the buffer inset,
	// cannot host a single room of MinRoomSize.
	ErrBoundsTooSmall = errors.New("layout: bounds after buffer inset cannot host a room")
)

// Default option values. A zero Seed selects a fixed internal stream, so
// the no-options call is fully deterministic.
const (
	DefaultCorridorWidth       = 6
	DefaultMinRoomSize         = 10
	DefaultAdjustedMinRoomSize = 6
	DefaultSplitChance         = 0.25
	DefaultMinIterations       = 3
	DefaultBufferMargin        = 2
)

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds every knob of the generation pipeline. Values are validated
// once, at the start of Build.
type Options struct {
	// CorridorWidth is the band reserved between split halves, in cells.
	// Zero disables corridors from the start.
	CorridorWidth int

	// MinRoomSize floors both dimensions of rooms cut while corridors are
	// in play.
	MinRoomSize int

	// AdjustedMinRoomSize replaces MinRoomSize when a subtree runs out of
	// corridor space and degrades to wall-sharing rooms.
	AdjustedMinRoomSize int

	// SplitChance is the probability in [0,1] that a node stops splitting
	// once MinIterations constructions have happened.
	SplitChance float64

	// MinIterations delays early stopping until this many tree nodes exist,
	// which keeps tiny maps from collapsing into a single room.
	MinIterations int

	// BufferMargin is the untouched border, in cells, between the map edge
	// and the partitioned area. At least 1, so the outer wall ring fits.
	BufferMargin int

	// Seed drives the internal random stream. Zero selects a fixed default
	// seed; any other value is used verbatim.
	Seed int64

	// Rand, when non-nil, overrides Seed entirely. The stream is consumed
	// by the split walk first and door placement second.
	Rand *rand.Rand
}

// DefaultOptions returns the baseline configuration: six-cell corridors,
// ten-cell rooms degrading to six, a quarter stop chance gated behind three
// constructions, a two-cell border, and the fixed default stream.
func DefaultOptions() Options {
	return Options{
		CorridorWidth:       DefaultCorridorWidth,
		MinRoomSize:         DefaultMinRoomSize,
		AdjustedMinRoomSize: DefaultAdjustedMinRoomSize,
		SplitChance:         DefaultSplitChance,
		MinIterations:       DefaultMinIterations,
		BufferMargin:        DefaultBufferMargin,
		Seed:                0,
		Rand:                nil,
	}
}

// WithCorridorWidth sets the corridor band width in cells.
func WithCorridorWidth(w int) Option {
	return func(o *Options) { o.CorridorWidth = w }
}

// WithMinRoomSize sets the room dimension floor used while corridors are
// in play.
func WithMinRoomSize(s int) Option {
	return func(o *Options) { o.MinRoomSize = s }
}

// WithAdjustedMinRoomSize sets the relaxed floor used after a subtree
// degrades to corridor-less splitting.
func WithAdjustedMinRoomSize(s int) Option {
	return func(o *Options) { o.AdjustedMinRoomSize = s }
}

// WithSplitChance sets the early-stop probability in [0,1].
func WithSplitChance(p float64) Option {
	return func(o *Options) { o.SplitChance = p }
}

// WithMinIterations sets how many tree nodes must exist before the stop
// chance applies.
func WithMinIterations(n int) Option {
	return func(o *Options) { o.MinIterations = n }
}

// WithBufferMargin sets the untouched border around the partitioned area.
func WithBufferMargin(m int) Option {
	return func(o *Options) { o.BufferMargin = m }
}

// WithSeed fixes the random stream by seed. Zero keeps the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an external random stream, overriding Seed.
// A nil stream is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// Result is the outcome of one generation run.
type Result struct {
	// Grid holds the rasterized map, one TileKind per cell.
	Grid *core.Grid

	// Root is the partition tree the map was grown from.
	Root *bsp.Node

	// Rooms lists every leaf rectangle in pre-order; indices into this
	// slice identify rooms in Disconnected.
	Rooms []core.Rect

	// Doors lists every cut door in placement order.
	Doors []doorway.Door

	// Disconnected holds indices of rooms that cannot reach the largest
	// connected group of rooms, ascending. Empty when the whole level is
	// traversable.
	Disconnected []int
}
