// Package doorway - shared types and sentinel errors for door placement.
//
// Grid orientation: Y grows downward, matching row-major dumps where row 0
// prints first. SideTop is therefore the wall row above a room (Y-1) and
// SideBottom the row below it (YMax).
package doorway

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
)

// Sentinel errors for doorway operations.
var (
	// ErrNilGrid indicates PlaceDoors was handed a nil grid.
	ErrNilGrid = errors.New("doorway: grid must not be nil")
)

// Side names the wall of a room a door pierces, relative to that room.
type Side int

const (
	// SideTop is the wall row at Y-1, above the room.
	SideTop Side = iota
	// SideBottom is the wall row at YMax, below the room.
	SideBottom
	// SideLeft is the wall column at X-1.
	SideLeft
	// SideRight is the wall column at XMax.
	SideRight
)

// String returns the human-readable side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// IsValid reports whether s is one of the four declared sides.
func (s Side) IsValid() bool {
	return s >= SideTop && s <= SideRight
}

// Outward returns the unit step pointing away from a room through this
// side's wall.
func (s Side) Outward() core.Point {
	switch s {
	case SideTop:
		return core.Point{X: 0, Y: -1}
	case SideBottom:
		return core.Point{X: 0, Y: 1}
	case SideLeft:
		return core.Point{X: -1, Y: 0}
	case SideRight:
		return core.Point{X: 1, Y: 0}
	default:
		return core.Point{}
	}
}

// Door records one placed door: the wall cell that was cut and the side of
// its room the cut went through.
type Door struct {
	Position core.Point
	Facing   Side
}

// String renders the door as "(x,y)/Side" for logs and test failures.
func (d Door) String() string {
	return fmt.Sprintf("%s/%s", d.Position, d.Facing)
}
