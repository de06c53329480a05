// Package core defines the tile primitives and the dense grid type shared
// by every lvlgen subpackage: TileKind, Point, Rect, and Grid.
//
// This file declares TileKind, Point, Rect, and the sentinel errors.
//
// Errors:
//
//	ErrEmptyBounds - grid requested over a rectangle with no cells.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core grid operations.
var (
	// ErrEmptyBounds indicates a grid was requested over a rectangle with no cells.
	ErrEmptyBounds = errors.New("core: bounds must have positive width and height")
)

// TileKind classifies the content of a single grid cell.
// The zero value is Empty, so a freshly allocated grid reads as "nothing drawn yet".
type TileKind int

const (
	// Empty marks a cell no draw pass has touched.
	Empty TileKind = iota
	// Wall marks an impassable boundary cell.
	Wall
	// Floor marks walkable room interior.
	Floor
	// Door marks an opening cut through a wall.
	Door
	// Corridor marks walkable connective tissue between rooms.
	Corridor
	// Grass marks open ground outside the built structure.
	Grass
)

// String returns the human-readable name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Door:
		return "Door"
	case Corridor:
		return "Corridor"
	case Grass:
		return "Grass"
	default:
		return fmt.Sprintf("TileKind(%d)", int(k))
	}
}

// IsValid reports whether k is one of the declared tile kinds.
func (k TileKind) IsValid() bool {
	return k >= Empty && k <= Grass
}

// Point is an absolute cell coordinate. It is a comparable value type and
// safe to use as a map or set key.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle anchored at its minimum corner, with
// width and height measured in cells. Rect is an immutable value: every
// method returns derived data and never mutates the receiver. Cell ranges
// are half-open, [X, XMax) × [Y, YMax).
type Rect struct {
	X, Y int // minimum corner
	W, H int // extent in cells
}

// XMax returns the exclusive upper X bound (X + W).
// Complexity: O(1).
func (r Rect) XMax() int { return r.X + r.W }

// YMax returns the exclusive upper Y bound (Y + H).
// Complexity: O(1).
func (r Rect) YMax() int { return r.Y + r.H }

// IsEmpty reports whether the rectangle contains no cells.
// Complexity: O(1).
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rectangle.
// Complexity: O(1).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.XMax() && p.Y >= r.Y && p.Y < r.YMax()
}

// Inset returns a copy of r shrunk by n cells on every side.
// Insetting past the middle yields an empty rectangle.
// Complexity: O(1).
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// String renders the rectangle as "[x,y wxh]".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}
