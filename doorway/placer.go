package doorway

import (
	"math/rand"

	"github.com/katalvlaran/lvlgen/core"
)

const (
	// spanCornerMargin trims the far end of a shared-wall span so a stitched
	// door never lands on the corner cells of either room ring.
	spanCornerMargin = 2

	// defaultRNGSeed seeds the fallback random stream when the caller
	// passes a nil *rand.Rand.
	defaultRNGSeed = 1
)

// scanSides fixes the order in which room walls are examined for corridor
// candidates. Candidate lists, and therefore placement under a fixed seed,
// depend on this order staying stable.
var scanSides = [4]Side{SideTop, SideBottom, SideLeft, SideRight}

// candidate is one wall cell eligible for a cut, with the room side it lies on.
type candidate struct {
	at   core.Point
	side Side
}

// placer encapsulates mutable door-placement state.
type placer struct {
	g     *core.Grid
	rooms []core.Rect
	rng   *rand.Rand

	withDoor []int // indices into rooms that already own a door
	pending  []int // indices into rooms still waiting for an opening
	doors    []Door
}

// PlaceDoors cuts door cells into the wall rings of rooms on g.
//
// Placement runs in two phases. First every room is scanned for wall cells
// whose outward neighbor is a corridor; one such cell, picked at random, is
// cut per room. Rooms without corridor contact stay pending. Second, pending
// rooms are stitched to door-owning neighbors through their shared wall,
// repeating until a full pass makes no progress.
//
// Placement is best-effort: a room that touches neither a corridor nor a
// door-owning neighbor simply receives no door, which is not an error.
// Callers that need to act on such rooms can diff the result against rooms.
//
// All randomness flows through rng; passing nil selects a fixed default
// stream. The same grid, rooms, and seed always yield the same doors.
// Returns ErrNilGrid when g is nil.
func PlaceDoors(g *core.Grid, rooms []core.Rect, rng *rand.Rand) ([]Door, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	w := &placer{
		g:     g,
		rooms: rooms,
		rng:   rng,
		doors: make([]Door, 0, len(rooms)),
	}
	w.carveCorridorDoors()
	w.stitchPendingRooms()
	return w.doors, nil
}

// carveCorridorDoors is the first phase: each room gets one door onto an
// adjacent corridor when its wall ring offers at least one candidate cell.
func (w *placer) carveCorridorDoors() {
	for i, room := range w.rooms {
		cands := w.corridorCandidates(room)
		if len(cands) == 0 {
			w.pending = append(w.pending, i)
			continue
		}
		pick := cands[w.rng.Intn(len(cands))]
		w.cut(pick.at, pick.side)
		w.withDoor = append(w.withDoor, i)
	}
}

// corridorCandidates collects wall cells of room whose outward neighbor is a
// corridor cell. The two cells nearest each corner are excluded so a cut
// never opens diagonally against a ring corner.
func (w *placer) corridorCandidates(room core.Rect) []candidate {
	var cands []candidate
	for _, side := range scanSides {
		switch side {
		case SideTop, SideBottom:
			y := room.Y - 1
			if side == SideBottom {
				y = room.YMax()
			}
			for x := room.X + spanCornerMargin; x < room.XMax()-spanCornerMargin; x++ {
				cands = w.appendCandidate(cands, core.Point{X: x, Y: y}, side)
			}
		case SideLeft, SideRight:
			x := room.X - 1
			if side == SideRight {
				x = room.XMax()
			}
			for y := room.Y + spanCornerMargin; y < room.YMax()-spanCornerMargin; y++ {
				cands = w.appendCandidate(cands, core.Point{X: x, Y: y}, side)
			}
		}
	}
	return cands
}

// appendCandidate adds at to cands when it is a wall cell backed by a
// corridor one step outward. Cells probing past the grid edge are skipped.
func (w *placer) appendCandidate(cands []candidate, at core.Point, side Side) []candidate {
	step := side.Outward()
	beyond := core.Point{X: at.X + step.X, Y: at.Y + step.Y}
	if !w.g.InBounds(at) || !w.g.InBounds(beyond) {
		return cands
	}
	if w.g.At(at) != core.Wall || w.g.At(beyond) != core.Corridor {
		return cands
	}
	return append(cands, candidate{at: at, side: side})
}

// stitchPendingRooms is the second phase: pending rooms are joined to
// door-owning neighbors through shared walls. Each successful cut moves the
// room into the door-owning pool and restarts the pass with both pools
// reshuffled, so a freshly stitched room can immediately host further cuts.
// The loop halts once a full pass places nothing.
func (w *placer) stitchPendingRooms() {
	progress := true
	for progress && len(w.pending) > 0 {
		progress = false
		w.shuffle(w.withDoor)
		w.shuffle(w.pending)
	scan:
		for i := len(w.withDoor) - 1; i >= 0; i-- {
			for j := len(w.pending) - 1; j >= 0; j-- {
				if !w.stitch(w.withDoor[i], w.pending[j]) {
					continue
				}
				w.withDoor = append(w.withDoor, w.pending[j])
				w.pending = append(w.pending[:j], w.pending[j+1:]...)
				progress = true
				break scan
			}
		}
	}
}

// stitch tries to cut one door between a door-owning room and a pending
// room. It succeeds only when the two rectangles touch along an edge with
// enough overlap to host a cut away from the ring corners. The recorded
// facing is relative to the pending room.
func (w *placer) stitch(owner, waiting int) bool {
	ra, rb := w.rooms[owner], w.rooms[waiting]

	// Vertical shared wall: rects touch along a column, spans overlap in y.
	if ra.XMax() == rb.X || rb.XMax() == ra.X {
		lo := max(ra.Y, rb.Y)
		hi := min(ra.YMax(), rb.YMax()) - spanCornerMargin
		if hi > lo {
			y := lo + w.rng.Intn(hi-lo)
			edge := ra.XMax()
			facing := SideLeft // pending room sits right of the wall
			if rb.XMax() == ra.X {
				edge = rb.XMax()
				facing = SideRight
			}
			a := core.Point{X: edge - 1, Y: y}
			b := core.Point{X: edge, Y: y}
			return w.cutSharedWall(a, b, facing)
		}
	}

	// Horizontal shared wall: rects touch along a row, spans overlap in x.
	if ra.YMax() == rb.Y || rb.YMax() == ra.Y {
		lo := max(ra.X, rb.X)
		hi := min(ra.XMax(), rb.XMax()) - spanCornerMargin
		if hi > lo {
			x := lo + w.rng.Intn(hi-lo)
			edge := ra.YMax()
			facing := SideTop // pending room sits below the wall
			if rb.YMax() == ra.Y {
				edge = rb.YMax()
				facing = SideBottom
			}
			a := core.Point{X: x, Y: edge - 1}
			b := core.Point{X: x, Y: edge}
			return w.cutSharedWall(a, b, facing)
		}
	}
	return false
}

// cutSharedWall probes the two cells straddling a shared edge and cuts the
// first one that still holds a wall. Draw order means the surviving wall may
// sit on either side of the touch line, so both cells are checked.
func (w *placer) cutSharedWall(a, b core.Point, facing Side) bool {
	for _, p := range [2]core.Point{a, b} {
		if w.g.InBounds(p) && w.g.At(p) == core.Wall {
			w.cut(p, facing)
			return true
		}
	}
	return false
}

// cut converts the wall cell at p into a door and records it. The cell is
// opened to Floor first and then stamped Door; only the final kind is
// observable on the grid.
func (w *placer) cut(p core.Point, facing Side) {
	w.g.Set(p, core.Floor)
	w.g.Set(p, core.Door)
	w.doors = append(w.doors, Door{Position: p, Facing: facing})
}

// shuffle permutes a in place using Fisher-Yates driven by the placer's
// random stream.
func (w *placer) shuffle(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := w.rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
