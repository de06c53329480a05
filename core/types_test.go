// File: core/types_test.go
package core

import "testing"

// TestTileKind_String covers every declared kind plus an out-of-range value.
func TestTileKind_String(t *testing.T) {
	cases := map[TileKind]string{
		Empty:    "Empty",
		Wall:     "Wall",
		Floor:    "Floor",
		Door:     "Door",
		Corridor: "Corridor",
		Grass:    "Grass",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("TileKind(%d).String() = %q; want %q", int(k), got, want)
		}
	}
	if got := TileKind(42).String(); got != "TileKind(42)" {
		t.Errorf("out-of-range String() = %q; want TileKind(42)", got)
	}
}

// TestTileKind_IsValid checks the declared range and both out-of-range sides.
func TestTileKind_IsValid(t *testing.T) {
	for k := Empty; k <= Grass; k++ {
		if !k.IsValid() {
			t.Errorf("TileKind(%d).IsValid() = false; want true", int(k))
		}
	}
	if TileKind(-1).IsValid() {
		t.Error("TileKind(-1).IsValid() = true; want false")
	}
	if TileKind(6).IsValid() {
		t.Error("TileKind(6).IsValid() = true; want false")
	}
}

// TestRect_Accessors verifies the exclusive maxima and emptiness checks.
func TestRect_Accessors(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	if r.XMax() != 6 {
		t.Errorf("XMax() = %d; want 6", r.XMax())
	}
	if r.YMax() != 8 {
		t.Errorf("YMax() = %d; want 8", r.YMax())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a 4x5 rect")
	}
	if !(Rect{X: 0, Y: 0, W: 0, H: 5}).IsEmpty() {
		t.Error("IsEmpty() = false for zero width")
	}
	if !(Rect{X: 0, Y: 0, W: 5, H: -1}).IsEmpty() {
		t.Error("IsEmpty() = false for negative height")
	}
}

// TestRect_Contains exercises the half-open boundary on all four sides.
func TestRect_Contains(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 3, H: 2} // covers x∈[1,4), y∈[1,3)
	in := []Point{{1, 1}, {3, 1}, {1, 2}, {3, 2}, {2, 1}}
	for _, p := range in {
		if !r.Contains(p) {
			t.Errorf("Contains(%s) = false; want true", p)
		}
	}
	out := []Point{{0, 1}, {4, 1}, {1, 0}, {1, 3}, {4, 3}}
	for _, p := range out {
		if r.Contains(p) {
			t.Errorf("Contains(%s) = true; want false", p)
		}
	}
}

// TestRect_Inset checks symmetric shrinking and the over-inset degeneracy.
func TestRect_Inset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 8}
	got := r.Inset(2)
	want := Rect{X: 2, Y: 2, W: 6, H: 4}
	if got != want {
		t.Errorf("Inset(2) = %s; want %s", got, want)
	}
	if !r.Inset(5).IsEmpty() {
		t.Errorf("Inset(5) = %s; want an empty rect", r.Inset(5))
	}
}

// TestStringers pins the rendered forms used in panic messages and dumps.
func TestStringers(t *testing.T) {
	if got := (Point{X: 4, Y: -2}).String(); got != "(4,-2)" {
		t.Errorf("Point.String() = %q; want (4,-2)", got)
	}
	if got := (Rect{X: 1, Y: 2, W: 3, H: 4}).String(); got != "[1,2 3x4]" {
		t.Errorf("Rect.String() = %q; want [1,2 3x4]", got)
	}
}
