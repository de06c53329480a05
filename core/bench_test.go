// File: core/bench_test.go
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgen/core"
)

// BenchmarkRegions measures region labelling on a randomly speckled
// 1000×1000 grid where roughly half the cells are passable.
// Complexity: O(W×H×4)
func BenchmarkRegions(b *testing.B) {
	const n = 1000
	// Setup: deterministic random field
	r := rand.New(rand.NewSource(42))
	g, err := core.NewGrid(core.Rect{W: n, H: n})
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if r.Intn(2) == 0 {
				g.Set(core.Point{X: x, Y: y}, core.Floor)
			} else {
				g.Set(core.Point{X: x, Y: y}, core.Wall)
			}
		}
	}
	passable := func(k core.TileKind) bool { return k == core.Floor }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Regions(g, passable)
	}
}

// BenchmarkGrid_FillRect measures the raster stamp over a 512×512 block.
func BenchmarkGrid_FillRect(b *testing.B) {
	g, err := core.NewGrid(core.Rect{W: 512, H: 512})
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	block := core.Rect{X: 0, Y: 0, W: 512, H: 512}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.FillRect(block, core.Floor)
	}
}
