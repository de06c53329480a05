// Package layout - deterministic RNG plumbing.
//
// All randomness of a run flows through a single *rand.Rand: the split walk
// consumes it first, door placement second. Same bounds, options, and seed
// therefore reproduce the same level bit for bit.
//
// Concurrency: math/rand.Rand is not goroutine-safe. Build never shares its
// stream, but callers passing WithRand must not use that stream elsewhere
// while Build runs.
package layout

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers leave Seed at zero.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 selects defaultRNGSeed; any other seed is used verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
