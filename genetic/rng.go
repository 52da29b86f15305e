// RNG utilities shared by every stochastic operator in this package.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: SplitMix64-derived substreams keep parallel runs decorrelated.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each run owns its own *rand.Rand;
//     runSeed derives an independent stream per run index.
package genetic

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small input changes
// produce large, well-distributed output changes, which keeps per-run
// substreams uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// runSeed returns the seed for run index i of a multi-run drive.
// Run 0 uses the caller's seed verbatim so a single-run drive reproduces Run
// exactly; later runs use independent SplitMix64-derived substreams.
//
// Complexity: O(1).
func runSeed(seed int64, i int) int64 {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	if i == 0 {
		return s
	}
	return deriveSeed(s, uint64(i))
}

// shuffleToursInPlace performs an in-place Fisher–Yates shuffle of the
// population's tour order. Tour contents are untouched; only row positions
// move (used to break positional correlation before duels).
//
// Complexity: O(M) time, O(1) extra space.
func shuffleToursInPlace(pop Population, rng *rand.Rand) {
	var n = len(pop)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		pop[i], pop[j] = pop[j], pop[i]
	}
}

// sampleIndices returns k distinct indices drawn uniformly without
// replacement from [0..m-1], in random order.
//
// Complexity: O(m) time, O(m) space.
func sampleIndices(m, k int, rng *rand.Rand) []int {
	return rng.Perm(m)[:k]
}
