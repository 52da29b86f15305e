// Fitness evaluation shared by seeding, duels and the generation loop.
//
// Fitness of a tour is the NEGATIVE of its total round-trip length — the sum
// of matrix entries for consecutive node pairs, including the wrap-around
// edge from the last node back to the first. Higher fitness ⇒ shorter tour.
// Negating the length lets the selection operators maximize fitness while
// the caller minimizes distance.
//
// Rotating a tour changes only where the cycle is cut, not which edges it
// traverses, so fitness is invariant under cyclic rotation.
//
// Hot-path discipline: the loop functions index a flat row-major copy of the
// matrix ([u*n+v]) produced once per run via distmat.Matrix.Flatten, and the
// accumulated sum is stabilized to 1e-9 so repeated tours yield bit-identical
// fitness (the stagnation check compares exactly).
package genetic

import "math"

// roundScale controls fitness stabilization precision (1e-9).
const roundScale = 1e9

// tourFitness returns the fitness (negative round-trip length) of one open
// tour over the flat matrix d of order n.
//
// Complexity: O(N) time, O(1) space.
func tourFitness(d []float64, n int, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d[tour[i]*n+tour[i+1]]
	}
	sum += d[tour[n-1]*n+tour[0]]
	return -round1e9(sum)
}

// evaluateFitness returns one fitness value per tour in pop.
//
// Complexity: O(M·N) time, O(M) space.
func evaluateFitness(d []float64, n int, pop Population) []float64 {
	out := make([]float64, len(pop))
	var i int
	for i = 0; i < len(pop); i++ {
		out[i] = tourFitness(d, n, pop[i])
	}
	return out
}

// edgeCosts returns the per-edge lengths of one open tour in visiting order,
// closing edge last. This is the non-summed sibling of tourFitness, used to
// report individual segment lengths without re-deriving them from the total.
//
// Complexity: O(N) time, O(N) space.
func edgeCosts(d []float64, n int, tour []int) []float64 {
	out := make([]float64, n)
	var i int
	for i = 0; i < n-1; i++ {
		out[i] = d[tour[i]*n+tour[i+1]]
	}
	out[n-1] = d[tour[n-1]*n+tour[0]]
	return out
}

// bestOf returns the index and value of the maximum fitness. The first
// maximum wins on ties, keeping run results deterministic.
//
// Complexity: O(M) time.
func bestOf(fitness []float64) (int, float64) {
	var (
		bestIdx = 0
		best    = fitness[0]
		i       int
	)
	for i = 1; i < len(fitness); i++ {
		if fitness[i] > best {
			best = fitness[i]
			bestIdx = i
		}
	}
	return bestIdx, best
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
