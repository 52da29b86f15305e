// Population construction and shape validation.
package genetic

import "math/rand"

// randomPopulation returns count independent uniformly random permutations
// of 0..n-1, drawn from rng. Each tour is a fresh slice.
//
// Complexity: O(count·N) time and space.
func randomPopulation(n, count int, rng *rand.Rand) Population {
	pop := make(Population, count)
	var i int
	for i = 0; i < count; i++ {
		pop[i] = rng.Perm(n)
	}
	return pop
}

// validatePopulation checks that every tour in pop is a permutation of
// 0..n-1. Used by the optional per-generation invariant check.
//
// Complexity: O(M·N) time, O(N) space.
func validatePopulation(pop Population, n int) error {
	var i int
	for i = 0; i < len(pop); i++ {
		if err := ValidatePermutation(pop[i], n); err != nil {
			return err
		}
	}
	return nil
}

// gather returns the tours of pop selected by idx, in idx order. The
// returned Population aliases the selected tours; callers that mutate must
// copy first (mutate does).
//
// Complexity: O(len(idx)) time and space.
func gather(pop Population, idx []int) Population {
	out := make(Population, len(idx))
	var i int
	for i = 0; i < len(idx); i++ {
		out[i] = pop[idx[i]]
	}
	return out
}
