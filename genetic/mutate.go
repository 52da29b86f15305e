// Mutation operator: random pairwise node swaps.
package genetic

import "math/rand"

// mutate returns a mutated copy of every tour in pop: swaps random
// transpositions per tour, each exchanging the nodes at two uniformly drawn
// positions (the positions may coincide, leaving the tour unchanged — same
// policy as drawing with replacement). Inputs are never modified.
//
// A transposition can neither duplicate nor drop a node, so the output is a
// valid permutation whenever the input is.
//
// Complexity: O(M·(N+swaps)) time, O(M·N) space.
func mutate(pop Population, swaps int, rng *rand.Rand) Population {
	var (
		out  = make(Population, len(pop))
		i, s int
		a, b int
	)
	for i = 0; i < len(pop); i++ {
		t := copyTour(pop[i])
		n := len(t)
		for s = 0; s < swaps; s++ {
			a = rng.Intn(n)
			b = rng.Intn(n)
			t[a], t[b] = t[b], t[a]
		}
		out[i] = t
	}
	return out
}
