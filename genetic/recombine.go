// Recombination operator: order-preserving crossover.
package genetic

import "math/rand"

// recombine produces one offspring per corresponding parent pair:
//
//  1. A contiguous segment of popA[i] — segLen nodes at a random start
//     offset in [0..N-segLen] — is copied into the same positions of the
//     offspring.
//  2. Every remaining position is filled left to right with the nodes of
//     popB[i] in their original relative order, skipping nodes the copied
//     segment already placed.
//
// Both parents are full permutations of 0..N-1, so the offspring contains
// exactly that node set: nothing is duplicated or dropped. Inputs are never
// modified; popA and popB must have equal length and tour size, with
// 1 ≤ segLen ≤ N.
//
// Complexity: O(M·N) time and space.
func recombine(popA, popB Population, segLen int, rng *rand.Rand) Population {
	var (
		out = make(Population, len(popA))
		i   int
	)
	for i = 0; i < len(popA); i++ {
		out[i] = spliceTours(popA[i], popB[i], segLen, rng)
	}
	return out
}

// spliceTours performs the order-preserving crossover for a single pair.
//
// Complexity: O(N) time and space.
func spliceTours(a, b []int, segLen int, rng *rand.Rand) []int {
	var (
		n     = len(a)
		start = rng.Intn(n - segLen + 1)
		child = make([]int, n)
		used  = make([]bool, n)
		i     int
	)

	// Stage 1: copy the parent-A segment verbatim.
	for i = start; i < start+segLen; i++ {
		child[i] = a[i]
		used[a[i]] = true
	}

	// Stage 2: fill the gaps with parent-B nodes in relative order.
	var pos = 0
	if start == 0 {
		pos = segLen
	}
	for i = 0; i < n; i++ {
		if used[b[i]] {
			continue
		}
		child[pos] = b[i]
		used[b[i]] = true
		pos++
		if pos == start {
			pos = start + segLen // jump over the copied segment
		}
	}
	return child
}
