// Duels and tournament seeding — the selection side of the search.
//
// The duel is the ONLY replacement rule in this package: elementwise, the
// fitter of two competing tours survives, with ties keeping the first
// argument. Worse tours are never accepted, so the best fitness in a
// population is monotonically non-decreasing across generations.
package genetic

import "math/rand"

// duel compares popA and popB elementwise and returns the winners with
// their fitness. Fitness vectors may be nil, in which case they are
// evaluated here. The strict less-than comparison means a B tour replaces
// its A counterpart only when A's fitness is strictly lower: exact ties
// keep A.
//
// Guarantee: out fitness[i] == max(fitA[i], fitB[i]) for every i.
//
// The returned Population aliases the winning tours — tours are never
// mutated in place after creation, so sharing is safe.
//
// Complexity: O(M·N) when fitness is missing, O(M) otherwise.
func duel(d []float64, n int, popA, popB Population, fitA, fitB []float64) (Population, []float64) {
	if fitA == nil {
		fitA = evaluateFitness(d, n, popA)
	}
	if fitB == nil {
		fitB = evaluateFitness(d, n, popB)
	}

	var (
		m      = len(popA)
		out    = make(Population, m)
		outFit = make([]float64, m)
		i      int
	)
	for i = 0; i < m; i++ {
		if fitA[i] < fitB[i] {
			out[i] = popB[i]
			outFit[i] = fitB[i]
		} else {
			out[i] = popA[i]
			outFit[i] = fitA[i]
		}
	}
	return out, outFit
}

// seedTournament builds generation 0: bracket random populations of size m
// are reduced by elementwise duels in a single-elimination bracket (adjacent
// pairing, halving each round) until one quality-filtered population
// remains. bracket must be a power of two; bracket==1 degenerates to a
// single random population.
//
// Returns the surviving population and its fitness.
//
// Complexity: O(bracket·M·N) time, O(bracket·M·N) transient space.
func seedTournament(d []float64, n, m, bracket int, rng *rand.Rand) (Population, []float64) {
	var (
		pops = make([]Population, bracket)
		fits = make([][]float64, bracket)
		i    int
	)
	for i = 0; i < bracket; i++ {
		pops[i] = randomPopulation(n, m, rng)
		fits[i] = evaluateFitness(d, n, pops[i])
	}

	// Single-elimination rounds: survivors halve until one remains.
	for len(pops) > 1 {
		var (
			half     = len(pops) / 2
			nextPops = make([]Population, half)
			nextFits = make([][]float64, half)
		)
		for i = 0; i < half; i++ {
			nextPops[i], nextFits[i] = duel(d, n, pops[2*i], pops[2*i+1], fits[2*i], fits[2*i+1])
		}
		pops = nextPops
		fits = nextFits
	}
	return pops[0], fits[0]
}
