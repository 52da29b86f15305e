// Generation loop — one full run of the evolutionary search.
package genetic

import (
	"math/rand"

	"github.com/katalvlaran/gatsp/distmat"
)

// Run executes one run of the generation loop over dist:
//
//	Init: generation 0 is seeded by the tournament bracket and evaluated;
//	      the run history starts with its best length.
//	Step: an offspring population is produced — half mutants and half
//	      recombined children when Recombine is on (parents sampled without
//	      replacement), all mutants otherwise — shuffled to break positional
//	      correlation, then dueled elementwise against the UNMODIFIED
//	      incumbent generation. The duel's max property makes the best
//	      length non-increasing.
//	Stop: after StagnationWindow generations with an unchanged best length
//	      (exact comparison — fitness values are stabilized sums that repeat
//	      bit-identically), or at the MaxGenerations hard cap.
//
// Input problems (nil or too-small matrix, invalid Options) are rejected
// before any generation runs.
//
// Complexity: O(G·M·N) time for G executed generations, O(M·N) space.
func Run(dist *distmat.Matrix, opts Options) (RunResult, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return RunResult{}, err
	}
	return runLoop(dist.Flatten(), n, opts, rngFromSeed(opts.Seed))
}

// runLoop is the seeded core of Run; Solve drives it once per restart with
// an independent RNG stream. d is a flat row-major copy of the matrix.
func runLoop(d []float64, n int, opts Options, rng *rand.Rand) (RunResult, error) {
	var (
		m      = opts.PopulationSize
		segLen = opts.SegmentLength
	)
	if segLen == 0 {
		segLen = n / 2
	}
	if segLen >= n {
		segLen = n - 1 // N==2 with the default ⌊N/2⌋
	}

	// Init: tournament-seeded generation 0.
	pop, fit := seedTournament(d, n, m, opts.BracketSize, rng)

	var (
		_, bestFit = bestOf(fit)
		history    = make([]float64, 1, min(opts.MaxGenerations+1, 1024))
		stats      []GenerationStats
	)
	history[0] = -bestFit
	if opts.TrackStats {
		stats = append(stats, generationStats(fit))
	}

	// Operator group sizes are fixed for the whole run.
	var nMutate, nRecombine int
	if opts.Recombine {
		nMutate = m / 2
		nRecombine = m - nMutate
	} else {
		nMutate = m
	}

	var (
		gen       int
		converged bool
	)
	for gen = 1; gen <= opts.MaxGenerations; gen++ {
		// Produce the offspring population.
		var offspring Population
		if opts.Recombine {
			offspring = make(Population, 0, m)
			offspring = append(offspring, mutate(gather(pop, sampleIndices(m, nMutate, rng)), opts.MutationSwaps, rng)...)
			offspring = append(offspring, recombine(
				gather(pop, sampleIndices(m, nRecombine, rng)),
				gather(pop, sampleIndices(m, nRecombine, rng)),
				segLen, rng)...)
		} else {
			offspring = mutate(pop, opts.MutationSwaps, rng)
		}

		// Remove positional correlation before pairing with incumbents.
		shuffleToursInPlace(offspring, rng)

		if opts.CheckInvariants {
			if err := validatePopulation(offspring, n); err != nil {
				return RunResult{}, err
			}
		}

		// Duel against the unmodified generation-start snapshot.
		pop, fit = duel(d, n, pop, offspring, fit, nil)

		_, bestFit = bestOf(fit)
		history = append(history, -bestFit)
		if opts.TrackStats {
			stats = append(stats, generationStats(fit))
		}

		// Stagnation: best length unchanged across the whole window.
		if gen >= opts.StagnationWindow && isStagnant(history, opts.StagnationWindow) {
			converged = true
			break
		}
	}
	if gen > opts.MaxGenerations {
		gen = opts.MaxGenerations // loop exhausted the hard cap
	}

	bestIdx, bestFit := bestOf(fit)

	return RunResult{
		Best:        copyTour(pop[bestIdx]),
		BestFitness: bestFit,
		Population:  pop,
		Fitness:     fit,
		History:     history,
		Generations: gen,
		Converged:   converged,
		Stats:       stats,
	}, nil
}

// isStagnant reports whether the last window entries of history hold a
// single distinct value. History values repeat bit-identically once the
// best tour stops changing, so exact comparison is safe.
//
// Complexity: O(window) time.
func isStagnant(history []float64, window int) bool {
	var (
		last = len(history) - 1
		v    = history[last]
		i    int
	)
	for i = last - window + 1; i < last; i++ {
		if history[i] != v {
			return false
		}
	}
	return true
}
