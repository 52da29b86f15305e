// Per-generation diagnostics, collected when Options.TrackStats is set.
package genetic

import "gonum.org/v1/gonum/stat"

// generationStats converts a fitness vector into tour-length statistics.
// Fitness is negated length, so lengths are recovered by sign flip.
//
// Complexity: O(M) time, O(M) space.
func generationStats(fitness []float64) GenerationStats {
	var (
		lengths = make([]float64, len(fitness))
		best    = -fitness[0]
		i       int
	)
	for i = 0; i < len(fitness); i++ {
		lengths[i] = -fitness[i]
		if lengths[i] < best {
			best = lengths[i]
		}
	}

	var sd float64
	if len(lengths) > 1 {
		sd = stat.StdDev(lengths, nil)
	}

	return GenerationStats{
		Best:   best,
		Mean:   stat.Mean(lengths, nil),
		StdDev: sd,
	}
}
