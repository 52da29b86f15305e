package genetic

import "errors"

// Sentinel errors returned by the genetic optimizer.
var (
	// ErrNilMatrix indicates that a nil *distmat.Matrix was supplied.
	ErrNilMatrix = errors.New("genetic: distance matrix is nil")

	// ErrBadPopulationSize indicates PopulationSize < 1.
	ErrBadPopulationSize = errors.New("genetic: PopulationSize must be at least 1")

	// ErrBadBracketSize indicates a BracketSize that is not a power of two ≥ 1.
	ErrBadBracketSize = errors.New("genetic: BracketSize must be a power of two ≥ 1")

	// ErrBadGenerationLimit indicates MaxGenerations < 1.
	ErrBadGenerationLimit = errors.New("genetic: MaxGenerations must be at least 1")

	// ErrBadStagnationWindow indicates StagnationWindow < 1.
	ErrBadStagnationWindow = errors.New("genetic: StagnationWindow must be at least 1")

	// ErrBadMutationSwaps indicates MutationSwaps < 1.
	ErrBadMutationSwaps = errors.New("genetic: MutationSwaps must be at least 1")

	// ErrBadSegmentLength indicates a SegmentLength outside [1..N-1]
	// (0 selects the default ⌊N/2⌋).
	ErrBadSegmentLength = errors.New("genetic: SegmentLength must be in [1..N-1]")

	// ErrBadRunCount indicates Runs < 1.
	ErrBadRunCount = errors.New("genetic: Runs must be at least 1")

	// ErrBadWorkerCount indicates Workers < 0.
	ErrBadWorkerCount = errors.New("genetic: Workers must be non-negative")

	// ErrStartOutOfRange indicates StartVertex outside [0..N-1].
	ErrStartOutOfRange = errors.New("genetic: StartVertex out of range")

	// ErrDimensionMismatch indicates a tour or population whose shape does
	// not match the matrix order N.
	ErrDimensionMismatch = errors.New("genetic: dimension mismatch")

	// ErrInvalidPermutation indicates a tour that is not a permutation of
	// 0..N-1. With intact operators this never occurs; seeing it means an
	// implementation bug, not a caller mistake.
	ErrInvalidPermutation = errors.New("genetic: tour is not a valid permutation")
)

// Population is an ordered batch of tours, each a permutation of 0..N-1.
// All tours in one Population reference the same N, and the batch size stays
// constant throughout a run.
type Population [][]int

// GenerationStats summarizes the tour-length distribution of one generation.
// Collected only when Options.TrackStats is enabled.
type GenerationStats struct {
	// Best is the minimum round-trip length in the generation.
	Best float64

	// Mean is the arithmetic mean of the round-trip lengths.
	Mean float64

	// StdDev is the corrected sample standard deviation of the lengths
	// (0 for single-tour populations).
	StdDev float64
}

// RunResult is the outcome of one generation-loop run.
type RunResult struct {
	// Best is the fittest tour found, as a permutation of 0..N-1 in the
	// orientation the search discovered (not canonicalized; see Solve).
	Best []int

	// BestFitness is Best's fitness: the negative of its round-trip length.
	BestFitness float64

	// Population is the final generation.
	Population Population

	// Fitness holds the final generation's fitness values, aligned with
	// Population.
	Fitness []float64

	// History records the best (minimum) round-trip length observed at each
	// generation, starting with generation 0. It is non-increasing.
	History []float64

	// Generations is the number of evolution steps performed (the seeded
	// generation 0 is not counted).
	Generations int

	// Converged reports whether the run stopped on the stagnation check
	// rather than the hard generation cap.
	Converged bool

	// Stats holds per-generation length statistics, aligned with History.
	// Nil unless Options.TrackStats is set.
	Stats []GenerationStats
}

// Result is the outcome of the multi-run driver.
type Result struct {
	// Tour is the globally best round trip across all runs, rotated so that
	// Options.StartVertex is its first element.
	Tour []int

	// Length is the total round-trip length of Tour.
	Length float64

	// Segments holds the per-edge lengths of Tour in visiting order; the
	// closing edge back to the start is last. Sums to Length.
	Segments []float64

	// Run is the winning run's full result.
	Run RunResult

	// RunLengths records each run's best round-trip length, in run order.
	RunLengths []float64
}
