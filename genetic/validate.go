// Validation of Options against a concrete problem instance.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - Unknown or inconsistent settings fail fast with sentinel errors from
//     types.go — no silent fallback to previous or default values.
//   - Malformed input is rejected before any generation runs.
package genetic

import "github.com/katalvlaran/gatsp/distmat"

// validateAll verifies opts against dist and returns the matrix order N on
// success. The matrix itself was validated at construction (square, finite,
// non-negative, zero diagonal); here only its presence and order matter.
//
// Complexity: O(1).
func validateAll(dist *distmat.Matrix, opts Options) (int, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var n = dist.Dim()

	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Instance-dependent checks.
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return 0, ErrStartOutOfRange
	}
	if opts.SegmentLength < 0 || opts.SegmentLength >= n {
		// 0 selects the default ⌊N/2⌋; anything else must leave at least
		// one position for the second parent's nodes.
		if opts.SegmentLength != 0 {
			return 0, ErrBadSegmentLength
		}
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing the matrix.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	if opts.PopulationSize < 1 {
		return ErrBadPopulationSize
	}
	if opts.BracketSize < 1 || opts.BracketSize&(opts.BracketSize-1) != 0 {
		return ErrBadBracketSize
	}
	if opts.MaxGenerations < 1 {
		return ErrBadGenerationLimit
	}
	if opts.StagnationWindow < 1 {
		return ErrBadStagnationWindow
	}
	if opts.MutationSwaps < 1 {
		return ErrBadMutationSwaps
	}
	if opts.Runs < 1 {
		return ErrBadRunCount
	}
	if opts.Workers < 0 {
		return ErrBadWorkerCount
	}
	return nil
}
