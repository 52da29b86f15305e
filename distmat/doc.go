// Package distmat provides immutable, validated distance matrices for
// round-trip route optimization.
//
// A Matrix is an N×N table of non-negative travel costs: entry (i,j) is the
// cost of traveling directly from location i to location j. Symmetry is NOT
// required — asymmetric instances (one-way streets, directional penalties)
// are first-class.
//
// Validation happens once, at construction:
//   - the input must be square with N ≥ 2 (ErrNonSquare / ErrDimensionMismatch),
//   - every entry must be a finite, non-negative float64 (ErrBadValue,
//     ErrNegativeWeight),
//   - the diagonal must be zero within a structural tolerance
//     (ErrNonZeroDiagonal).
//
// Entries are copied and stabilized to 1e-9 absolute precision so that
// downstream exact-equality comparisons (e.g. stagnation detection in a
// search loop) are safe across platforms.
//
// After construction a Matrix is never mutated; all accessors either return
// scalars or fresh copies.
package distmat
