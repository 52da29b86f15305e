// Tour utilities operating purely on index permutations, independent of any
// distance matrix. A tour here is an OPEN permutation of 0..N-1; the closing
// edge from the last node back to the first is implicit everywhere in this
// package.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(N) time for every helper; fresh slices returned, inputs never mutated.
package genetic

import "github.com/katalvlaran/gatsp/distmat"

// ValidatePermutation checks that tour is a permutation of {0..N-1} of
// length n: every node appears exactly once, no omissions, no duplicates.
//
// Complexity: O(N) time, O(N) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrInvalidPermutation
		}
		if seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}
	return nil
}

// RotateToStart returns a fresh copy of tour cyclically rotated so that
// start is its first element. Rotation does not change which edges the
// round trip traverses, so the tour's length is preserved.
//
// Complexity: O(N) time, O(N) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	var n = len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// Locate start inside the tour.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidPermutation
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	return out, nil
}

// EqualCyclic reports whether two open tours describe the same directed
// cycle, i.e. whether b is a cyclic rotation of a.
//
// Complexity: O(N) time.
func EqualCyclic(a, b []int) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	var (
		n = len(a)
		i int
		p = -1
	)
	// Find a[0] in b.
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// TourLength returns the total round-trip length of an open tour under dist,
// including the implicit closing edge. The tour must be a permutation of
// 0..Dim()-1.
//
// Complexity: O(N) time.
func TourLength(dist *distmat.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var n = dist.Dim()
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dist.At(tour[i], tour[i+1])
	}
	sum += dist.At(tour[n-1], tour[0])
	return round1e9(sum), nil
}

// EdgeCosts returns the per-edge lengths of an open tour in visiting order;
// the implicit closing edge is last. Summing the result yields the value
// reported by TourLength.
//
// Complexity: O(N) time, O(N) space.
func EdgeCosts(dist *distmat.Matrix, tour []int) ([]float64, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	var n = dist.Dim()
	if err := ValidatePermutation(tour, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	var i int
	for i = 0; i < n-1; i++ {
		out[i] = dist.At(tour[i], tour[i+1])
	}
	out[n-1] = dist.At(tour[n-1], tour[0])
	return out, nil
}

// copyTour returns an independent copy of the input tour.
//
// Complexity: O(N) time, O(N) space.
func copyTour(tour []int) []int {
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}
