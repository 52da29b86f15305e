// Package genetic_test provides lightweight helpers shared across the
// *_test.go files in this package: deterministic synthetic instances and
// small option presets sized to finish quickly on CI.
package genetic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/distmat"
	"github.com/katalvlaran/gatsp/genetic"
)

const (
	// seedDet is the deterministic seed used across tests.
	seedDet = int64(42)

	// epsSum is the tolerance for comparing sums of stabilized edge costs.
	epsSum = 1e-9
)

// unitSquare returns the Euclidean matrix of the unit square
// (0,0),(1,0),(1,1),(0,1). The optimal round trip has length 4 and visits
// the corners in perimeter order.
func unitSquare(t *testing.T) *distmat.Matrix {
	t.Helper()
	m, err := distmat.FromCoordinates([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	return m
}

// circleDist returns an n-point instance with cyclic hop distances
// dist(i,j) = min(|i-j|, n-|i-j|). The optimal round trip has length n.
func circleDist(t *testing.T, n int) *distmat.Matrix {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows {
			d := math.Abs(float64(i - j))
			rows[i][j] = math.Min(d, float64(n)-d)
		}
	}
	m, err := distmat.New(rows)
	require.NoError(t, err)
	return m
}

// smallOptions returns the defaults shrunk to CI-friendly sizes: the tuned
// production knobs (population 200, window 10000) are far larger than tiny
// instances need.
func smallOptions(opts ...genetic.Option) genetic.Options {
	base := []genetic.Option{
		genetic.WithPopulationSize(40),
		genetic.WithMaxGenerations(2000),
		genetic.WithStagnationWindow(200),
		genetic.WithSeed(seedDet),
		genetic.WithRuns(1),
		genetic.WithWorkers(1),
	}
	return genetic.DefaultOptions(append(base, opts...)...)
}

// requirePermutation fails the test unless tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, genetic.ValidatePermutation(tour, n))
}

// multiset returns the value counts of a tour, for multiset comparisons that
// ignore order.
func multiset(tour []int) map[int]int {
	out := make(map[int]int, len(tour))
	for _, v := range tour {
		out[v]++
	}
	return out
}
