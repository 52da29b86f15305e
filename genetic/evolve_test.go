package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/distmat"
	"github.com/katalvlaran/gatsp/genetic"
)

// TestRun_UnitSquareConvergesExactly drives the search on the unit square:
// the optimum (the perimeter, length 4) is reachable within a handful of
// swaps from any start, so a CI-sized run finds it exactly.
func TestRun_UnitSquareConvergesExactly(t *testing.T) {
	m := unitSquare(t)
	res, err := genetic.Run(m, smallOptions())
	require.NoError(t, err)

	require.Equal(t, -4.0, res.BestFitness)
	requirePermutation(t, res.Best, 4)
	require.True(t, genetic.EqualCyclic(res.Best, []int{0, 1, 2, 3}) ||
		genetic.EqualCyclic(res.Best, []int{0, 3, 2, 1}),
		"best tour %v is not the perimeter", res.Best)
}

// TestRun_HistoryNonIncreasing pins the duel's global consequence: the best
// length can never get worse from one generation to the next.
func TestRun_HistoryNonIncreasing(t *testing.T) {
	m := circleDist(t, 12)
	res, err := genetic.Run(m, smallOptions(genetic.WithMaxGenerations(400)))
	require.NoError(t, err)

	require.NotEmpty(t, res.History)
	for i := 1; i < len(res.History); i++ {
		require.LessOrEqual(t, res.History[i], res.History[i-1],
			"history regressed at generation %d", i)
	}
	require.Equal(t, -res.BestFitness, res.History[len(res.History)-1])
}

// TestRun_StagnationStopsEarly checks the convergence rule on an instance
// the search solves immediately: N=3 has a single round trip up to rotation
// and direction, so the best length never changes and the run must stop
// after exactly StagnationWindow generations, converged.
func TestRun_StagnationStopsEarly(t *testing.T) {
	m := circleDist(t, 3)
	const window = 10

	res, err := genetic.Run(m, smallOptions(
		genetic.WithStagnationWindow(window),
		genetic.WithMaxGenerations(100000),
	))
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.Equal(t, window, res.Generations)
	require.Equal(t, -3.0, res.BestFitness)
}

// TestRun_HardCapHonored checks the other stop rule: with an unreachable
// window the run exhausts MaxGenerations and reports non-convergence.
func TestRun_HardCapHonored(t *testing.T) {
	m := circleDist(t, 10)
	const genCap = 25

	res, err := genetic.Run(m, smallOptions(
		genetic.WithMaxGenerations(genCap),
		genetic.WithStagnationWindow(1000),
	))
	require.NoError(t, err)

	require.False(t, res.Converged)
	require.Equal(t, genCap, res.Generations)
	require.Len(t, res.History, genCap+1) // generation 0 plus every step
}

// TestRun_Deterministic verifies full reproducibility for a fixed seed.
func TestRun_Deterministic(t *testing.T) {
	m := circleDist(t, 9)
	opts := smallOptions(genetic.WithMaxGenerations(150))

	a, err := genetic.Run(m, opts)
	require.NoError(t, err)
	b, err := genetic.Run(m, opts)
	require.NoError(t, err)

	require.Equal(t, a.Best, b.Best)
	require.Equal(t, a.BestFitness, b.BestFitness)
	require.Equal(t, a.History, b.History)
	require.Equal(t, a.Generations, b.Generations)
}

// TestRun_MutationOnly exercises the Recombine=false path.
func TestRun_MutationOnly(t *testing.T) {
	m := unitSquare(t)
	res, err := genetic.Run(m, smallOptions(genetic.WithRecombination(false)))
	require.NoError(t, err)
	require.Equal(t, -4.0, res.BestFitness)
}

// TestRun_InvariantChecksClean verifies that the optional offspring
// validation never fires with intact operators.
func TestRun_InvariantChecksClean(t *testing.T) {
	m := circleDist(t, 8)
	res, err := genetic.Run(m, smallOptions(
		genetic.WithMaxGenerations(100),
		genetic.WithInvariantChecks(),
	))
	require.NoError(t, err)
	requirePermutation(t, res.Best, 8)
}

// TestRun_DiagnosticsAligned checks that TrackStats produces one entry per
// history entry, with Best matching the history.
func TestRun_DiagnosticsAligned(t *testing.T) {
	m := circleDist(t, 8)
	res, err := genetic.Run(m, smallOptions(
		genetic.WithMaxGenerations(80),
		genetic.WithDiagnostics(),
	))
	require.NoError(t, err)

	require.Len(t, res.Stats, len(res.History))
	for i, s := range res.Stats {
		require.Equal(t, res.History[i], s.Best)
		require.GreaterOrEqual(t, s.Mean, s.Best)
		require.GreaterOrEqual(t, s.StdDev, 0.0)
	}
}

// TestRun_TinyInstances drives the degenerate sizes end to end.
func TestRun_TinyInstances(t *testing.T) {
	// N=2: one round trip, out and back.
	two, err := distmat.New([][]float64{{0, 5}, {5, 0}})
	require.NoError(t, err)
	res, err := genetic.Run(two, smallOptions(genetic.WithStagnationWindow(5)))
	require.NoError(t, err)
	require.Equal(t, -10.0, res.BestFitness)

	// N=3 with explicit segment length 1.
	res, err = genetic.Run(circleDist(t, 3), smallOptions(
		genetic.WithSegmentLength(1),
		genetic.WithStagnationWindow(5),
	))
	require.NoError(t, err)
	require.Equal(t, -3.0, res.BestFitness)
}

// TestRun_ValidationTable covers every rejection sentinel.
func TestRun_ValidationTable(t *testing.T) {
	m := circleDist(t, 6)

	cases := []struct {
		name string
		dist *distmat.Matrix
		opts genetic.Options
		want error
	}{
		{"nil matrix", nil, smallOptions(), genetic.ErrNilMatrix},
		{"population", m, smallOptions(genetic.WithPopulationSize(0)), genetic.ErrBadPopulationSize},
		{"bracket not power of two", m, smallOptions(genetic.WithBracketSize(3)), genetic.ErrBadBracketSize},
		{"bracket zero", m, smallOptions(genetic.WithBracketSize(0)), genetic.ErrBadBracketSize},
		{"generations", m, smallOptions(genetic.WithMaxGenerations(0)), genetic.ErrBadGenerationLimit},
		{"window", m, smallOptions(genetic.WithStagnationWindow(0)), genetic.ErrBadStagnationWindow},
		{"swaps", m, smallOptions(genetic.WithMutationSwaps(0)), genetic.ErrBadMutationSwaps},
		{"segment too long", m, smallOptions(genetic.WithSegmentLength(6)), genetic.ErrBadSegmentLength},
		{"segment negative", m, smallOptions(genetic.WithSegmentLength(-1)), genetic.ErrBadSegmentLength},
		{"runs", m, smallOptions(genetic.WithRuns(0)), genetic.ErrBadRunCount},
		{"workers", m, smallOptions(genetic.WithWorkers(-1)), genetic.ErrBadWorkerCount},
		{"start high", m, smallOptions(genetic.WithStartVertex(6)), genetic.ErrStartOutOfRange},
		{"start negative", m, smallOptions(genetic.WithStartVertex(-1)), genetic.ErrStartOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := genetic.Run(tc.dist, tc.opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestIsStagnant_Window checks the exact-equality window rule directly.
func TestIsStagnant_Window(t *testing.T) {
	require.True(t, genetic.ExportedIsStagnant([]float64{9, 5, 5, 5}, 3))
	require.False(t, genetic.ExportedIsStagnant([]float64{9, 6, 5, 5}, 3))
	require.True(t, genetic.ExportedIsStagnant([]float64{5}, 1))
	// Near-equal is not equal: the rule is bitwise.
	require.False(t, genetic.ExportedIsStagnant([]float64{5 + 1e-9, 5, 5}, 3))
}
