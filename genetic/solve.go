// Multi-run driver — independent restarts, global best, canonical output.
package genetic

import (
	"runtime"

	"github.com/alitto/pond"

	"github.com/katalvlaran/gatsp/distmat"
)

// Solve executes Options.Runs independent runs of the generation loop over
// dist and returns the globally best round trip.
//
// Each run draws from its own deterministic RNG substream: run 0 uses the
// configured seed verbatim (so Runs==1 reproduces Run exactly), later runs
// use SplitMix64-derived seeds. Runs share no mutable state and execute on
// a bounded worker pool when Workers permits — the result is identical
// regardless of scheduling.
//
// The winning tour is rotated so Options.StartVertex leads (rotation
// preserves which edges are traversed, hence the length), and its per-edge
// segment lengths are recomputed for reporting.
//
// Complexity: O(R·G·M·N) total work across runs.
func Solve(dist *distmat.Matrix, opts Options) (Result, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		d       = dist.Flatten()
		results = make([]RunResult, opts.Runs)
		errs    = make([]error, opts.Runs)
	)

	if workers := effectiveWorkers(opts); workers > 1 {
		// One task per run; per-run RNGs keep results schedule-independent.
		pool := pond.New(workers, opts.Runs)
		group := pool.Group()
		for i := range results {
			i := i
			group.Submit(func() {
				results[i], errs[i] = runLoop(d, n, opts, rngFromSeed(runSeed(opts.Seed, i)))
			})
		}
		group.Wait()
		pool.StopAndWait()
	} else {
		for i := range results {
			results[i], errs[i] = runLoop(d, n, opts, rngFromSeed(runSeed(opts.Seed, i)))
		}
	}
	for _, e := range errs {
		if e != nil {
			return Result{}, e
		}
	}

	// Keep the globally best run; strict comparison keeps the earliest run
	// on exact ties, so the winner is deterministic.
	var (
		winner     = 0
		runLengths = make([]float64, opts.Runs)
	)
	for i := range results {
		runLengths[i] = -results[i].BestFitness
		if results[i].BestFitness > results[winner].BestFitness {
			winner = i
		}
	}

	// Canonicalize: rotate so the configured start node leads.
	tour, err := RotateToStart(results[winner].Best, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:       tour,
		Length:     -results[winner].BestFitness,
		Segments:   edgeCosts(d, n, tour),
		Run:        results[winner],
		RunLengths: runLengths,
	}, nil
}

// effectiveWorkers resolves Options.Workers: 0 selects min(NumCPU, Runs),
// and the result never exceeds the run count.
//
// Complexity: O(1).
func effectiveWorkers(opts Options) int {
	var w = opts.Workers
	if w == 0 {
		w = runtime.NumCPU()
	}
	if w > opts.Runs {
		w = opts.Runs
	}
	return w
}
