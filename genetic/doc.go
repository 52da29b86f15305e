// Package genetic solves the round-trip Traveling Salesman Problem with a
// population-based evolutionary search over a precomputed distance matrix.
//
// Model:
//   - A tour is a permutation of the node indices 0..N-1; the trip closes
//     implicitly from the last node back to the first.
//   - Fitness of a tour is the NEGATIVE of its total round-trip length, so
//     maximizing fitness and minimizing distance coincide.
//   - A population is a fixed-size batch of tours evolved in lockstep.
//
// Operators (all deterministic under a fixed seed):
//   - Tournament seeding: a power-of-two bracket of random populations is
//     reduced by elementwise duels until one quality-filtered population
//     remains as generation 0.
//   - Mutation: a fixed number of random transpositions per tour.
//   - Recombination: order-preserving crossover — a contiguous segment of
//     one parent is spliced into the relative order of the other.
//   - Duel: elementwise selection keeping the fitter of two competing
//     tours; ties keep the incumbent. This is the only replacement rule,
//     so the best fitness never regresses.
//
// The generation loop (Run) alternates offspring production and duels until
// the best tour length has not changed for a configurable stagnation window
// or a hard generation cap is reached. The multi-run driver (Solve) repeats
// Run with independent deterministic substreams — optionally in parallel —
// keeps the global best, rotates it so the configured start node leads, and
// reports per-edge segment lengths.
//
// Design properties:
//   - Strict sentinels: configuration and input problems return errors from
//     types.go before any generation runs; no panics on user input.
//   - No logging, no I/O: diagnostics are returned as data (run history,
//     optional per-generation statistics).
//   - Permutation validity is an invariant of every operator; optional
//     per-generation checks (WithInvariantChecks) turn implementation bugs
//     into ErrInvalidPermutation instead of silent corruption.
//
// Use this package when you need a good round trip on instances far beyond
// exact-solver reach and can trade optimality guarantees for search time.
package genetic
