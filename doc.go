// Package gatsp is a small, deterministic toolkit for solving the round-trip
// Traveling Salesman Problem with an evolutionary (genetic) search.
//
// 🚀 What is gatsp?
//
//	A pure-Go library that takes an N×N travel-cost matrix and returns the
//	shortest round trip it can find, visiting every location exactly once
//	and returning to the start:
//		• distmat/  — immutable, validated distance matrices
//		• genetic/  — the population-based optimizer (tournament seeding,
//		  swap mutation, order-preserving recombination, elementwise duels,
//		  stagnation detection, multi-run driver)
//
// ✨ Why choose gatsp?
//
//   - Deterministic – every random draw flows from one seed; same seed,
//     same tour, on every platform
//   - Explicit configuration – a validated Options struct with named
//     fields and sensible defaults; no hidden tunables
//   - Strict invariants – tours are always permutations, matrices are
//     immutable after construction, errors are sentinel values
//
// The library performs no I/O: acquiring coordinates or travel costs from
// a mapping service, and rendering the resulting route, are the caller's
// concern. Feed it a matrix, read back the tour, its total length and the
// per-segment lengths.
//
// Quick sketch:
//
//	m, _ := distmat.New(costs)            // N×N, validated
//	opt := genetic.DefaultOptions()       // explicit, overridable
//	res, _ := genetic.Solve(m, opt)       // R independent runs, best kept
//	fmt.Println(res.Tour, res.Length)     // canonical cycle + its length
//
//	go get github.com/katalvlaran/gatsp
package gatsp
