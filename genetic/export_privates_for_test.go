package genetic

// Test bridge (white box) for unexported operators.
//
// Purpose:
//   - Expose the unexported search operators to genetic_test ONLY, so the
//     permutation/selection properties can be exercised directly without
//     widening the production API.
//
// Build policy:
//   - The _test.go suffix keeps this file out of production builds; it is
//     compiled only for the package's test binary.
//
// Behavior:
//   - Thin pass-throughs; deterministic; no side effects beyond the wrapped
//     functions.

var (
	// ExportedRandomPopulation exposes randomPopulation for white-box tests.
	ExportedRandomPopulation = randomPopulation
	// ExportedMutate exposes mutate for white-box tests.
	ExportedMutate = mutate
	// ExportedRecombine exposes recombine for white-box tests.
	ExportedRecombine = recombine
	// ExportedSpliceTours exposes spliceTours for white-box tests.
	ExportedSpliceTours = spliceTours
	// ExportedDuel exposes duel for white-box tests.
	ExportedDuel = duel
	// ExportedSeedTournament exposes seedTournament for white-box tests.
	ExportedSeedTournament = seedTournament
	// ExportedEvaluateFitness exposes evaluateFitness for white-box tests.
	ExportedEvaluateFitness = evaluateFitness
	// ExportedTourFitness exposes tourFitness for white-box tests.
	ExportedTourFitness = tourFitness
	// ExportedEdgeCosts exposes edgeCosts for white-box tests.
	ExportedEdgeCosts = edgeCosts
	// ExportedRngFromSeed exposes rngFromSeed for white-box tests.
	ExportedRngFromSeed = rngFromSeed
	// ExportedRunSeed exposes runSeed for white-box tests.
	ExportedRunSeed = runSeed
	// ExportedDeriveSeed exposes deriveSeed for white-box tests.
	ExportedDeriveSeed = deriveSeed
	// ExportedIsStagnant exposes isStagnant for white-box tests.
	ExportedIsStagnant = isStagnant
)
