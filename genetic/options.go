package genetic

// Options configures the genetic optimizer. Construct with DefaultOptions
// and override fields directly or through the With* functional setters;
// every tunable is an explicit named field — there is no hidden state.
//
//	PopulationSize   – number of tours evolved in lockstep (constant per run).
//	BracketSize      – number of random populations entering the seeding
//	                   bracket; must be a power of two (1 disables the
//	                   bracket and seeds from a single random population).
//	MaxGenerations   – hard cap on evolution steps per run.
//	StagnationWindow – stop a run once the best length is unchanged for this
//	                   many consecutive generations.
//	MutationSwaps    – random transpositions applied per tour per mutation.
//	Recombine        – enable order-preserving crossover for half of each
//	                   offspring generation; when false, every offspring is
//	                   a mutant of the full population.
//	SegmentLength    – length of the parent-A segment copied during
//	                   recombination; 0 selects ⌊N/2⌋ at run time.
//	Runs             – independent restarts of the generation loop.
//	Seed             – random seed; 0 selects a fixed default so results
//	                   stay reproducible by default.
//	StartVertex      – node the reported tour is rotated to start from.
//	Workers          – concurrent runs in Solve; 0 selects min(NumCPU, Runs),
//	                   1 forces sequential execution.
//	TrackStats       – collect per-generation length statistics.
//	CheckInvariants  – validate every offspring tour each generation
//	                   (diagnostic; costs O(PopulationSize·N) per step).
type Options struct {
	PopulationSize   int   // tours per generation
	BracketSize      int   // seeding bracket width (power of two)
	MaxGenerations   int   // hard generation cap per run
	StagnationWindow int   // convergence window, in generations
	MutationSwaps    int   // transpositions per mutated tour
	Recombine        bool  // enable order-preserving crossover
	SegmentLength    int   // crossover segment length (0 ⇒ ⌊N/2⌋)
	Runs             int   // independent restarts
	Seed             int64 // RNG seed (0 ⇒ fixed default stream)
	StartVertex      int   // canonical start node of the reported tour
	Workers          int   // concurrent runs (0 ⇒ auto)
	TrackStats       bool  // collect GenerationStats
	CheckInvariants  bool  // validate offspring permutations each step
}

// Option represents a functional option for configuring the optimizer.
type Option func(*Options)

// WithPopulationSize sets the number of tours evolved per generation.
// Must be ≥ 1; invalid values are rejected by validation, not here.
func WithPopulationSize(m int) Option {
	return func(o *Options) { o.PopulationSize = m }
}

// WithBracketSize sets the seeding bracket width (a power of two).
func WithBracketSize(b int) Option {
	return func(o *Options) { o.BracketSize = b }
}

// WithMaxGenerations sets the hard cap on evolution steps per run.
func WithMaxGenerations(g int) Option {
	return func(o *Options) { o.MaxGenerations = g }
}

// WithStagnationWindow sets how many consecutive generations the best length
// must stay unchanged before a run is declared converged.
func WithStagnationWindow(w int) Option {
	return func(o *Options) { o.StagnationWindow = w }
}

// WithMutationSwaps sets the number of random transpositions applied to each
// tour per mutation.
func WithMutationSwaps(s int) Option {
	return func(o *Options) { o.MutationSwaps = s }
}

// WithRecombination toggles order-preserving crossover.
func WithRecombination(enabled bool) Option {
	return func(o *Options) { o.Recombine = enabled }
}

// WithSegmentLength sets the crossover segment length (0 ⇒ ⌊N/2⌋).
func WithSegmentLength(l int) Option {
	return func(o *Options) { o.SegmentLength = l }
}

// WithRuns sets the number of independent restarts.
func WithRuns(r int) Option {
	return func(o *Options) { o.Runs = r }
}

// WithSeed fixes the random seed (0 selects the default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithStartVertex sets the node the reported tour starts from.
func WithStartVertex(v int) Option {
	return func(o *Options) { o.StartVertex = v }
}

// WithWorkers bounds how many runs Solve executes concurrently.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithDiagnostics enables per-generation length statistics.
func WithDiagnostics() Option {
	return func(o *Options) { o.TrackStats = true }
}

// WithInvariantChecks enables per-generation permutation validation of every
// offspring tour. Intended for debugging operator changes; the operators
// themselves never produce invalid tours.
func WithInvariantChecks() Option {
	return func(o *Options) { o.CheckInvariants = true }
}

// DefaultOptions returns Options initialized with the tuned defaults:
// population 200, a 16-wide seeding bracket, a 500000-generation cap with a
// 10000-generation stagnation window, 2 swaps per mutation, recombination
// enabled with segment length ⌊N/2⌋, 3 runs, the fixed default seed, start
// node 0, automatic worker count, and no optional diagnostics.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		PopulationSize:   200,
		BracketSize:      16,
		MaxGenerations:   500000,
		StagnationWindow: 10000,
		MutationSwaps:    2,
		Recombine:        true,
		SegmentLength:    0,
		Runs:             3,
		Seed:             0,
		StartVertex:      0,
		Workers:          0,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
