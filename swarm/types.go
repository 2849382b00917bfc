// Package swarm - contracts, Options, and sentinel errors for minimizers.
package swarm

import "errors"

// Sentinel errors for optimizer configuration.
var (
	// ErrNilFitness indicates Minimize was called without a fitness function.
	ErrNilFitness = errors.New("swarm: nil fitness function")

	// ErrBadBounds indicates empty, length-mismatched, or inverted bounds.
	ErrBadBounds = errors.New("swarm: invalid search-space bounds")

	// ErrBadPopulation indicates a population size ≤ 0.
	ErrBadPopulation = errors.New("swarm: population size must be positive")

	// ErrBadIterations indicates an iteration budget ≤ 0.
	ErrBadIterations = errors.New("swarm: iteration budget must be positive")

	// ErrBadCoefficient indicates a negative move-rule coefficient.
	ErrBadCoefficient = errors.New("swarm: move-rule coefficient must be non-negative")

	// ErrUnknownAlgo indicates Options.Algo names no known move rule.
	ErrUnknownAlgo = errors.New("swarm: unknown algorithm")
)

// Fitness scores a candidate position; lower is better. Implementations
// must be pure, deterministic for identical inputs, and total over the
// declared bounds.
type Fitness func(x []float64) float64

// Bounds is the per-dimension search space: candidate x satisfies
// Min[d] ≤ x[d] ≤ Max[d] for every dimension d.
type Bounds struct {
	Min []float64
	Max []float64
}

// UniformBounds builds dims identical [lo, hi] dimensions.
//
// Complexity: O(dims).
func UniformBounds(dims int, lo, hi float64) Bounds {
	b := Bounds{Min: make([]float64, dims), Max: make([]float64, dims)}
	for d := 0; d < dims; d++ {
		b.Min[d] = lo
		b.Max[d] = hi
	}

	return b
}

// Dims returns the dimensionality of the search space.
func (b Bounds) Dims() int {
	return len(b.Min)
}

// Validate checks the bounds are non-empty, aligned, and non-inverted.
// Returns ErrBadBounds on any violation.
//
// Complexity: O(dims).
func (b Bounds) Validate() error {
	if len(b.Min) == 0 || len(b.Min) != len(b.Max) {
		return ErrBadBounds
	}
	for d := range b.Min {
		if !(b.Min[d] < b.Max[d]) { // also rejects NaN
			return ErrBadBounds
		}
	}

	return nil
}

// Clamp projects x back into the bounds in place.
//
// Complexity: O(dims).
func (b Bounds) Clamp(x []float64) {
	for d := range x {
		if x[d] < b.Min[d] {
			x[d] = b.Min[d]
		} else if x[d] > b.Max[d] {
			x[d] = b.Max[d]
		}
	}
}

// Algo selects the move rule driving the shared evaluate/update loop.
type Algo int

const (
	// Jellyfish selects the jellyfish-search move rule.
	Jellyfish Algo = iota

	// ParticleSwarm selects the inertia/cognitive/social velocity rule.
	ParticleSwarm
)

// Options configures a Minimize run. Use DefaultOptions and adjust via
// Option functions.
//
// Fields:
//
//	Algo        — move rule, Jellyfish or ParticleSwarm.
//	Population  — number of candidates (> 0).
//	Iterations  — fixed iteration budget (> 0); no early stop.
//	Seed        — RNG seed; 0 selects the fixed default stream.
//	Inertia     — PSO velocity retention w.
//	Cognitive   — PSO pull toward the personal best (c1).
//	Social      — PSO pull toward the global best (c2).
//	Beta        — jellyfish distribution coefficient (ocean current).
//	Gamma       — jellyfish passive-motion scale.
//	OnIteration — optional hook called after every iteration with the
//	              iteration index (1-based) and the global-best fitness.
type Options struct {
	Algo        Algo
	Population  int
	Iterations  int
	Seed        int64
	Inertia     float64
	Cognitive   float64
	Social      float64
	Beta        float64
	Gamma       float64
	OnIteration func(iter int, best float64)
}

// Option mutates Options before a run.
type Option func(*Options)

// WithAlgo selects the move rule.
func WithAlgo(a Algo) Option {
	return func(o *Options) { o.Algo = a }
}

// WithPopulation sets the candidate count.
func WithPopulation(n int) Option {
	return func(o *Options) { o.Population = n }
}

// WithIterations sets the fixed iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithSeed sets the RNG seed (0 ⇒ fixed default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPSOCoefficients sets inertia w and the cognitive/social pulls.
func WithPSOCoefficients(w, c1, c2 float64) Option {
	return func(o *Options) {
		o.Inertia = w
		o.Cognitive = c1
		o.Social = c2
	}
}

// WithJellyfishCoefficients sets the distribution coefficient beta and
// the passive-motion scale gamma.
func WithJellyfishCoefficients(beta, gamma float64) Option {
	return func(o *Options) {
		o.Beta = beta
		o.Gamma = gamma
	}
}

// WithIterationHook registers a per-iteration observer. The hook runs
// after the serialized best update, so the values it sees are final for
// that iteration.
func WithIterationHook(fn func(iter int, best float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// DefaultOptions returns the canonical setup: jellyfish search, 30
// candidates, 100 iterations, literature-standard coefficients
// (w=0.72, c1=c2=1.49; beta=3, gamma=0.1), default deterministic seed.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Algo:       Jellyfish,
		Population: 30,
		Iterations: 100,
		Seed:       0,
		Inertia:    0.72,
		Cognitive:  1.49,
		Social:     1.49,
		Beta:       3.0,
		Gamma:      0.1,
	}
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Population <= 0 {
		return ErrBadPopulation
	}
	if o.Iterations <= 0 {
		return ErrBadIterations
	}
	if o.Inertia < 0 || o.Cognitive < 0 || o.Social < 0 || o.Beta < 0 || o.Gamma < 0 {
		return ErrBadCoefficient
	}
	switch o.Algo {
	case Jellyfish, ParticleSwarm:
		// ok
	default:
		return ErrUnknownAlgo
	}

	return nil
}

// Result is the best candidate found within the iteration budget.
type Result struct {
	// Position is the best position; length equals Bounds.Dims().
	Position []float64

	// Fitness is the fitness at Position.
	Fitness float64
}
