// Package swarm - the shared evaluate/update driver behind Minimize.
package swarm

import (
	"math"
	"math/rand"
)

// mover applies one iteration of a move rule to the whole population.
// It may read every candidate's pos/vel/fit and the global-best position,
// and mutates positions (and velocities) in place. Clamping and
// re-evaluation happen in the driver after the move.
type mover func(rng *rand.Rand, iter, total int, pop []*candidate, best []float64, b Bounds, o Options)

// Minimize searches bounds b for the position minimizing f, using the
// move rule selected by the options. It returns the best candidate found
// within the fixed iteration budget.
//
// Contracts:
//   - f must be pure, deterministic, and total over b.
//   - Same Seed ⇒ identical Result (Seed==0 ⇒ fixed default stream).
//   - The global-best fitness observed via OnIteration is non-increasing.
//
// Error Conditions:
//   - ErrNilFitness, ErrBadBounds, ErrBadPopulation, ErrBadIterations,
//     ErrBadCoefficient, ErrUnknownAlgo — all fail fast before any
//     fitness evaluation.
//
// Steps:
//  1. Validate fitness, bounds, and options.
//  2. Seed the population chaotically (independent RNG substream) and
//     evaluate every candidate once; take the initial global best.
//  3. Per iteration: apply the move rule, clamp each candidate into
//     bounds, re-evaluate, refresh personal bests, and fold candidate
//     improvements into the global best serially.
//  4. After the budget, return a copy of the global-best position.
//
// Complexity: O(Iterations · Population · (dims + cost of f)).
func Minimize(f Fitness, b Bounds, opts ...Option) (Result, error) {
	// 1. Fail-fast validation.
	if f == nil {
		return Result{}, ErrNilFitness
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	var move mover
	switch o.Algo {
	case Jellyfish:
		move = jellyfishMove
	case ParticleSwarm:
		move = psoMove
	}

	// 2. Chaotic seeding on a derived substream keeps the seeding orbit
	//    independent from the search stream.
	rng := rngFromSeed(o.Seed)
	pop := chaoticInit(deriveRNG(rng, 1), o.Population, b)

	dims := b.Dims()
	best := Result{Position: make([]float64, dims), Fitness: math.Inf(1)}
	for _, c := range pop {
		c.fit = f(c.pos)
		c.bestFit = c.fit
		copy(c.bestPos, c.pos)
		if c.fit < best.Fitness {
			best.Fitness = c.fit
			copy(best.Position, c.pos)
		}
	}

	// 3. Fixed-budget search loop.
	for iter := 1; iter <= o.Iterations; iter++ {
		move(rng, iter, o.Iterations, pop, best.Position, b, o)

		// Candidate evaluations are independent; the best update below
		// is the only serialized step.
		for _, c := range pop {
			b.Clamp(c.pos)
			c.fit = f(c.pos)
			if c.fit < c.bestFit {
				c.bestFit = c.fit
				copy(c.bestPos, c.pos)
			}
			if c.fit < best.Fitness {
				best.Fitness = c.fit
				copy(best.Position, c.pos)
			}
		}

		if o.OnIteration != nil {
			o.OnIteration(iter, best.Fitness)
		}
	}

	// 4. best.Position is already a private copy.
	return best, nil
}
