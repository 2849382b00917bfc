// Package swarm - the particle-swarm move rule.
package swarm

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// psoMove applies one standard particle-swarm iteration:
//
//	v ← w·v + c1·r1·(pbest − x) + c2·r2·(gbest − x)
//	x ← x + v
//
// with r1, r2 fresh uniform draws per candidate. Personal bests are
// maintained by the driver after re-evaluation; this rule only moves.
//
// Complexity: O(Population · dims).
func psoMove(rng *rand.Rand, _, _ int, pop []*candidate, best []float64, b Bounds, o Options) {
	step := make([]float64, b.Dims())

	for _, c := range pop {
		// Inertia keeps a fraction of the previous velocity.
		floats.Scale(o.Inertia, c.vel)

		// Cognitive pull toward the candidate's personal best.
		floats.SubTo(step, c.bestPos, c.pos)
		floats.AddScaled(c.vel, o.Cognitive*rng.Float64(), step)

		// Social pull toward the global best.
		floats.SubTo(step, best, c.pos)
		floats.AddScaled(c.vel, o.Social*rng.Float64(), step)

		floats.Add(c.pos, c.vel)
	}
}
