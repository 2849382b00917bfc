// Package swarm - the jellyfish-search move rule.
package swarm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// jellyfishMove applies one jellyfish-search iteration.
//
// The time control c(t) = |(1 − t/T)·(2r−1)| decays with the iteration
// index, shifting the swarm from exploration toward exploitation:
//
//   - c(t) ≥ 0.5 — ocean current: drift toward the best position biased
//     against Beta·r times the population mean.
//   - otherwise, with probability 1−c(t) — active motion: move toward a
//     random peer when the peer is fitter, away from it when not.
//   - otherwise — passive motion: a Gamma-scaled perturbation
//     proportional to the bounds span.
//
// Fitness comparisons read the values stored by the previous driver
// evaluation; the driver clamps and re-evaluates after this call.
//
// Complexity: O(Population · dims).
func jellyfishMove(rng *rand.Rand, iter, total int, pop []*candidate, best []float64, b Bounds, o Options) {
	dims := b.Dims()

	// Population mean, needed by the ocean-current drift.
	mean := make([]float64, dims)
	for _, c := range pop {
		floats.Add(mean, c.pos)
	}
	floats.Scale(1/float64(len(pop)), mean)

	decay := 1 - float64(iter)/float64(total)
	step := make([]float64, dims)

	for i, c := range pop {
		ct := math.Abs(decay * (2*rng.Float64() - 1))

		switch {
		case ct >= 0.5:
			// Ocean current: step = best − Beta·r·mean, applied with a
			// fresh random magnitude.
			floats.ScaleTo(step, -o.Beta*rng.Float64(), mean)
			floats.Add(step, best)
			floats.AddScaled(c.pos, rng.Float64(), step)

		case rng.Float64() > 1-ct:
			// Passive motion inside the swarm.
			for d := 0; d < dims; d++ {
				c.pos[d] += o.Gamma * rng.Float64() * (b.Max[d] - b.Min[d])
			}

		default:
			// Active motion relative to a random peer.
			j := rng.Intn(len(pop))
			if j == i {
				j = (j + 1) % len(pop)
			}
			if pop[j].fit < c.fit {
				floats.SubTo(step, pop[j].pos, c.pos) // toward the fitter peer
			} else {
				floats.SubTo(step, c.pos, pop[j].pos) // away from the weaker peer
			}
			floats.AddScaled(c.pos, rng.Float64(), step)
		}
	}
}
