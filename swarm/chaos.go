// Package swarm - chaotic population seeding via the logistic map.
package swarm

import (
	"math"
	"math/rand"
)

// logisticR is the logistic-map parameter; 4.0 sits in the fully chaotic
// regime where orbits fill (0,1) densely.
const logisticR = 4.0

// candidate is one population member. Personal-best fields serve the
// particle-swarm rule; the jellyfish rule reads only pos and fit.
type candidate struct {
	pos     []float64
	vel     []float64
	fit     float64
	bestPos []float64
	bestFit float64
}

// chaoticSeed draws a starting value in (0,1) away from the logistic
// map's fixed and short-period points {0, 0.25, 0.5, 0.75, 1}, which
// would collapse the chaotic orbit.
//
// Complexity: O(1) expected.
func chaoticSeed(rng *rand.Rand) float64 {
	for {
		x := rng.Float64()
		if x <= 0 || x >= 1 {
			continue
		}
		ok := true
		for _, fixed := range [...]float64{0.25, 0.5, 0.75} {
			if math.Abs(x-fixed) < 1e-9 {
				ok = false
				break
			}
		}
		if ok {
			return x
		}
	}
}

// chaoticInit seeds n candidates across bounds b. Each dimension runs
// its own logistic chain x ← 4·x·(1−x) from a seeded perturbation;
// consecutive candidates take consecutive orbit points, linearly
// rescaled into [Min[d], Max[d]]. The chaotic orbit visits the unit
// interval more evenly than independent uniform draws, which is exactly
// the early-diversity property the minimizers want.
//
// Complexity: O(n·dims) time and space.
func chaoticInit(rng *rand.Rand, n int, b Bounds) []*candidate {
	dims := b.Dims()

	// One chain per dimension keeps coordinates decorrelated.
	chain := make([]float64, dims)
	for d := range chain {
		chain[d] = chaoticSeed(rng)
	}

	pop := make([]*candidate, n)
	for i := 0; i < n; i++ {
		c := &candidate{
			pos:     make([]float64, dims),
			vel:     make([]float64, dims),
			bestPos: make([]float64, dims),
			bestFit: math.Inf(1),
		}
		for d := 0; d < dims; d++ {
			chain[d] = logisticR * chain[d] * (1 - chain[d])
			c.pos[d] = b.Min[d] + chain[d]*(b.Max[d]-b.Min[d])
		}
		pop[i] = c
	}

	return pop
}
