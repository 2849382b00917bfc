package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChaoticInit_WithinBounds verifies every seeded candidate lands
// inside the declared search space.
func TestChaoticInit_WithinBounds(t *testing.T) {
	b := Bounds{Min: []float64{-3, 0}, Max: []float64{3, 100}}
	pop := chaoticInit(rngFromSeed(5), 50, b)
	require.Len(t, pop, 50)

	for i, c := range pop {
		for d := range c.pos {
			assert.GreaterOrEqual(t, c.pos[d], b.Min[d], "candidate %d dim %d", i, d)
			assert.LessOrEqual(t, c.pos[d], b.Max[d], "candidate %d dim %d", i, d)
		}
	}
}

// TestChaoticInit_Diversity checks the logistic orbit spreads candidates
// across the space: every quartile of each dimension gets visitors.
func TestChaoticInit_Diversity(t *testing.T) {
	b := UniformBounds(1, 0, 1)
	pop := chaoticInit(rngFromSeed(9), 200, b)

	var quartile [4]int
	for _, c := range pop {
		q := int(c.pos[0] * 4)
		if q == 4 {
			q = 3
		}
		quartile[q]++
	}
	for q, n := range quartile {
		assert.Greater(t, n, 0, "quartile %d never visited", q)
	}
}

// TestChaoticSeed_AvoidsFixedPoints ensures no seed collapses the orbit.
func TestChaoticSeed_AvoidsFixedPoints(t *testing.T) {
	rng := rngFromSeed(1)
	for i := 0; i < 1000; i++ {
		x := chaoticSeed(rng)
		assert.Greater(t, x, 0.0)
		assert.Less(t, x, 1.0)
		for _, fixed := range []float64{0.25, 0.5, 0.75} {
			assert.NotEqual(t, fixed, x)
		}
	}
}

// TestDeriveRNG_IndependentStreams verifies sibling streams diverge.
func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := rngFromSeed(42)
	a := deriveRNG(base, 1)
	b := deriveRNG(base, 2)
	assert.NotEqual(t, a.Int63(), b.Int63(), "streams must decorrelate")
}
