package swarm_test

import (
	"testing"

	"github.com/katalvlaran/wsnsim/swarm"
)

// benchMinimize runs one full budget with the given move rule.
func benchMinimize(b *testing.B, algo swarm.Algo) {
	bounds := swarm.UniformBounds(10, -100, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := swarm.Minimize(sphere, bounds,
			swarm.WithAlgo(algo),
			swarm.WithSeed(int64(i)+1),
			swarm.WithIterations(100),
		); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMinimize_Jellyfish(b *testing.B) { benchMinimize(b, swarm.Jellyfish) }

func BenchmarkMinimize_ParticleSwarm(b *testing.B) { benchMinimize(b, swarm.ParticleSwarm) }
