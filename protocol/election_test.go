package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/protocol"
	"github.com/katalvlaran/wsnsim/swarm"
)

// TestProbabilistic_RotationFairness verifies the election guarantee:
// over one full rotation cycle (⌈1/p⌉ epochs) every surviving sensor
// serves as head at least once — the threshold reaches 1 at the last
// cycle position, sweeping in everyone still unserved.
func TestProbabilistic_RotationFairness(t *testing.T) {
	topo := uniformTopology(5, 100, 100, 11) // budgets far above a cycle's burn
	r, err := protocol.NewLEACH(topo, 1)     // p = 0.2 ⇒ 5-epoch cycle
	require.NoError(t, err)
	require.NoError(t, r.Initialize())

	for cycle := 0; cycle < 2; cycle++ {
		servedThisCycle := make(map[int]bool)
		for epoch := 0; epoch < 5; epoch++ {
			_, execErr := r.Execute()
			require.NoError(t, execErr)
			for _, h := range r.Heads() {
				servedThisCycle[h] = true
			}
		}
		for i := 1; i <= 5; i++ {
			assert.True(t, servedThisCycle[i],
				"sensor %d never served in cycle %d", i, cycle)
		}
	}
}

// TestProbabilistic_HeadsWereAliveAtElection across a full lifetime,
// every elected head is a non-sink node that was alive when its epoch
// began. Heads may die during the epoch they serve; they must never be
// elected dead.
func TestProbabilistic_HeadsWereAliveAtElection(t *testing.T) {
	r, err := protocol.NewLEACH(uniformTopology(8, 100, 0.01, 3), 2)
	require.NoError(t, err)
	require.NoError(t, r.Initialize())

	nodes := r.Nodes()
	deadBefore := make([]bool, len(nodes))
	for rounds := 0; rounds < 5000; rounds++ {
		sum, execErr := r.Execute()
		require.NoError(t, execErr)
		if sum.Alive == 0 {
			return
		}

		require.NotEmpty(t, r.Heads(), "a live network always elects or drafts a head")
		for _, h := range r.Heads() {
			assert.NotZero(t, h, "the sink must never head")
			assert.False(t, deadBefore[h], "round %d elected a dead head", sum.Round)
		}
		for i, n := range nodes {
			if !n.Alive() && n.Role != core.Sink {
				deadBefore[i] = true
			}
		}
	}
	t.Fatal("network did not terminate")
}

// TestOptimizer_ElectsDistinctHeads the optimizer returns exactly
// min(NClusters, alive) distinct alive sensors, ascending.
func TestOptimizer_ElectsDistinctHeads(t *testing.T) {
	r, err := protocol.NewOptimizedLEACH(uniformTopology(6, 100, 10, 21), 2,
		swarm.Jellyfish, swarm.WithPopulation(10), swarm.WithIterations(30))
	require.NoError(t, err)
	require.NoError(t, r.Initialize())

	_, err = r.Execute()
	require.NoError(t, err)

	heads := r.Heads()
	require.Len(t, heads, 2)
	assert.Less(t, heads[0], heads[1], "heads are ascending and distinct")
	for _, h := range heads {
		assert.True(t, r.Nodes()[h].Alive())
		assert.NotZero(t, h)
	}
}

// TestOptimizer_Deterministic two routers with identical configuration
// elect identical heads epoch after epoch.
func TestOptimizer_Deterministic(t *testing.T) {
	build := func() *protocol.Router {
		r, err := protocol.NewOptimizedLEACH(uniformTopology(7, 100, 10, 13), 3,
			swarm.ParticleSwarm, swarm.WithPopulation(10), swarm.WithIterations(25))
		require.NoError(t, err)
		require.NoError(t, r.Initialize())
		return r
	}

	a, b := build(), build()
	for epoch := 0; epoch < 3; epoch++ {
		_, errA := a.Execute()
		_, errB := b.Execute()
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a.Heads(), b.Heads(), "epoch %d diverged", epoch)
	}
}

// TestOptimizer_PrefersCheapHead with two sensors and one cluster the
// cost gap is decisive: heading the near-sink sensor costs far less
// than heading the remote one, so the optimizer must settle on it.
func TestOptimizer_PrefersCheapHead(t *testing.T) {
	topo := core.Topology{Placements: []core.Placement{
		{},
		{Position: core.Point{X: 10, Y: 10}, Energy: 10},
		{Position: core.Point{X: 80, Y: 80}, Energy: 10},
	}}

	r, err := protocol.NewOptimizedLEACH(topo, 1, swarm.Jellyfish,
		swarm.WithPopulation(15), swarm.WithIterations(40))
	require.NoError(t, err)
	require.NoError(t, r.Initialize())

	_, err = r.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, r.Heads(), "near-sink sensor halves the epoch cost")
}
