// Package protocol - the two head-selection policies.
package protocol

import (
	"math"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/swarm"
)

// electProbabilistic applies the classic adaptive election threshold
//
//	T = p / (1 − p·(e mod ⌈1/p⌉))
//
// where e is the epoch position within the rotation cycle. Each alive
// sensor that has not served as head in the current cycle becomes a head
// with probability T, independently. At the last position of the cycle
// T reaches 1, so every remaining candidate is elected — over a
// death-free cycle every node heads exactly once.
//
// Complexity: O(n).
func (r *Router) electProbabilistic() []int {
	denom := 1 - r.p*float64(r.cyclePos)
	threshold := 1.0
	if denom > 0 {
		threshold = r.p / denom
	}
	if threshold > 1 {
		threshold = 1
	}

	var heads []int
	for i, n := range r.nodes {
		if i == r.sink || !n.Alive() || r.served[i] {
			continue
		}
		if r.rng.Float64() < threshold {
			heads = append(heads, i)
		}
	}

	return heads
}

// electOptimizer asks swarm.Minimize for k = min(NClusters, alive) head
// positions inside the topology's bounding box and snaps the best
// candidate onto distinct alive sensors.
//
// The fitness is the energy-balance proxy: mean member distance to its
// nearest proposed head plus mean head-to-sink distance — both terms
// scale the dominant d² transmit costs of an epoch.
//
// Complexity: O(optimizer budget · n·k) per epoch.
func (r *Router) electOptimizer() []int {
	alive := r.aliveSensorIndices()
	if len(alive) == 0 {
		return nil
	}
	k := r.cfg.NClusters
	if k > len(alive) {
		k = len(alive)
	}

	bounds := r.positionBounds(k)
	fitness := func(x []float64) float64 {
		return r.clusterCost(r.decodeHeads(x, alive, k), alive)
	}

	// A derived per-epoch seed keeps epochs decorrelated yet fully
	// reproducible; caller-supplied swarm options apply on top.
	opts := append([]swarm.Option{swarm.WithSeed(r.rng.Int63() | 1)}, r.cfg.Swarm...)
	res, err := swarm.Minimize(fitness, bounds, opts...)
	if err != nil {
		// Misconfigured swarm options degrade to the probabilistic rule
		// rather than wedging the round loop.
		return r.electProbabilistic()
	}

	return r.decodeHeads(res.Position, alive, k)
}

// aliveSensorIndices lists alive non-sink node indices, ascending.
func (r *Router) aliveSensorIndices() []int {
	var alive []int
	for i, n := range r.nodes {
		if i != r.sink && n.Alive() {
			alive = append(alive, i)
		}
	}

	return alive
}

// positionBounds spans 2k dimensions (x0,y0,…,x_{k-1},y_{k-1}) over the
// topology's bounding box.
func (r *Router) positionBounds(k int) swarm.Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range r.nodes {
		minX = math.Min(minX, n.Position.X)
		maxX = math.Max(maxX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxY = math.Max(maxY, n.Position.Y)
	}
	// Degenerate (collinear) extents still need a sliver of room.
	if maxX <= minX {
		maxX = minX + 1
	}
	if maxY <= minY {
		maxY = minY + 1
	}

	b := swarm.Bounds{Min: make([]float64, 2*k), Max: make([]float64, 2*k)}
	for d := 0; d < k; d++ {
		b.Min[2*d], b.Max[2*d] = minX, maxX
		b.Min[2*d+1], b.Max[2*d+1] = minY, maxY
	}

	return b
}

// decodeHeads snaps k coordinate pairs onto distinct alive sensors:
// each pair greedily claims the nearest unclaimed sensor (ties to the
// lowest index). The result is ascending by node index.
//
// Complexity: O(k·n).
func (r *Router) decodeHeads(x []float64, alive []int, k int) []int {
	taken := make(map[int]bool, k)
	heads := make([]int, 0, k)

	for d := 0; d < k; d++ {
		target := core.Point{X: x[2*d], Y: x[2*d+1]}
		best, bestD := -1, 0.0
		for _, i := range alive {
			if taken[i] {
				continue
			}
			dist := core.Dist(target, r.nodes[i].Position)
			if best < 0 || dist < bestD {
				best, bestD = i, dist
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		heads = append(heads, best)
	}
	// Keep the deterministic ascending order the rest of the round
	// loop relies on for tie-breaking.
	insertionSort(heads)

	return heads
}

// clusterCost is the election fitness: mean member→nearest-head distance
// plus mean head→sink distance.
func (r *Router) clusterCost(heads []int, alive []int) float64 {
	if len(heads) == 0 {
		return math.Inf(1)
	}

	var member float64
	var members int
	for _, i := range alive {
		nearest := math.Inf(1)
		isHead := false
		for _, h := range heads {
			if h == i {
				isHead = true
				break
			}
			nearest = math.Min(nearest, core.Dist(r.nodes[i].Position, r.nodes[h].Position))
		}
		if isHead {
			continue
		}
		member += nearest
		members++
	}
	if members > 0 {
		member /= float64(members)
	}

	var toSink float64
	for _, h := range heads {
		toSink += core.Dist(r.nodes[h].Position, r.nodes[r.sink].Position)
	}
	toSink /= float64(len(heads))

	return member + toSink
}

// insertionSort keeps tiny head lists ordered without pulling in sort
// for a hot per-evaluation path.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
