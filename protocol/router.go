// Package protocol - the Router state machine: Initialize and Execute.
package protocol

import (
	"math/rand"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/mst"
)

// Router drives one simulation: it owns the node collection, every
// protocol-local per-node attribute, and the round/epoch counters.
// A Router is single-threaded by contract — the round loop is the sole
// mutator. Run independent Router instances for concurrent simulations.
type Router struct {
	cfg  Config
	topo core.Topology

	nodes []*core.Node
	sink  int
	gen   DataGenerator
	rng   *rand.Rand

	p        float64 // per-epoch election probability NClusters/sensors
	cycleLen int     // rotation cycle in epochs: ⌈1/p⌉

	initialized bool
	round       int // executed rounds
	epoch       int // completed setup phases
	cyclePos    int // position within the rotation cycle [0, cycleLen)

	// Per-node attribute arrays (index-aligned with nodes).
	isHead   []bool
	served   []bool // served as head in the current rotation cycle
	memberOf []int  // node → head node index; -1 when unassigned
	lastTx   []float64
	everTx   []bool
	sinceTx  []int

	heads       []int        // current epoch's heads, ascending
	headParams  []Thresholds // broadcast triple per head (valid where isHead)
	rebroadcast bool         // runtime update pending re-broadcast

	tree      *mst.Tree // hierarchical relay tree; vertex 0 is the sink
	treeNodes []int     // tree vertex → node index
}

// New builds a Router over the given topology and configuration. The
// Config is validated for internally-detectable mistakes here; topology
// and node-count checks run at Initialize.
//
// Complexity: O(1).
func New(topo core.Topology, cfg Config) (*Router, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Router{cfg: cfg, topo: topo}, nil
}

// Initialize loads the topology, validates it, and resets all
// protocol-local state: every loaded node starts alive except pre-dead
// ones, counters return to zero, and any prior progress is discarded.
//
// Error Conditions: the core.Topology sentinels (empty topology, sink
// not distinct, negative energy, bad radio) and ErrBadClusterCount when
// NClusters exceeds the sensor count.
//
// Complexity: O(n) time and space.
func (r *Router) Initialize() error {
	nodes, err := r.topo.Build()
	if err != nil {
		return err
	}
	sensors := len(nodes) - 1
	if r.cfg.NClusters > sensors {
		return ErrBadClusterCount
	}

	r.nodes = nodes
	r.sink = r.topo.SinkIndex
	r.p = float64(r.cfg.NClusters) / float64(sensors)
	// ⌈1/p⌉ = ⌈sensors/NClusters⌉ without floating-point wobble.
	r.cycleLen = (sensors + r.cfg.NClusters - 1) / r.cfg.NClusters

	seed := r.cfg.Seed
	if seed == 0 {
		seed = 1
	}
	r.rng = rand.New(rand.NewSource(seed))

	r.gen = r.cfg.Generator
	if r.gen == nil {
		r.gen = DefaultGenerator(seed)
	}

	n := len(nodes)
	r.isHead = make([]bool, n)
	r.served = make([]bool, n)
	r.memberOf = make([]int, n)
	for i := range r.memberOf {
		r.memberOf[i] = -1
	}
	r.lastTx = make([]float64, n)
	r.everTx = make([]bool, n)
	r.sinceTx = make([]int, n)
	r.headParams = make([]Thresholds, n)

	r.heads = nil
	r.tree = nil
	r.treeNodes = nil
	r.rebroadcast = false
	r.round = 0
	r.epoch = 0
	r.cyclePos = 0
	r.initialized = true

	return nil
}

// Round returns the number of executed rounds.
func (r *Router) Round() int {
	return r.round
}

// AliveSensors returns how many non-sink nodes are currently alive.
//
// Complexity: O(n).
func (r *Router) AliveSensors() int {
	var alive int
	for i, n := range r.nodes {
		if i != r.sink && n.Alive() {
			alive++
		}
	}

	return alive
}

// Nodes exposes the node collection for external reporting (plotting,
// snapshots). Callers must treat it as read-only.
func (r *Router) Nodes() []*core.Node {
	return r.nodes
}

// Heads returns the node indices serving as cluster heads this epoch.
// The returned slice is owned by the Router.
func (r *Router) Heads() []int {
	return r.heads
}

// Execute runs one protocol round and reports it.
//
// Behavior:
//   - Terminated network (no alive non-sink node): no-op — the summary
//     carries zero alive, zero energy, and the round counter does not
//     advance, so spin-until-done callers converge naturally.
//   - A round opening a new epoch runs the setup phase first (election,
//     clustering, tree, broadcasts); every round runs steady state.
//
// Complexity: O(n²) worst case per setup round (clustering + dense
// Prim), O(n) per steady-state-only round plus the optimizer budget for
// OptimizerHeads epochs.
func (r *Router) Execute() (RoundSummary, error) {
	if !r.initialized {
		return RoundSummary{}, ErrNotInitialized
	}

	sum := RoundSummary{Round: r.round}
	if r.AliveSensors() == 0 {
		return sum, nil
	}

	before := r.totalEnergy()

	// Setup phase on epoch boundaries only.
	if r.round%r.cfg.EpochLength == 0 {
		r.setUpPhase()
	}
	sum.Heads = len(r.heads)

	r.steadyStatePhase(&sum)

	sum.Alive = r.AliveSensors()
	sum.EnergySpent = before - r.totalEnergy()
	r.round++

	return sum, nil
}

// setUpPhase elects heads, forms clusters, rebuilds the relay tree for
// hierarchical variants, and broadcasts gating thresholds.
func (r *Router) setUpPhase() {
	// Demote the previous epoch's heads.
	for _, h := range r.heads {
		r.isHead[h] = false
		if r.nodes[h].Role == core.Head {
			r.nodes[h].Role = core.Sensor
		}
	}
	for i := range r.memberOf {
		r.memberOf[i] = -1
	}

	// Rotation-cycle bookkeeping for the probabilistic rule.
	if r.cyclePos == r.cycleLen {
		r.cyclePos = 0
		for i := range r.served {
			r.served[i] = false
		}
	}

	// Elect, with a draft fallback so a live epoch can always route.
	switch r.cfg.Heads {
	case ProbabilisticHeads:
		r.heads = r.electProbabilistic()
	case OptimizerHeads:
		r.heads = r.electOptimizer()
	}
	if len(r.heads) == 0 {
		r.heads = r.draftHead()
	}

	for _, h := range r.heads {
		r.isHead[h] = true
		r.served[h] = true
		r.nodes[h].Role = core.Head
	}

	// Cluster formation: nearest alive head, ties to the lowest head
	// index (heads iterate ascending, strict < keeps the first).
	for i, n := range r.nodes {
		if i == r.sink || r.isHead[i] || !n.Alive() {
			continue
		}
		best, bestD := -1, 0.0
		for _, h := range r.heads {
			d := core.Dist(n.Position, r.nodes[h].Position)
			if best < 0 || d < bestD {
				best, bestD = h, d
			}
		}
		r.memberOf[i] = best
	}

	// Hierarchical variants rebuild the aggregation tree each epoch.
	r.tree = nil
	r.treeNodes = nil
	if r.cfg.Hierarchical {
		points := make([]core.Point, 0, len(r.heads)+1)
		points = append(points, r.nodes[r.sink].Position)
		r.treeNodes = append(r.treeNodes, r.sink)
		for _, h := range r.heads {
			points = append(points, r.nodes[h].Position)
			r.treeNodes = append(r.treeNodes, h)
		}
		// Build cannot fail here: ≥1 point, root 0 in range.
		r.tree, _ = mst.Build(points, 0)
	}

	if r.cfg.Gating == ThresholdGated {
		r.broadcastThresholds()
	}

	r.epoch++
	r.cyclePos++
}

// steadyStatePhase senses at every alive sensor and moves gated data
// toward the sink, charging the energy model along the way.
func (r *Router) steadyStatePhase(sum *RoundSummary) {
	if len(r.heads) == 0 {
		return
	}

	// Sensing: one value per alive non-sink node; gated variants also
	// advance the per-node silence counters.
	values := make([]float64, len(r.nodes))
	for i, n := range r.nodes {
		if i == r.sink || !n.Alive() {
			continue
		}
		values[i] = r.gen(n, r.round)
		if r.cfg.Gating == ThresholdGated {
			r.sinceTx[i]++
		}
	}

	if r.tree != nil {
		r.gatherTree(0, values, sum)
		return
	}
	r.gatherFlat(values, sum)
}

// gatherFlat moves data single hop: members to their head, each head's
// aggregate straight to the sink.
func (r *Router) gatherFlat(values []float64, sum *RoundSummary) {
	for _, h := range r.heads {
		raw := r.gatherMembers(h, values, sum)
		out := r.aggregateAt(h, raw)
		if out > 0 {
			head := r.nodes[h]
			head.SpendTransmit(out, core.Dist(head.Position, r.nodes[r.sink].Position))
			sum.Transmissions++
		}
	}
}

// gatherTree gathers the subtree under tree vertex v bottom-up and
// returns the aggregated payload arriving at v's node. Child payloads
// were aggregated at the child already and relay uncompressed, matching
// hierarchical gathering semantics. A dead relay breaks its subtree:
// children still spend transmit energy, the payload is lost.
func (r *Router) gatherTree(v int, values []float64, sum *RoundSummary) int {
	nodeIdx := r.treeNodes[v]
	node := r.nodes[nodeIdx]

	var relayed int
	for _, c := range r.tree.Children(v) {
		childIdx := r.treeNodes[c]
		child := r.nodes[childIdx]
		payload := r.gatherTree(c, values, sum)
		if payload == 0 || !child.Alive() {
			continue
		}
		child.SpendTransmit(payload, core.Dist(child.Position, node.Position))
		sum.Transmissions++
		if nodeIdx == r.sink {
			relayed += payload // the sink consumes for free
			continue
		}
		if node.Alive() {
			node.SpendReceive(payload)
			relayed += payload
		}
	}

	if nodeIdx == r.sink {
		return 0
	}

	raw := r.gatherMembers(nodeIdx, values, sum)

	return r.aggregateAt(nodeIdx, raw) + relayed
}

// gatherMembers runs the gating policy for every member of head h,
// charging both ends of each member→head hop, and returns the raw bits
// collected at h (including the head's own sample while it lives).
func (r *Router) gatherMembers(h int, values []float64, sum *RoundSummary) int {
	head := r.nodes[h]

	var raw int
	if head.Alive() {
		raw = r.cfg.DataBits // the head samples too
	}

	for i, n := range r.nodes {
		if r.memberOf[i] != h || !n.Alive() {
			continue
		}
		if !r.transmits(i, values[i]) {
			continue
		}
		n.SpendTransmit(r.cfg.DataBits, core.Dist(n.Position, head.Position))
		sum.Transmissions++
		if head.Alive() {
			head.SpendReceive(r.cfg.DataBits)
			raw += r.cfg.DataBits
		}
	}

	return raw
}

// aggregateAt charges the fusion cost at head h and returns the
// compressed payload, or 0 when the head is dead or collected nothing.
func (r *Router) aggregateAt(h int, raw int) int {
	head := r.nodes[h]
	if raw == 0 || !head.Alive() {
		return 0
	}
	head.SpendAggregate(raw)

	return head.Radio.Compress(raw)
}

// draftHead conscripts the highest-energy alive sensor (ties to the
// lowest index) so an epoch with an empty election can still route.
func (r *Router) draftHead() []int {
	best := -1
	for i, n := range r.nodes {
		if i == r.sink || !n.Alive() {
			continue
		}
		if best < 0 || n.Energy() > r.nodes[best].Energy() {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	return []int{best}
}

// totalEnergy sums the non-sink ledgers.
//
// Complexity: O(n).
func (r *Router) totalEnergy() float64 {
	var total float64
	for i, n := range r.nodes {
		if i == r.sink {
			continue
		}
		total += n.Energy()
	}

	return total
}
