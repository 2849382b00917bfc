// Package protocol implements the round-based clustering state machine
// shared by every routing variant, and the named variants themselves.
//
// Overview:
//
//	UNINITIALIZED → READY (Initialize) → {SETUP, STEADY_STATE} per epoch
//	             → TERMINATED (no alive non-sink node, or the caller's
//	               round budget is exhausted)
//
//   - Initialize loads and validates the topology, resets every
//     protocol-local per-node attribute, and arms the round loop. It is
//     idempotent only as a full reset — calling it twice discards
//     progress.
//   - Execute runs one round: a setup phase when the round opens a new
//     epoch (head election, cluster formation, optional aggregation
//     tree, optional threshold broadcast), then the steady-state phase
//     moving data toward the sink, charging the energy model along the
//     way. It returns a RoundSummary and becomes a no-op once no
//     non-sink node is alive.
//
// Two orthogonal strategy axes compose into the named protocols, chosen
// at construction time rather than via type hierarchies:
//
//   - Head selection: ProbabilisticHeads (the classic adaptive election
//     threshold p/(1−p·(r mod ⌈1/p⌉)) with no repeats within a rotation
//     cycle) or OptimizerHeads (a swarm.Minimize search over candidate
//     head coordinates).
//   - Transmission gating: AlwaysTransmit, or ThresholdGated — transmit
//     only when the sensed value clears the hard threshold HT and the
//     change clears the soft threshold ST, the node never transmitted,
//     or CT rounds passed since its last transmission.
//
// A third switch, Hierarchical, relays aggregated cluster payloads over
// a minimum-spanning tree of heads rooted at the sink instead of a
// single hop per head.
//
// Constructors in the WSN literature's vocabulary:
//
//   - NewLEACH     — probabilistic heads, always transmit, single hop.
//   - NewAPTEEN    — probabilistic heads, threshold gating, tree relay.
//   - NewOptimizedLEACH — optimizer-driven heads, always transmit.
//
// The protocol owns all per-node mutable attributes (cluster
// membership, last transmitted values, broadcast triples) in parallel
// arrays keyed by node index; core.Node stays a plain value-like
// record. Nothing here reads ambient process state: every knob arrives
// through Config.
//
// Error handling (sentinel errors): see types.go. Malformed topologies
// and misconfigured thresholds fail fast at Initialize; an exhausted
// network is a graceful no-op, never an error.
package protocol
