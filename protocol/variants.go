// Package protocol - named protocol variants composed from the two
// strategy axes and the hierarchical switch.
package protocol

import (
	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/swarm"
)

// NewLEACH builds the baseline clustering protocol: probabilistic head
// election, always-transmit gating, single-hop head→sink delivery.
//
// Complexity: O(1); validation beyond NClusters happens at Initialize.
func NewLEACH(topo core.Topology, nClusters int) (*Router, error) {
	cfg := DefaultConfig()
	cfg.NClusters = nClusters

	return New(topo, cfg)
}

// NewAPTEEN builds the event-and-period-gated hierarchical protocol:
// probabilistic head election, HT/ST/CT threshold gating with per-epoch
// parameter broadcast, and multi-hop relay over the MST of heads.
//
// Complexity: O(1).
func NewAPTEEN(topo core.Topology, nClusters int, th Thresholds) (*Router, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.NClusters = nClusters
	cfg.Gating = ThresholdGated
	cfg.Hierarchical = true
	cfg.Thresholds = th

	return New(topo, cfg)
}

// NewOptimizedLEACH builds the optimizer-assisted variant: cluster heads
// are placed by the selected swarm algorithm each epoch, members
// transmit every round, delivery is single hop. Extra swarm options
// (population, iterations) pass through swarmOpts.
//
// Complexity: O(1).
func NewOptimizedLEACH(topo core.Topology, nClusters int, algo swarm.Algo, swarmOpts ...swarm.Option) (*Router, error) {
	cfg := DefaultConfig()
	cfg.NClusters = nClusters
	cfg.Heads = OptimizerHeads
	cfg.Swarm = append([]swarm.Option{swarm.WithAlgo(algo)}, swarmOpts...)

	return New(topo, cfg)
}
