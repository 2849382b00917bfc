// Package core - the Topology loading contract for external sources.
package core

import "github.com/katalvlaran/wsnsim/energy"

// Placement is one (position, initial energy) tuple supplied by a
// topology source. The order of placements is significant: protocols
// break distance ties by the lower placement index.
type Placement struct {
	Position Point
	Energy   float64
}

// Topology is the finite ordered sequence of placements plus the index
// of the designated sink. Position 0 is treated as the sink unless
// SinkIndex says otherwise; the sink's Energy field is ignored.
//
// Radio supplies the shared default radio parameters for every node;
// leave it zero to use energy.DefaultParams.
type Topology struct {
	Placements []Placement
	SinkIndex  int
	Radio      energy.Params
}

// Build materializes the topology into validated nodes, sink first in
// role only: node order matches placement order, with nodes[SinkIndex]
// carrying the Sink role and every other placement a Sensor role.
//
// Validation (fail fast, sentinel errors):
//
//  1. At least one sensor besides the sink, else ErrEmptyTopology.
//  2. SinkIndex within range, else ErrSinkIndex.
//  3. No sensor sharing the sink's exact position, else ErrSinkNotDistinct.
//  4. No negative initial energy, else ErrNegativeEnergy.
//  5. Radio parameters validate, else ErrBadRadio.
//
// Complexity: O(n) time, O(n) space.
func (t Topology) Build() ([]*Node, error) {
	// 1. Need the sink plus at least one sensor.
	if len(t.Placements) < 2 {
		return nil, ErrEmptyTopology
	}

	// 2. Sink index must address a placement.
	if t.SinkIndex < 0 || t.SinkIndex >= len(t.Placements) {
		return nil, ErrSinkIndex
	}

	// 5. Resolve and validate the shared radio parameters.
	radio := t.Radio
	if radio == (energy.Params{}) {
		radio = energy.DefaultParams()
	}
	if err := radio.Validate(); err != nil {
		return nil, ErrBadRadio
	}

	sinkPos := t.Placements[t.SinkIndex].Position
	nodes := make([]*Node, len(t.Placements))
	for i, p := range t.Placements {
		if i == t.SinkIndex {
			nodes[i] = NewNode(p.Position, Sink, p.Energy, radio)
			continue
		}

		// 3. A sensor sitting exactly on the sink is a malformed topology.
		if p.Position == sinkPos {
			return nil, ErrSinkNotDistinct
		}

		// 4. Energy budgets must be non-negative (zero = pre-dead node).
		if p.Energy < 0 {
			return nil, ErrNegativeEnergy
		}
		nodes[i] = NewNode(p.Position, Sensor, p.Energy, radio)
	}

	return nodes, nil
}
