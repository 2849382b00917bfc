// Package core defines the central Node, Point, and Topology types shared
// by every routing protocol in wsnsim.
//
// Overview:
//
//   - Point is a plain 2D coordinate; Dist computes Euclidean distance.
//   - Node couples a position and role with an energy ledger. Spend is the
//     only mutation: it clamps at zero and recomputes aliveness, so a node
//     that overspends its final fraction of a joule ends at exactly zero,
//     never negative. Node identity is by pointer — two relays on a power
//     line may legitimately share a position.
//   - Topology is the loading contract for external topology sources: an
//     ordered sequence of (position, initial energy) placements plus a
//     designated sink index. Build materializes validated *Node values.
//
// The sink is special: it is the fixed collection destination, is never
// elected as a cluster head, and never dies (Alive always reports true
// for the Sink role — think mains power).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyTopology:   no sensor placements besides the sink.
//   - ErrSinkIndex:       sink index outside the placement range.
//   - ErrSinkNotDistinct: a sensor shares the sink's exact position.
//   - ErrNegativeEnergy:  a placement carries a negative initial budget.
//
// Nodes are created once per simulation and never destroyed: a dead node
// persists as inert state, excluded from elections and routing, for the
// remainder of the run.
package core
