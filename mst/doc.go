// Package mst builds minimum-spanning aggregation trees over point sets.
//
// Overview:
//
//   - Build runs Prim's algorithm over the complete Euclidean graph of the
//     given points, threaded from a designated root (the sink), so every
//     vertex carries a unique parent path toward the root.
//   - The produced Tree is parent-indexed: Parent[v] is the next hop from
//     v toward the root, and the root alone has Parent == -1. This shape
//     is exactly what hierarchical routing wants — a head relays its
//     aggregated payload through at most one parent.
//
// Determinism:
//
//   - Among equal-distance frontier vertices, the lowest vertex index is
//     expanded first.
//   - Among equal-weight attachment edges for a vertex, the lower parent
//     index wins.
//
// Degenerate inputs are part of the contract: a single point yields a
// trivial one-vertex tree with no edges, and duplicate positions are
// tolerated (zero-weight edges are valid) — all points are assumed
// mutually reachable, there is no radio-range modeling.
//
// Invariants (for n points):
//
//   - Exactly n-1 edges.
//   - Connected and acyclic; the root has no parent.
//
// Error handling (sentinel errors):
//
//   - ErrNoPoints:      Build called with an empty point set.
//   - ErrRootOutOfRange: root index outside [0, n).
//
// Complexity: O(n²) time, O(n) space — dense Prim, the right trade-off
// for complete geometric graphs where E = n(n-1)/2.
package mst
