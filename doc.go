// Package wsnsim is your in-memory playground for simulating, comparing,
// and optimizing energy-aware routing protocols for wireless sensor
// networks — from the radio energy model up to metaheuristic cluster-head
// search.
//
// 🚀 What is wsnsim?
//
//	A deterministic, round-based simulation library that brings together:
//		• Radio energy model: first-order transmit/receive/aggregation costs
//		• Node primitives: positions, roles, energy ledgers, alive tracking
//		• Cluster routing: probabilistic head election with rotation fairness
//		• Threshold gating: event-and-period driven transmission (HT/ST/CT)
//		• Hierarchical relay: minimum-spanning aggregation trees over heads
//		• Metaheuristics: jellyfish search & particle swarm with chaotic seeding
//		• Drivers: run-to-death loops with structured logs and run statistics
//
// ✨ Why choose wsnsim?
//
//   - Reproducible – every random draw flows from an explicit seed
//   - Composable – head-selection, gating and topology are independent axes
//   - Pure core – algorithm packages never touch disk, env, or a logger
//   - Extensible – inject your own data generators and fitness functions
//
// Everything is organized under flat subpackages:
//
//	core/     — Node, Point, Role and topology loading/validation
//	energy/   — the first-order radio energy model (pure functions)
//	mst/      — minimum-spanning aggregation trees rooted at the sink
//	swarm/    — jellyfish-search & particle-swarm minimizers, chaotic init
//	protocol/ — the round-based state machine and its named variants
//	sim/      — run loops, per-round logging, and run reports
//
// Quick ASCII example:
//
//	    s3───CH1──╮
//	    s4───╯    │
//	              SINK
//	    s1───CH2──╯
//	    s2───╯
//
//	two clusters relaying aggregated payloads toward the sink.
//
// Dive into README-style package docs for full examples and contracts.
//
//	go get github.com/katalvlaran/wsnsim
package wsnsim
