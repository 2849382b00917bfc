// Package sim drives a protocol.Router to exhaustion and reports on
// the run.
//
// What sim provides:
//
//   - Run — the round loop driver: initializes the router, spins
//     Execute() until the network dies or a round cap hits, records
//     every RoundSummary, and takes periodic energy snapshots.
//   - History — the ordered per-round record plus snapshots.
//   - Report — lifetime statistics: rounds to first / half / last
//     death, total and mean energy drain, transmission totals.
//
// Logging goes through an injected hclog.Logger; a nil logger selects
// hclog.NewNullLogger(), so the driver stays silent by default and the
// protocol and algorithm packages never log at all.
//
// Determinism: Run adds no randomness of its own — a History is fully
// determined by the Router's topology, configuration, and seed.
package sim
