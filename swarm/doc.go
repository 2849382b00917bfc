// Package swarm provides population-based metaheuristic minimizers used
// to choose cluster-head configurations: jellyfish search and particle
// swarm, both behind one contract.
//
// Overview:
//
//   - Minimize takes a caller-supplied fitness function (lower is
//     better; must be pure, deterministic, and total on the declared
//     bounds), per-dimension search-space bounds, and Options.
//   - The population is seeded by a logistic-map chaotic recurrence
//     x ← 4·x·(1−x), rescaled into the bounds. Chaotic seeding spreads
//     initial candidates more evenly than uniform draws, improving
//     early-iteration diversity.
//   - Each iteration applies the selected move rule to every candidate,
//     clamps positions back into bounds, re-evaluates, and updates the
//     global best. The evaluate/update driver is shared; the move rule
//     is the only pluggable part.
//
// Move rules:
//
//   - Jellyfish: a time-varying control value c(t) = |(1−t/T)·(2r−1)|
//     picks between ocean-current drift toward the best (biased against
//     the population mean), active motion toward/away from a random
//     peer by fitness comparison, and passive bounded perturbation.
//   - ParticleSwarm: the standard inertia/cognitive/social velocity
//     update with personal- and global-best tracking.
//
// Termination is a fixed iteration budget — deterministic cost, suited
// to repeated use inside a protocol setup phase every epoch. There is
// no convergence-based early stop.
//
// Determinism: same Seed ⇒ identical results; Seed==0 selects a fixed
// default stream. No time-based randomness anywhere.
//
// Error handling (sentinel errors):
//
//   - ErrNilFitness:    no fitness function supplied.
//   - ErrBadBounds:     empty, mismatched, or inverted bounds.
//   - ErrBadPopulation: population size ≤ 0.
//   - ErrBadIterations: iteration budget ≤ 0.
//   - ErrBadCoefficient: a negative move-rule coefficient.
//   - ErrUnknownAlgo:   Options.Algo names no known move rule.
//
// Complexity per run: O(Iterations · Population · (dims + fitness)).
package swarm
