// Package protocol - Config, policies, RoundSummary, sentinel errors.
package protocol

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/swarm"
)

// Sentinel errors for protocol configuration and lifecycle.
var (
	// ErrNotInitialized indicates Execute or a runtime update was called
	// before Initialize.
	ErrNotInitialized = errors.New("protocol: router not initialized")

	// ErrBadClusterCount indicates a cluster count outside [1, sensors].
	ErrBadClusterCount = errors.New("protocol: cluster count out of range")

	// ErrBadEpochLength indicates an epoch length < 1 round.
	ErrBadEpochLength = errors.New("protocol: epoch length must be positive")

	// ErrBadPayload indicates a non-positive control or data payload size.
	ErrBadPayload = errors.New("protocol: payload sizes must be positive")

	// ErrBadThresholds indicates negative HT/ST or a non-positive CT.
	ErrBadThresholds = errors.New("protocol: invalid gating thresholds")

	// ErrUnknownPolicy indicates an unknown head-selection or gating value.
	ErrUnknownPolicy = errors.New("protocol: unknown policy")

	// ErrNotAHead indicates a per-cluster operation addressed a node that
	// is not a cluster head in the current epoch.
	ErrNotAHead = errors.New("protocol: node is not a current cluster head")
)

// HeadSelection picks how cluster heads are elected each epoch.
type HeadSelection int

const (
	// ProbabilisticHeads uses the classic adaptive election threshold
	// with rotation fairness across a ⌈1/p⌉-epoch cycle.
	ProbabilisticHeads HeadSelection = iota

	// OptimizerHeads delegates head placement to swarm.Minimize.
	OptimizerHeads
)

// Gating picks when a sensor transmits during steady state.
type Gating int

const (
	// AlwaysTransmit sends every round (baseline clustering behavior).
	AlwaysTransmit Gating = iota

	// ThresholdGated sends only on events or periodic refresh (HT/ST/CT).
	ThresholdGated
)

// Thresholds is the (HT, ST, CT) triple gating event-and-period-driven
// transmission: hard threshold, soft threshold, count-time.
type Thresholds struct {
	Hard      float64
	Soft      float64
	CountTime int
}

// Validate rejects negative HT/ST and non-positive CT — these have no
// sensible clamp.
//
// Complexity: O(1).
func (t Thresholds) Validate() error {
	if t.Hard < 0 || t.Soft < 0 || t.CountTime <= 0 {
		return ErrBadThresholds
	}

	return nil
}

// DataGenerator maps (node, round index) to a sensed value. Injected
// generators must be deterministic given a seed so runs reproduce.
type DataGenerator func(n *core.Node, round int) float64

// DefaultGenerator returns a deterministic synthetic signal: a
// position-dependent base, a slow upward drift per round, and seeded
// Gaussian noise, clamped at zero.
//
// Complexity per call: O(1).
func DefaultGenerator(seed int64) DataGenerator {
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	return func(n *core.Node, round int) float64 {
		base := 30.0 + (n.Position.X+n.Position.Y)/10
		v := base + 0.5*float64(round) + rng.NormFloat64()*5
		if v < 0 {
			v = 0
		}

		return v
	}
}

// Config holds every knob of the round loop. All values are explicit
// constructor parameters — the core never reads ambient process state.
//
// Fields:
//
//	NClusters    — desired cluster heads per epoch (1..sensor count).
//	EpochLength  — rounds sharing one head assignment (≥ 1).
//	ControlBits  — size of control payloads (threshold broadcasts).
//	DataBits     — size of one sensed-data payload.
//	Heads        — head-selection policy axis.
//	Gating       — transmission-gating policy axis.
//	Hierarchical — relay aggregated payloads over an MST of heads.
//	Thresholds   — protocol-wide (HT, ST, CT) defaults for ThresholdGated.
//	Generator    — sensed-value source; nil selects DefaultGenerator(Seed).
//	Seed         — RNG seed for elections and the default generator
//	               (0 ⇒ fixed default stream).
//	Swarm        — extra swarm options for OptimizerHeads (applied after
//	               the per-epoch deterministic seed).
type Config struct {
	NClusters    int
	EpochLength  int
	ControlBits  int
	DataBits     int
	Heads        HeadSelection
	Gating       Gating
	Hierarchical bool
	Thresholds   Thresholds
	Generator    DataGenerator
	Seed         int64
	Swarm        []swarm.Option
}

// DefaultConfig returns the baseline setup: 5 clusters, re-cluster every
// round, 128-bit control and 4096-bit data payloads, probabilistic
// heads, always-transmit gating, single hop, and the canonical HT=50,
// ST=2, CT=10 triple for variants that enable gating.
//
// Complexity: O(1).
func DefaultConfig() Config {
	return Config{
		NClusters:   5,
		EpochLength: 1,
		ControlBits: 128,
		DataBits:    4096,
		Heads:       ProbabilisticHeads,
		Gating:      AlwaysTransmit,
		Thresholds:  Thresholds{Hard: 50, Soft: 2, CountTime: 10},
	}
}

// validate checks the node-count-independent parts of the Config.
//
// Complexity: O(1).
func (c Config) validate() error {
	if c.NClusters < 1 {
		return ErrBadClusterCount
	}
	if c.EpochLength < 1 {
		return ErrBadEpochLength
	}
	if c.ControlBits < 1 || c.DataBits < 1 {
		return ErrBadPayload
	}
	switch c.Heads {
	case ProbabilisticHeads, OptimizerHeads:
	default:
		return ErrUnknownPolicy
	}
	switch c.Gating {
	case AlwaysTransmit, ThresholdGated:
	default:
		return ErrUnknownPolicy
	}
	if c.Gating == ThresholdGated {
		if err := c.Thresholds.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// RoundSummary is the per-Execute report consumed by external drivers
// and reporting; the core never writes it anywhere.
type RoundSummary struct {
	// Round is the index of the executed round (0-based).
	Round int

	// Alive is the number of alive non-sink nodes after the round.
	Alive int

	// Heads is the number of cluster heads elected for the round's epoch.
	Heads int

	// Transmissions counts successful sends this round (member→head,
	// head→relay, relay→sink all count individually).
	Transmissions int

	// EnergySpent is the total joules drained from non-sink ledgers
	// this round.
	EnergySpent float64
}
