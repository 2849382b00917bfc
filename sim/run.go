// Package sim - the Run driver and its recorded History.
package sim

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/protocol"
)

// DefaultMaxRounds caps a run when RunOptions.MaxRounds is zero. Any
// sane first-order-radio setup exhausts its budgets well before this.
const DefaultMaxRounds = 100_000

// Sentinel errors for the driver.
var (
	// ErrNilRouter indicates Run was handed a nil router.
	ErrNilRouter = errors.New("sim: router must not be nil")

	// ErrBadRunOptions indicates a negative round cap or snapshot step.
	ErrBadRunOptions = errors.New("sim: negative MaxRounds or SnapshotStep")
)

// RunOptions configures one driver run. The zero value is usable:
// DefaultMaxRounds, no snapshots, silent logging.
type RunOptions struct {
	// MaxRounds caps the loop; 0 selects DefaultMaxRounds.
	MaxRounds int

	// SnapshotStep takes a full energy snapshot every SnapshotStep
	// rounds; 0 disables snapshots.
	SnapshotStep int

	// Logger receives per-round Debug records and snapshot / lifecycle
	// Info records; nil selects hclog.NewNullLogger().
	Logger hclog.Logger
}

// Snapshot is a point-in-time energy picture taken every SnapshotStep
// rounds, index-aligned with the router's node collection.
type Snapshot struct {
	Round     int
	Alive     int
	Remaining []float64
}

// History is the full record of one run.
type History struct {
	// Population is the sensor count alive when the run began.
	Population int

	// Rounds holds one summary per executed round, in order.
	Rounds []protocol.RoundSummary

	// Snapshots holds the periodic energy pictures (empty when
	// SnapshotStep was 0).
	Snapshots []Snapshot
}

// Terminated reports whether the run ended by exhaustion rather than
// by hitting the round cap.
func (h History) Terminated() bool {
	n := len(h.Rounds)

	return n > 0 && h.Rounds[n-1].Alive == 0
}

// Run initializes r and executes rounds until every sensor is dead or
// the round cap hits, recording each summary.
//
// Contracts:
//   - Run owns the router for its duration; it calls Initialize, so any
//     prior progress on r is discarded.
//   - The returned History is complete up to the point of failure even
//     when an error cuts the run short.
//
// Error Conditions: ErrNilRouter, ErrBadRunOptions, and anything
// Initialize or Execute reports.
//
// Complexity: O(MaxRounds · round cost); memory O(rounds + snapshots·n).
func Run(r *protocol.Router, opts RunOptions) (History, error) {
	if r == nil {
		return History{}, ErrNilRouter
	}
	if opts.MaxRounds < 0 || opts.SnapshotStep < 0 {
		return History{}, ErrBadRunOptions
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	maxRounds := opts.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	if err := r.Initialize(); err != nil {
		return History{}, err
	}

	h := History{Population: r.AliveSensors()}
	logger.Info("run started", "sensors", h.Population, "max_rounds", maxRounds)

	for i := 0; i < maxRounds; i++ {
		sum, err := r.Execute()
		if err != nil {
			return h, err
		}
		h.Rounds = append(h.Rounds, sum)

		logger.Debug("round complete",
			"round", sum.Round,
			"alive", sum.Alive,
			"heads", sum.Heads,
			"transmissions", sum.Transmissions,
			"energy_spent", sum.EnergySpent)

		if opts.SnapshotStep > 0 && sum.Round%opts.SnapshotStep == 0 {
			h.Snapshots = append(h.Snapshots, takeSnapshot(r, sum))
			logger.Info("snapshot", "round", sum.Round, "alive", sum.Alive)
		}

		if sum.Alive == 0 {
			logger.Info("network exhausted", "rounds", len(h.Rounds))
			return h, nil
		}
	}
	logger.Info("round cap reached", "rounds", len(h.Rounds), "alive", r.AliveSensors())

	return h, nil
}

// takeSnapshot copies the non-sink energy ledgers.
func takeSnapshot(r *protocol.Router, sum protocol.RoundSummary) Snapshot {
	nodes := r.Nodes()
	s := Snapshot{Round: sum.Round, Alive: sum.Alive, Remaining: make([]float64, 0, len(nodes))}
	for _, n := range nodes {
		if n.Role == core.Sink {
			continue
		}
		s.Remaining = append(s.Remaining, n.Energy())
	}

	return s
}
