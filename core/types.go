// Package core - Point, Role, sentinel errors, and the Node declaration.
package core

import (
	"errors"
	"math"

	"github.com/katalvlaran/wsnsim/energy"
)

// Sentinel errors for topology loading and node construction.
var (
	// ErrEmptyTopology indicates the topology holds no sensors besides the sink.
	ErrEmptyTopology = errors.New("core: topology has no sensors")

	// ErrSinkIndex indicates the sink index is outside the placement range.
	ErrSinkIndex = errors.New("core: sink index out of range")

	// ErrSinkNotDistinct indicates a sensor placement coincides with the sink.
	ErrSinkNotDistinct = errors.New("core: sink position not distinct from sensors")

	// ErrNegativeEnergy indicates a placement with a negative initial budget.
	ErrNegativeEnergy = errors.New("core: negative initial energy")

	// ErrBadRadio indicates topology radio parameters failed validation.
	ErrBadRadio = errors.New("core: invalid radio parameters")
)

// Point is a 2D coordinate in meters.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Hypot(dx, dy)
}

// Role tags what a node currently does in the protocol.
type Role int

const (
	// Sensor is a regular data-producing node.
	Sensor Role = iota

	// Head marks a node serving as cluster head for the current epoch.
	Head

	// Sink is the fixed data-collection destination. Never elected, never dies.
	Sink
)

// String returns the lowercase role name for logs and test output.
func (r Role) String() string {
	switch r {
	case Sensor:
		return "sensor"
	case Head:
		return "head"
	case Sink:
		return "sink"
	default:
		return "unknown"
	}
}

// Node is one sensor or the sink: a position, a role, a radio parameter
// set, and an energy ledger. Identity is by pointer, not position.
//
// The ledger is monotonically non-increasing: Spend clamps at zero and
// recomputes the alive flag. Nothing in wsnsim models recharge.
type Node struct {
	// Position is fixed at topology-generation time.
	Position Point

	// Role is Sensor or Sink at creation; protocols flip Sensor↔Head
	// per epoch and restore it on re-election.
	Role Role

	// Radio holds the node's energy-model coefficients. Shared defaults
	// come from the topology; individual nodes may be overridden.
	Radio energy.Params

	remaining float64 // joules left; never negative
	alive     bool    // remaining > 0, or Role == Sink
}
