// Package energy - Params and the pure cost functions of the radio model.
package energy

import (
	"errors"
	"math"
)

// ErrBadCoefficient indicates a zero or negative radio coefficient.
// Every coefficient of the first-order model must be strictly positive.
var ErrBadCoefficient = errors.New("energy: radio coefficient must be positive")

// ErrBadAggRatio indicates an aggregation ratio outside (0, 1].
// A ratio of 1 means no compression; 0 or negative would destroy payloads.
var ErrBadAggRatio = errors.New("energy: aggregation ratio must be in (0, 1]")

// Params holds the coefficients of the first-order radio energy model.
// The zero value is invalid; start from DefaultParams and override fields.
//
// Fields:
//
//	ElecPerBit   — transceiver electronics energy, J/bit (both directions).
//	FreeSpaceAmp — amplifier energy in the free-space regime, J/bit/m².
//	MultipathAmp — amplifier energy in the multipath regime, J/bit/m⁴.
//	AggPerBit    — data-aggregation energy at a cluster head, J/bit.
//	AggRatio     — output/input size ratio after aggregation, in (0, 1].
type Params struct {
	ElecPerBit   float64
	FreeSpaceAmp float64
	MultipathAmp float64
	AggPerBit    float64
	AggRatio     float64
}

// DefaultParams returns the canonical first-order radio constants:
//
//	ElecPerBit   = 50 nJ/bit
//	FreeSpaceAmp = 10 pJ/bit/m²
//	MultipathAmp = 0.0013 pJ/bit/m⁴
//	AggPerBit    = 5 nJ/bit
//	AggRatio     = 0.6
//
// Complexity: O(1).
func DefaultParams() Params {
	return Params{
		ElecPerBit:   50e-9,
		FreeSpaceAmp: 10e-12,
		MultipathAmp: 0.0013e-12,
		AggPerBit:    5e-9,
		AggRatio:     0.6,
	}
}

// Validate checks that every coefficient is strictly positive and the
// aggregation ratio lies in (0, 1]. Returns ErrBadCoefficient or
// ErrBadAggRatio; nil when the Params are usable.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.ElecPerBit <= 0 || p.FreeSpaceAmp <= 0 || p.MultipathAmp <= 0 || p.AggPerBit <= 0 {
		return ErrBadCoefficient
	}
	if p.AggRatio <= 0 || p.AggRatio > 1 {
		return ErrBadAggRatio
	}

	return nil
}

// ThresholdDist returns the crossover distance between the free-space and
// multipath amplifier regimes: sqrt(FreeSpaceAmp / MultipathAmp).
// At exactly this distance both regimes yield the same amplifier cost.
//
// Complexity: O(1).
func (p Params) ThresholdDist() float64 {
	return math.Sqrt(p.FreeSpaceAmp / p.MultipathAmp)
}

// Transmit returns the energy in joules to send bits over distance d.
// Negative bits or distance are clamped to zero, so the result is always
// non-negative; d == 0 yields the electronics-only cost.
//
// Complexity: O(1).
func (p Params) Transmit(bits int, d float64) float64 {
	if bits <= 0 {
		return 0
	}
	if d < 0 {
		d = 0
	}
	b := float64(bits)

	// Electronics cost is regime-independent.
	cost := p.ElecPerBit * b

	// Amplifier cost switches regime at the crossover distance.
	if d < p.ThresholdDist() {
		cost += p.FreeSpaceAmp * b * d * d
	} else {
		cost += p.MultipathAmp * b * d * d * d * d
	}

	return cost
}

// Receive returns the energy in joules to receive bits: electronics only.
// Negative bits are clamped to zero.
//
// Complexity: O(1).
func (p Params) Receive(bits int) float64 {
	if bits <= 0 {
		return 0
	}

	return p.ElecPerBit * float64(bits)
}

// Aggregate returns the energy in joules for a cluster head to fuse bits
// of raw member data. Negative bits are clamped to zero.
//
// Complexity: O(1).
func (p Params) Aggregate(bits int) float64 {
	if bits <= 0 {
		return 0
	}

	return p.AggPerBit * float64(bits)
}

// Compress returns the payload size in bits after aggregation:
// ceil(AggRatio · bits). Negative bits are clamped to zero; a non-empty
// input never compresses to an empty payload.
//
// Complexity: O(1).
func (p Params) Compress(bits int) int {
	if bits <= 0 {
		return 0
	}

	return int(math.Ceil(p.AggRatio * float64(bits)))
}
