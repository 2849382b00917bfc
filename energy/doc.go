// Package energy implements the first-order radio energy model used by
// every routing protocol in wsnsim.
//
// Overview:
//
//   - Transmitting b bits over distance d costs electronics energy plus
//     amplifier energy. Below the crossover distance the amplifier works
//     in the free-space regime (d² attenuation); at or above it, in the
//     multipath regime (d⁴ attenuation).
//   - Receiving b bits costs electronics energy only.
//   - Aggregating b bits at a cluster head costs a fixed per-bit fee and
//     compresses the payload by a configurable ratio.
//
// All cost functions are pure: they read only their explicit inputs and
// the Params value they hang off, never hidden globals. Costs are always
// non-negative; distance 0 yields the electronics-only cost.
//
// Key formulas (for Params p, b bits, distance d):
//
//	transmit(b, d) = p.ElecPerBit·b + ampl(b, d)
//	ampl(b, d)     = p.FreeSpaceAmp·b·d²   if d <  p.ThresholdDist()
//	                 p.MultipathAmp·b·d⁴   if d ≥  p.ThresholdDist()
//	receive(b)     = p.ElecPerBit·b
//	aggregate(b)   = p.AggPerBit·b
//
// The crossover distance is derived, not stored:
//
//	ThresholdDist() = sqrt(p.FreeSpaceAmp / p.MultipathAmp)
//
// Error handling (sentinel errors):
//
//   - ErrBadCoefficient: a radio coefficient is zero or negative.
//   - ErrBadAggRatio:    the aggregation ratio is outside (0, 1].
//
// Validation is explicit via Params.Validate; the cost methods assume a
// validated Params and clamp negative bit counts/distances to zero so
// they can never return a negative cost.
package energy
