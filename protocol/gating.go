// Package protocol - threshold gating, parameter broadcast, and the
// runtime parameter-update operation.
package protocol

import (
	"math"

	"github.com/katalvlaran/wsnsim/core"
)

// transmits decides whether node i sends its sensed value this round.
//
// AlwaysTransmit sends unconditionally. ThresholdGated sends iff the
// value clears the hard threshold AND any of: the node never
// transmitted, the change since its last transmission clears the soft
// threshold, or the silence counter reached count-time. On a send the
// last-transmitted value updates and the silence counter resets; the
// counter was already advanced during sensing.
//
// Members read the triple their cluster head broadcast this epoch,
// permitting per-cluster divergence; heads and unassigned nodes fall
// back to the protocol-wide defaults.
//
// Complexity: O(1).
func (r *Router) transmits(i int, value float64) bool {
	if r.cfg.Gating == AlwaysTransmit {
		return true
	}

	th := r.thresholdsFor(i)

	// Event gate: is the value important at all?
	if value < th.Hard {
		return false
	}

	send := !r.everTx[i] ||
		math.Abs(value-r.lastTx[i]) >= th.Soft ||
		r.sinceTx[i] >= th.CountTime
	if !send {
		return false
	}

	r.lastTx[i] = value
	r.everTx[i] = true
	r.sinceTx[i] = 0

	return true
}

// thresholdsFor resolves the (HT, ST, CT) triple in effect for node i:
// the triple its head broadcast, or the protocol-wide defaults.
func (r *Router) thresholdsFor(i int) Thresholds {
	if h := r.memberOf[i]; h >= 0 && r.isHead[h] {
		return r.headParams[h]
	}

	return r.cfg.Thresholds
}

// broadcastThresholds records the current protocol-wide triple as
// broadcast by every head and charges the control traffic: the head
// transmits ControlBits to its farthest member, every alive member
// receives ControlBits. Runs during each setup phase, which also
// settles any pending runtime update.
//
// Complexity: O(n).
func (r *Router) broadcastThresholds() {
	for _, h := range r.heads {
		r.headParams[h] = r.cfg.Thresholds
		r.chargeBroadcast(h)
	}
	r.rebroadcast = false
}

// chargeBroadcast bills one control broadcast from head h to its
// current members. A memberless head broadcasts nothing.
func (r *Router) chargeBroadcast(h int) {
	head := r.nodes[h]

	var reach float64
	var members int
	for i, n := range r.nodes {
		if r.memberOf[i] != h || !n.Alive() {
			continue
		}
		members++
		reach = math.Max(reach, core.Dist(n.Position, head.Position))
		n.SpendReceive(r.cfg.ControlBits)
	}
	if members > 0 && head.Alive() {
		head.SpendTransmit(r.cfg.ControlBits, reach)
	}
}

// UpdateParameters mutates the protocol-wide (HT, ST, CT) defaults at
// runtime — the adaptive query path. Triples already broadcast this
// epoch remain in effect until the next epoch boundary; every head is
// marked for re-broadcast at the next setup phase. Each alive current
// head is charged one control receive for the query itself.
//
// Error Conditions: ErrNotInitialized before Initialize;
// ErrBadThresholds for negative HT/ST or non-positive CT (no clamp).
//
// Complexity: O(heads).
func (r *Router) UpdateParameters(hard, soft float64, countTime int) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	next := Thresholds{Hard: hard, Soft: soft, CountTime: countTime}
	if err := next.Validate(); err != nil {
		return err
	}

	r.cfg.Thresholds = next
	r.rebroadcast = true

	// The sink's query reaches every living head.
	for _, h := range r.heads {
		if r.nodes[h].Alive() {
			r.nodes[h].SpendReceive(r.cfg.ControlBits)
		}
	}

	return nil
}

// SetClusterThresholds overrides the triple for one current cluster
// head, re-broadcasting it to the head's members immediately. This is
// the per-cluster adaptability path: different clusters may run with
// different thresholds within the same epoch.
//
// Error Conditions: ErrNotInitialized, ErrBadThresholds, and ErrNotAHead
// when h does not index a current cluster head.
//
// Complexity: O(n) for the broadcast billing.
func (r *Router) SetClusterThresholds(h int, t Thresholds) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if h < 0 || h >= len(r.nodes) || !r.isHead[h] {
		return ErrNotAHead
	}

	r.headParams[h] = t
	r.chargeBroadcast(h)

	return nil
}
