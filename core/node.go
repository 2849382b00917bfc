// Package core - Node construction and the energy-ledger mutation API.
package core

import "github.com/katalvlaran/wsnsim/energy"

// NewNode returns a Node at pos with the given role, initial energy
// budget, and radio parameters. A non-positive budget yields a node that
// is already dead — unless it is the sink, which is always alive.
//
// Complexity: O(1).
func NewNode(pos Point, role Role, initial float64, radio energy.Params) *Node {
	if initial < 0 {
		initial = 0
	}
	n := &Node{
		Position:  pos,
		Role:      role,
		Radio:     radio,
		remaining: initial,
	}
	n.alive = role == Sink || n.remaining > 0

	return n
}

// Energy returns the joules remaining in the ledger.
func (n *Node) Energy() float64 {
	return n.remaining
}

// Alive reports whether the node can still participate in the protocol.
// The sink is always alive regardless of its ledger.
func (n *Node) Alive() bool {
	return n.alive
}

// Spend charges j joules to the ledger, clamping at zero, and recomputes
// the alive flag. Failing to check Alive before spending is tolerated by
// design: a node overspending in its final round ends at exactly zero.
// Negative charges are ignored (the ledger never increases).
//
// Complexity: O(1).
func (n *Node) Spend(j float64) {
	if j <= 0 {
		return
	}
	n.remaining -= j
	if n.remaining <= 0 {
		n.remaining = 0
	}
	n.alive = n.Role == Sink || n.remaining > 0
}

// SpendTransmit charges the cost of sending bits over distance d,
// composing the radio model with the ledger.
//
// Complexity: O(1).
func (n *Node) SpendTransmit(bits int, d float64) {
	n.Spend(n.Radio.Transmit(bits, d))
}

// SpendReceive charges the cost of receiving bits.
//
// Complexity: O(1).
func (n *Node) SpendReceive(bits int) {
	n.Spend(n.Radio.Receive(bits))
}

// SpendAggregate charges the cost of fusing bits of raw member data.
//
// Complexity: O(1).
func (n *Node) SpendAggregate(bits int) {
	n.Spend(n.Radio.Aggregate(bits))
}
