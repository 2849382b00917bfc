// Package sim - lifetime statistics over a recorded History.
package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes network lifetime and energy behavior over one run.
// Death-round fields hold -1 when the run ended before the event.
type Report struct {
	// Rounds is the number of executed rounds.
	Rounds int

	// FirstDeath is the round index of the first sensor death.
	FirstDeath int

	// HalfDeath is the round index at which half the population was dead.
	HalfDeath int

	// LastDeath is the round index at which the last sensor died.
	LastDeath int

	// TotalEnergy is the aggregate drain across the run, joules.
	TotalEnergy float64

	// MeanEnergyPerRound is the average per-round drain, joules.
	MeanEnergyPerRound float64

	// TotalTransmissions counts every successful hop of the run.
	TotalTransmissions int
}

// Report computes lifetime statistics from the recorded summaries.
//
// The death-round metrics follow the standard lifetime milestones:
// first death (stability period), half death, last death (full
// lifetime). An empty history yields the zero Report with death rounds
// at -1.
//
// Complexity: O(rounds).
func (h History) Report() Report {
	rep := Report{
		Rounds:     len(h.Rounds),
		FirstDeath: -1,
		HalfDeath:  -1,
		LastDeath:  -1,
	}
	if len(h.Rounds) == 0 {
		return rep
	}

	spent := make([]float64, len(h.Rounds))
	for i, sum := range h.Rounds {
		spent[i] = sum.EnergySpent
		rep.TotalTransmissions += sum.Transmissions

		if rep.FirstDeath < 0 && sum.Alive < h.Population {
			rep.FirstDeath = sum.Round
		}
		if rep.HalfDeath < 0 && 2*sum.Alive <= h.Population {
			rep.HalfDeath = sum.Round
		}
		if rep.LastDeath < 0 && sum.Alive == 0 {
			rep.LastDeath = sum.Round
		}
	}

	rep.TotalEnergy = floats.Sum(spent)
	rep.MeanEnergyPerRound = stat.Mean(spent, nil)

	return rep
}
