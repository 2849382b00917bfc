package energy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsnsim/energy"
)

// TestDefaultParams_Valid verifies the shipped constants pass validation.
func TestDefaultParams_Valid(t *testing.T) {
	assert.NoError(t, energy.DefaultParams().Validate(), "default params must validate")
}

// TestParams_Validate_BadCoefficient ensures each non-positive coefficient
// is rejected with ErrBadCoefficient.
func TestParams_Validate_BadCoefficient(t *testing.T) {
	base := energy.DefaultParams()

	for name, mutate := range map[string]func(*energy.Params){
		"elec":       func(p *energy.Params) { p.ElecPerBit = 0 },
		"free-space": func(p *energy.Params) { p.FreeSpaceAmp = -1 },
		"multipath":  func(p *energy.Params) { p.MultipathAmp = 0 },
		"agg":        func(p *energy.Params) { p.AggPerBit = -5e-9 },
	} {
		p := base
		mutate(&p)
		assert.ErrorIs(t, p.Validate(), energy.ErrBadCoefficient, name)
	}
}

// TestParams_Validate_BadAggRatio ensures ratios outside (0,1] error.
func TestParams_Validate_BadAggRatio(t *testing.T) {
	p := energy.DefaultParams()
	p.AggRatio = 0
	assert.ErrorIs(t, p.Validate(), energy.ErrBadAggRatio, "zero ratio")

	p.AggRatio = 1.5
	assert.ErrorIs(t, p.Validate(), energy.ErrBadAggRatio, "ratio above 1")
}

// TestTransmit_ZeroDistance checks d==0 yields electronics-only cost.
func TestTransmit_ZeroDistance(t *testing.T) {
	p := energy.DefaultParams()
	assert.InDelta(t, p.ElecPerBit*4096, p.Transmit(4096, 0), 1e-18,
		"zero distance must cost electronics only")
}

// TestTransmit_RegimeCrossover verifies the free-space and multipath
// amplifier costs agree at the crossover distance and diverge around it.
func TestTransmit_RegimeCrossover(t *testing.T) {
	p := energy.DefaultParams()
	d0 := p.ThresholdDist()
	require.Greater(t, d0, 0.0)

	const bits = 1000
	b := float64(bits)

	// At exactly d0 both formulas coincide; Transmit uses multipath there.
	fs := p.ElecPerBit*b + p.FreeSpaceAmp*b*d0*d0
	mp := p.ElecPerBit*b + p.MultipathAmp*b*math.Pow(d0, 4)
	assert.InDelta(t, fs, mp, fs*1e-12, "regimes must agree at crossover")
	assert.InDelta(t, mp, p.Transmit(bits, d0), mp*1e-12)

	// Just below the crossover the free-space formula applies.
	d := d0 * 0.5
	assert.InDelta(t, p.ElecPerBit*b+p.FreeSpaceAmp*b*d*d, p.Transmit(bits, d), 1e-18)

	// Beyond the crossover the multipath term dominates quickly.
	assert.Greater(t, p.Transmit(bits, d0*2), p.Transmit(bits, d0),
		"cost must grow with distance")
}

// TestReceive_AndAggregate checks the electronics-only and per-bit fees.
func TestReceive_AndAggregate(t *testing.T) {
	p := energy.DefaultParams()
	assert.InDelta(t, p.ElecPerBit*128, p.Receive(128), 1e-18)
	assert.InDelta(t, p.AggPerBit*4096, p.Aggregate(4096), 1e-18)
}

// TestCosts_NegativeInputsClampToZero ensures no cost is ever negative.
func TestCosts_NegativeInputsClampToZero(t *testing.T) {
	p := energy.DefaultParams()
	assert.Zero(t, p.Transmit(-1, 10))
	assert.Zero(t, p.Receive(-1))
	assert.Zero(t, p.Aggregate(-1))
	assert.GreaterOrEqual(t, p.Transmit(100, -5.0), 0.0, "negative distance clamps")
}

// TestCompress verifies ceiling behavior and the non-empty guarantee.
func TestCompress(t *testing.T) {
	p := energy.DefaultParams() // ratio 0.6
	assert.Equal(t, 2458, p.Compress(4096), "ceil(0.6*4096)")
	assert.Equal(t, 1, p.Compress(1), "non-empty input stays non-empty")
	assert.Zero(t, p.Compress(0))
}
