package constellation

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateCleanChannel(t *testing.T) {
	pts, _ := QAM(DefaultOrder)
	sent, rx, err := Simulate(pts, 200, Channel{}, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	require.Len(t, rx, 200)
	for i := range sent {
		assert.Equal(t, pts[sent[i]], rx[i])
	}
	ser, err := SymbolErrorRate(sent, Decide(pts, rx))
	require.NoError(t, err)
	assert.Equal(t, 0.0, ser)
	evm, err := EVM(pts, sent, rx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, evm)
}

func TestSimulateDeterministic(t *testing.T) {
	pts, _ := QAM(16)
	ch := Channel{NoiseAmplitude: 0.1, PhaseJitter: 0.05, Gaussian: true}
	s1, r1, err := Simulate(pts, 50, ch, rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)
	s2, r2, err := Simulate(pts, 50, ch, rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestSmallUniformNoiseNeverCrossesDecisionBoundary(t *testing.T) {
	// Half the 16-QAM spacing is 1/3; uniform noise of 0.3 per axis stays
	// inside the decision cell.
	pts, _ := QAM(16)
	sent, rx, err := Simulate(pts, DefaultSymbols, Channel{NoiseAmplitude: 0.3}, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	ser, err := SymbolErrorRate(sent, Decide(pts, rx))
	require.NoError(t, err)
	assert.Equal(t, 0.0, ser)

	evm, err := EVM(pts, sent, rx)
	require.NoError(t, err)
	// Uniform noise on both axes: RMS |e| = 0.3*sqrt(2/3); reference RMS = sqrt(10/9).
	want := 0.3 * math.Sqrt(2.0/3) / math.Sqrt(10.0/9)
	assert.InDelta(t, want, evm, 0.02)
}

func TestNoiseRaisesErrorRate(t *testing.T) {
	pts, _ := QAM(64)
	rate := func(sigma float64) float64 {
		sent, rx, err := Simulate(pts, 2000, Channel{NoiseAmplitude: sigma, Gaussian: true}, rand.New(rand.NewPCG(3, 4)))
		require.NoError(t, err)
		ser, err := SymbolErrorRate(sent, Decide(pts, rx))
		require.NoError(t, err)
		return ser
	}
	low, high := rate(0.02), rate(0.3)
	assert.Less(t, low, 0.01)
	assert.Greater(t, high, 0.3)
}

func TestPhaseJitterPreservesMagnitude(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	ch := Channel{PhaseJitter: 0.5}
	p := complex(1, 1)
	for range 100 {
		r := ch.Apply(p, rng)
		assert.InDelta(t, cmplx.Abs(p), cmplx.Abs(r), 1e-12)
		assert.LessOrEqual(t, math.Abs(cmplx.Phase(r)-cmplx.Phase(p)), 0.25*math.Pi+1e-12)
	}
}

func TestChannelValidation(t *testing.T) {
	pts, _ := QAM(4)
	rng := rand.New(rand.NewPCG(1, 1))
	_, _, err := Simulate(pts, 1, Channel{NoiseAmplitude: -1}, rng)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, _, err = Simulate(pts, 1, Channel{PhaseJitter: math.NaN()}, rng)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, _, err = Simulate(nil, 1, DefaultChannel(), rng)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, _, err = Simulate(pts, -1, DefaultChannel(), rng)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, _, err = Simulate(pts, 1, DefaultChannel(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = SymbolErrorRate([]int{1}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = EVM(pts, []int{7}, []complex128{0})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = EVM(pts, nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}
