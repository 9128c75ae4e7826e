package pulse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// RootRaisedCosineAt evaluates the root-raised-cosine impulse response at
// t, in symbol periods. Cascading two RRC filters yields a raised cosine,
// which is how the shaping is split between transmitter and receiver.
func RootRaisedCosineAt(t, rollOff float64) float64 {
	b := rollOff
	if t == 0 {
		return 1 - b + 4*b/math.Pi
	}
	if b > 0 && math.Abs(math.Abs(4*b*t)-1) < singularityTol {
		s, c := math.Sincos(math.Pi / (4 * b))
		return b / math.Sqrt2 * ((1+2/math.Pi)*s + (1-2/math.Pi)*c)
	}
	x := 4 * b * t
	num := math.Sin(math.Pi*t*(1-b)) + x*math.Cos(math.Pi*t*(1+b))
	den := math.Pi * t * (1 - x*x)
	return num / den
}

// RootRaisedCosineTaps returns the 2*span*sps+1 symmetric RRC taps for
// t = -span..span, normalized to unit energy.
func RootRaisedCosineTaps(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	half := p.SpanSymbols * p.SamplesPerSymbol
	taps := make([]float64, 2*half+1)
	energy := 0.0
	for i := range taps {
		t := float64(i-half) / float64(p.SamplesPerSymbol)
		taps[i] = RootRaisedCosineAt(t, p.RollOff)
		energy += taps[i] * taps[i]
	}
	if energy == 0 {
		return nil, fmt.Errorf("%w: rrc taps have zero energy", core.ErrInvalidParameter)
	}
	scale := 1 / math.Sqrt(energy)
	for i := range taps {
		taps[i] *= scale
	}
	return taps, nil
}
