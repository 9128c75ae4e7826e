package pulse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// singularityTol is the relative distance from the |t| = 1/(2*rollOff)
// pole of the closed form inside which the analytic limit is used.
const singularityTol = 1e-9

// Params configures a sampled pulse.
type Params struct {
	// RollOff is the excess-bandwidth factor beta in [0, 1]. Zero is the
	// ideal brick-wall (pure sinc) pulse.
	RollOff float64
	// SamplesPerSymbol is the oversampling factor, >= 1.
	SamplesPerSymbol int
	// SpanSymbols is the one-sided length of the response in symbols, >= 1.
	SpanSymbols int
}

// DefaultParams returns roll-off 0.5 at 8 samples per symbol over a span of
// 4 symbols (64 samples).
func DefaultParams() Params {
	return Params{
		RollOff:          0.5,
		SamplesPerSymbol: 8,
		SpanSymbols:      4,
	}
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if math.IsNaN(p.RollOff) || p.RollOff < 0 || p.RollOff > 1 {
		return fmt.Errorf("%w: roll-off must be in [0,1]: %f", core.ErrInvalidParameter, p.RollOff)
	}
	if p.SamplesPerSymbol < 1 {
		return fmt.Errorf("%w: samples per symbol must be >= 1: %d", core.ErrInvalidParameter, p.SamplesPerSymbol)
	}
	if p.SpanSymbols < 1 {
		return fmt.Errorf("%w: span must be >= 1 symbol: %d", core.ErrInvalidParameter, p.SpanSymbols)
	}
	return nil
}

// RaisedCosineAt evaluates the raised-cosine impulse response at t, in
// symbol periods:
//
//	h(t) = sinc(t) * cos(pi*beta*t) / (1 - (2*beta*t)^2)
//
// h(0) is exactly 1 and h(+-1/(2*beta)) is (pi/4)*sinc(1/(2*beta)).
func RaisedCosineAt(t, rollOff float64) float64 {
	if t == 0 {
		return 1
	}
	if rollOff > 0 {
		edge := 1 / (2 * rollOff)
		if math.Abs(math.Abs(t)-edge) <= singularityTol*edge {
			return math.Pi / 4 * core.Sinc(edge)
		}
	}
	b := 2 * rollOff * t
	return core.Sinc(t) * math.Cos(math.Pi*rollOff*t) / (1 - b*b)
}

// RaisedCosine samples the response at offsets i in
// [-span*sps, span*sps), t = i/sps. X holds t in symbol periods.
func RaisedCosine(p Params) (core.Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	half := p.SpanSymbols * p.SamplesPerSymbol
	out := make(core.Series, 2*half)
	for i := -half; i < half; i++ {
		t := float64(i) / float64(p.SamplesPerSymbol)
		out[i+half] = core.Point{X: t, Y: RaisedCosineAt(t, p.RollOff)}
	}
	return out, nil
}
