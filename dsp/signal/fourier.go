package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/window"
)

// SquareSeries synthesizes the Fourier partial sum of a unit square wave,
//
//	sum over odd n <= harmonics of w(n) * 4/(pi*n) * sin(n*t),
//
// at resolution points of t spanning domain. With window.TypeRectangular
// every term has weight 1 and the sum shows the Gibbs overshoot (about 9%
// of the jump). Any other taper weights harmonic n with the falling half of
// the window, window.At(taper, 0.5 + n/(2*(harmonics+1))), so the
// fundamental keeps full weight and the truncation edge is smoothed.
func SquareSeries(harmonics int, taper window.Type, domain core.Range, resolution int) (core.Series, error) {
	if harmonics < 1 {
		return nil, fmt.Errorf("%w: harmonics must be >= 1: %d", core.ErrInvalidParameter, harmonics)
	}
	ts, err := domain.Grid(resolution)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, harmonics+1)
	for n := 1; n <= harmonics; n += 2 {
		weights[n] = window.At(taper, 0.5+float64(n)/float64(2*(harmonics+1)))
	}

	out := make(core.Series, len(ts))
	for i, t := range ts {
		v := 0.0
		for n := 1; n <= harmonics; n += 2 {
			v += weights[n] * 4 / (math.Pi * float64(n)) * math.Sin(float64(n)*t)
		}
		out[i] = core.Point{X: t, Y: v}
	}
	return out, nil
}
