package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// IsAliased reports whether sampling a tone of fSignal at fSampling
// violates the Nyquist criterion (fSampling < 2*fSignal).
func IsAliased(fSignal, fSampling float64) bool {
	return fSampling < 2*math.Abs(fSignal)
}

// PerceivedFrequency returns the frequency a listener reconstructs from
// samples of a tone at fSignal taken at fSampling: the distance from
// fSignal to the nearest multiple of fSampling. It equals |fSignal| when the
// tone is not aliased.
func PerceivedFrequency(fSignal, fSampling float64) (float64, error) {
	if fSampling <= 0 {
		return 0, fmt.Errorf("%w: sampling frequency must be > 0: %f", core.ErrInvalidParameter, fSampling)
	}
	f := math.Abs(fSignal)
	return math.Abs(f - math.Round(f/fSampling)*fSampling), nil
}

// SampleInstants returns the samples of sin(2*pi*fSignal*t) taken every
// 1/fSampling from t = 0 up to and including tMax.
func SampleInstants(fSignal, fSampling, tMax float64) (core.Series, error) {
	if fSampling <= 0 {
		return nil, fmt.Errorf("%w: sampling frequency must be > 0: %f", core.ErrInvalidParameter, fSampling)
	}
	if tMax < 0 {
		return nil, fmt.Errorf("%w: duration must be >= 0: %f", core.ErrInvalidParameter, tMax)
	}

	// Index-based instants avoid drift from accumulating 1/fs.
	n := int(math.Floor(tMax*fSampling+1e-9)) + 1
	out := make(core.Series, n)
	for k := range out {
		t := float64(k) / fSampling
		out[k] = core.Point{X: t, Y: math.Sin(2 * math.Pi * fSignal * t)}
	}
	return out, nil
}
