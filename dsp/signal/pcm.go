package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// MaxBitDepth bounds the quantizer resolution.
const MaxBitDepth = 24

// Levels returns the number of quantizer levels for bits.
func Levels(bits int) int {
	return 1 << bits
}

// Quantize maps v in [-1, 1] onto the nearest of 2^bits uniformly spaced
// levels spanning [-1, 1]. Inputs outside the interval are clipped first.
func Quantize(v float64, bits int) (float64, error) {
	if bits < 1 || bits > MaxBitDepth {
		return 0, fmt.Errorf("%w: bit depth must be in [1,%d]: %d", core.ErrInvalidParameter, MaxBitDepth, bits)
	}
	steps := float64(Levels(bits) - 1)
	v = core.Clamp(v, -1, 1)
	return math.Round((v+1)/2*steps)/steps*2 - 1, nil
}

// QuantizeSeries quantizes the amplitudes of s and returns a new series.
func QuantizeSeries(s core.Series, bits int) (core.Series, error) {
	out := make(core.Series, len(s))
	for i, p := range s {
		q, err := Quantize(p.Y, bits)
		if err != nil {
			return nil, err
		}
		out[i] = core.Point{X: p.X, Y: q}
	}
	return out, nil
}

// SQNR returns the theoretical signal-to-quantization-noise ratio in dB of
// a full-scale sine through a bits-deep uniform quantizer.
func SQNR(bits int) float64 {
	return 6.02*float64(bits) + 1.76
}
