package pn

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// DefaultChips is the 8-chip spreading code used by the DSSS demo.
func DefaultChips() []float64 {
	return []float64{1, -1, 1, 1, -1, 1, -1, -1}
}

// Bipolar maps bits to levels: 1 -> +1, 0 -> -1.
func Bipolar(bits []uint8) []float64 {
	out := make([]float64, len(bits))
	for i, b := range bits {
		if b != 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// Chips draws an n-chip bipolar code from g.
func Chips(g *Generator, n int) []float64 {
	return Bipolar(g.Bits(n))
}

// Spread multiplies each bipolar data bit by the whole chip code.
// The result has len(bits)*len(chips) samples.
func Spread(bits []uint8, chips []float64) ([]float64, error) {
	if len(chips) == 0 {
		return nil, fmt.Errorf("%w: chip code must not be empty", core.ErrInvalidParameter)
	}
	out := make([]float64, 0, len(bits)*len(chips))
	for _, level := range Bipolar(bits) {
		for _, c := range chips {
			out = append(out, level*c)
		}
	}
	return out, nil
}

// Despread correlates each chip-length block of signal with chips. It
// returns the decided bits and the per-bit correlation normalized to
// [-1, 1] for a clean signal.
func Despread(signal, chips []float64) ([]uint8, []float64, error) {
	n := len(chips)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: chip code must not be empty", core.ErrInvalidParameter)
	}
	if len(signal)%n != 0 {
		return nil, nil, fmt.Errorf("%w: signal length must be a multiple of %d chips: %d",
			core.ErrInvalidParameter, n, len(signal))
	}
	energy := floats.Dot(chips, chips)
	if energy == 0 {
		return nil, nil, fmt.Errorf("%w: chip code must not be all zero", core.ErrInvalidParameter)
	}

	bits := make([]uint8, len(signal)/n)
	corr := make([]float64, len(bits))
	for i := range bits {
		sum := floats.Dot(signal[i*n:(i+1)*n], chips)
		corr[i] = sum / energy
		if sum > 0 {
			bits[i] = 1
		}
	}
	return bits, corr, nil
}
