package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// minPadFactor zero-pads Transform inputs so the spectrum is drawn on a
// grid finer than the natural 1/(N*dx) bin spacing.
const minPadFactor = 4

// Bins returns the forward DFT of real samples. The length must be a power
// of two.
func Bins(samples []float64) ([]complex128, error) {
	n := len(samples)
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: fft length must be a power of two: %d", core.ErrInvalidParameter, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum init fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum forward fft: %w", err)
	}
	return out, nil
}

// Transform approximates the continuous Fourier transform magnitude of a
// uniformly sampled series. The result is centred on zero frequency, in
// cycles per unit of X, and scaled by the sample spacing so that a unit
// rectangular pulse maps to |sinc(f)|.
func Transform(s core.Series) (core.Series, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("%w: transform needs at least 2 points: %d", core.ErrInvalidParameter, len(s))
	}
	dx := s[1].X - s[0].X
	if !(dx > 0) {
		return nil, fmt.Errorf("%w: transform x must be strictly increasing", core.ErrInvalidParameter)
	}
	for i := 2; i < len(s); i++ {
		if math.Abs((s[i].X-s[i-1].X)-dx) > 1e-6*dx {
			return nil, fmt.Errorf("%w: transform x must be uniformly spaced at index %d", core.ErrInvalidParameter, i)
		}
	}

	n := nextPowerOfTwo(len(s)) * minPadFactor
	padded := make([]float64, n)
	for i, p := range s {
		padded[i] = p.Y
	}

	bins, err := Bins(padded)
	if err != nil {
		return nil, err
	}
	mag := Magnitude(bins)

	df := 1 / (float64(n) * dx)
	half := n / 2
	out := make(core.Series, n)
	for i := range out {
		// fftshift: negative frequencies first.
		k := (i + half) % n
		out[i] = core.Point{
			X: float64(i-half) * df,
			Y: mag[k] * dx,
		}
	}
	return out, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
