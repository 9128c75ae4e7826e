package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Single-slit defaults: slit width in mm, wavelength in µm, and the
// angular span sampled either side of the optical axis in radians.
const (
	DefaultSlitWidth      = 0.1
	DefaultWavelength     = 0.5
	DiffractionResolution = 200
	diffractionHalfAngle  = 0.2
)

// SlitDiffraction returns the far-field intensity of a single slit,
// I(θ) = sinc²(a·sinθ/λ), over resolution angles θ = i/N·0.4 − 0.2. The
// pattern is the squared Fourier transform of the aperture, so a narrower
// slit gives a wider central lobe.
func SlitDiffraction(slitWidth, wavelength float64, resolution int) (core.Series, error) {
	if slitWidth <= 0 {
		return nil, fmt.Errorf("%w: slit width must be > 0: %f", core.ErrInvalidParameter, slitWidth)
	}
	if wavelength <= 0 {
		return nil, fmt.Errorf("%w: wavelength must be > 0: %f", core.ErrInvalidParameter, wavelength)
	}
	if resolution < 2 {
		return nil, fmt.Errorf("%w: resolution must be >= 2: %d", core.ErrInvalidParameter, resolution)
	}
	// µm to mm.
	lambda := wavelength * 1e-3
	out := make(core.Series, resolution)
	for i := range out {
		theta := float64(i)/float64(resolution)*2*diffractionHalfAngle - diffractionHalfAngle
		s := core.Sinc(slitWidth * math.Sin(theta) / lambda)
		out[i] = core.Point{X: theta, Y: s * s}
	}
	return out, nil
}

// Euler helix defaults.
const (
	HelixSegments = 200
	HelixLength   = 10
)

// HelixPoint is one point of the helix traced by A·e^{jft}: the phasor and
// its position along the time axis, centred on the middle of the trace.
type HelixPoint struct {
	Z      float64
	Phasor complex128
}

// Helix samples A·e^{jft} at segments+1 instants over [0, length]. Its
// projections onto the real and imaginary planes are the cosine and sine
// of Euler's formula.
func Helix(frequency, amplitude, length float64, segments int) ([]HelixPoint, error) {
	if segments < 1 {
		return nil, fmt.Errorf("%w: segments must be >= 1: %d", core.ErrInvalidParameter, segments)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: length must be > 0: %f", core.ErrInvalidParameter, length)
	}
	out := make([]HelixPoint, segments+1)
	for i := range out {
		t := float64(i) / float64(segments) * length
		out[i] = HelixPoint{Z: t - length/2, Phasor: cmplx.Rect(amplitude, frequency*t)}
	}
	return out, nil
}
