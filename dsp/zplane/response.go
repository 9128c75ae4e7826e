package zplane

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// DefaultEpsilon floors the pole-distance product so a pole on the unit
// circle yields a large finite gain instead of +Inf.
const DefaultEpsilon = 1e-3

// Sample is one point of a magnitude response. AngleFraction is ω/π, so
// 1 is the Nyquist frequency.
type Sample struct {
	AngleFraction float64
	Magnitude     float64
}

type config struct {
	epsilon    float64
	fullCircle bool
}

// Option configures response evaluation.
type Option func(*config)

// WithEpsilon sets the denominator floor. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 && !math.IsInf(eps, 0) {
			c.epsilon = eps
		}
	}
}

// WithFullCircle evaluates ω over [0, 2π) instead of [0, π).
func WithFullCircle() Option {
	return func(c *config) {
		c.fullCircle = true
	}
}

func applyOptions(opts []Option) config {
	c := config{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// FrequencyResponse samples the magnitude response at resolution angles
// ω_k = k/resolution·π, k in [0, resolution). With WithFullCircle the
// angles span [0, 2π).
func FrequencyResponse(poles, zeros []complex128, resolution int, opts ...Option) ([]Sample, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: resolution must be >= 1: %d", core.ErrInvalidParameter, resolution)
	}
	if err := validatePoints("pole", poles); err != nil {
		return nil, err
	}
	if err := validatePoints("zero", zeros); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	turns := 1.0
	if cfg.fullCircle {
		turns = 2
	}
	circle := make([]complex128, resolution)
	for k := range circle {
		circle[k] = cmplx.Rect(1, float64(k)/float64(resolution)*turns*math.Pi)
	}

	num := distanceProduct(circle, zeros)
	den := distanceProduct(circle, poles)

	out := make([]Sample, resolution)
	for k := range out {
		out[k] = Sample{
			AngleFraction: float64(k) / float64(resolution) * turns,
			Magnitude:     num[k] / math.Max(den[k], cfg.epsilon),
		}
	}
	return out, nil
}

// distanceProduct returns Π_i |circle[k] - points[i]| for every k.
func distanceProduct(circle, points []complex128) []float64 {
	prod := make([]float64, len(circle))
	for k := range prod {
		prod[k] = 1
	}
	dist := make([]float64, len(circle))
	for _, p := range points {
		for k, z := range circle {
			dist[k] = cmplx.Abs(z - p)
		}
		vecmath.MulBlockInPlace(prod, dist)
	}
	return prod
}

// Magnitude evaluates the response at a single angle omega in radians.
func Magnitude(poles, zeros []complex128, omega float64, opts ...Option) float64 {
	cfg := applyOptions(opts)
	z := cmplx.Rect(1, omega)
	num, den := 1.0, 1.0
	for _, q := range zeros {
		num *= cmplx.Abs(z - q)
	}
	for _, p := range poles {
		den *= cmplx.Abs(z - p)
	}
	return num / math.Max(den, cfg.epsilon)
}

// MagnitudeDB converts a response to decibels, clamping silent bins to
// floorDB.
func MagnitudeDB(samples []Sample, floorDB float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		if s.Magnitude <= 0 {
			out[i] = floorDB
			continue
		}
		out[i] = math.Max(core.LinearToDB(s.Magnitude), floorDB)
	}
	return out
}

func validatePoints(kind string, pts []complex128) error {
	for i, p := range pts {
		if cmplx.IsNaN(p) || cmplx.IsInf(p) {
			return fmt.Errorf("%w: %s %d must be finite: %v", core.ErrInvalidParameter, kind, i, p)
		}
	}
	return nil
}
