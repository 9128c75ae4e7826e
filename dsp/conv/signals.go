package conv

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Signal is a continuous-time signal.
type Signal func(t float64) float64

// Rect returns the unit pulse that is 1 on [lo, hi], edges included, and 0
// elsewhere.
func Rect(lo, hi float64) Signal {
	return func(t float64) float64 {
		if t >= lo && t <= hi {
			return 1
		}
		return 0
	}
}

// Defaults of the convolution widget: x = rect[0,2], h = rect[0,1],
// integrated over τ in [-5, 10] at step 0.05.
var (
	DefaultSupport = core.Range{Min: -5, Max: 10}
	DefaultX       = Rect(0, 2)
	DefaultH       = Rect(0, 1)
)

// DefaultStep is the integration step of the convolution integral.
const DefaultStep = 0.05

// Integral evaluates y(t) = ∫ x(τ)·h(t−τ) dτ by a Riemann sum over a fixed
// τ grid. x is sampled once; h is sampled per evaluation.
type Integral struct {
	x, h    Signal
	support core.Range
	step    float64
	tau     []float64
	xs      []float64
	scratch []float64
}

// Option configures an Integral.
type Option func(*Integral)

// WithSupport sets the τ range of the integral. Signals must vanish
// outside it for the sum to match the true integral.
func WithSupport(r core.Range) Option {
	return func(c *Integral) { c.support = r }
}

// WithStep sets the integration step. Non-positive values are ignored.
func WithStep(step float64) Option {
	return func(c *Integral) {
		if step > 0 {
			c.step = step
		}
	}
}

// NewIntegral returns the convolution integral of x and h.
func NewIntegral(x, h Signal, opts ...Option) (*Integral, error) {
	if x == nil || h == nil {
		return nil, fmt.Errorf("%w: convolution signals must not be nil", core.ErrInvalidParameter)
	}
	c := &Integral{x: x, h: h, support: DefaultSupport, step: DefaultStep}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	tau, err := StepGrid(c.support, c.step)
	if err != nil {
		return nil, err
	}
	c.tau = tau
	c.xs = make([]float64, len(tau))
	for i, v := range tau {
		c.xs[i] = x(v)
	}
	c.scratch = make([]float64, len(tau))
	return c, nil
}

// Support returns the τ range of the integral.
func (c *Integral) Support() core.Range { return c.support }

// At returns y(t). Not safe for concurrent use.
func (c *Integral) At(t float64) float64 {
	for i, v := range c.tau {
		c.scratch[i] = c.h(t - v)
	}
	return vecmath.DotProduct(c.xs, c.scratch) * c.step
}

// Output samples y on r every step.
func (c *Integral) Output(r core.Range, step float64) (core.Series, error) {
	ts, err := StepGrid(r, step)
	if err != nil {
		return nil, err
	}
	out := make(core.Series, len(ts))
	for i, t := range ts {
		out[i] = core.Point{X: t, Y: c.At(t)}
	}
	return out, nil
}

// Partial samples y from `from` up to offset every step: the part of the
// output already swept by a kernel slid to offset. It is empty while
// offset < from.
func (c *Integral) Partial(from, offset, step float64) (core.Series, error) {
	if offset < from {
		if step <= 0 || math.IsNaN(step) {
			return nil, fmt.Errorf("%w: step must be > 0: %v", core.ErrInvalidParameter, step)
		}
		return core.Series{}, nil
	}
	return c.Output(core.Range{Min: from, Max: offset}, step)
}

// Input samples x on r every step.
func (c *Integral) Input(r core.Range, step float64) (core.Series, error) {
	return sample(c.x, r, step)
}

// Kernel samples the flipped, shifted kernel h(offset−τ) on r every step.
func (c *Integral) Kernel(offset float64, r core.Range, step float64) (core.Series, error) {
	return sample(func(tau float64) float64 { return c.h(offset - tau) }, r, step)
}

func sample(s Signal, r core.Range, step float64) (core.Series, error) {
	ts, err := StepGrid(r, step)
	if err != nil {
		return nil, err
	}
	out := make(core.Series, len(ts))
	for i, t := range ts {
		out[i] = core.Point{X: t, Y: s(t)}
	}
	return out, nil
}

// StepGrid returns r.Min, r.Min+step, ... up to r.Max. r.Max is included
// when it lies on the grid up to rounding.
func StepGrid(r core.Range, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step must be > 0: %v", core.ErrInvalidParameter, step)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	n := int(math.Floor(r.Span()/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Min + float64(i)*step
	}
	return out, nil
}

// Convolve samples x*h on r every step using the default support and
// integration step.
func Convolve(x, h Signal, r core.Range, step float64) (core.Series, error) {
	c, err := NewIntegral(x, h)
	if err != nil {
		return nil, err
	}
	return c.Output(r, step)
}
