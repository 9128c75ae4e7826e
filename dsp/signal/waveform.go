package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Kind selects a continuous-time reference waveform.
type Kind int

const (
	KindSine Kind = iota
	KindCosine
	KindRectangularPulse
	KindSinc
)

// String returns the canonical kind name.
func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindCosine:
		return "cosine"
	case KindRectangularPulse:
		return "rectangularPulse"
	case KindSinc:
		return "sinc"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a waveform name. "rect" is accepted for the
// rectangular pulse.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return KindSine, nil
	case "cosine", "cos":
		return KindCosine, nil
	case "rectangularpulse", "rect", "rectangular":
		return KindRectangularPulse, nil
	case "sinc":
		return KindSinc, nil
	default:
		return KindSine, fmt.Errorf("%w: unknown waveform kind %q", core.ErrInvalidParameter, name)
	}
}

// Params holds the shape parameters. Amplitude, Frequency and Phase apply
// to sine and cosine, HalfWidth to the rectangular pulse. Sinc ignores all.
type Params struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	HalfWidth float64
}

// DefaultParams returns unit amplitude, unit frequency, zero phase and a
// pulse of half-width 1.
func DefaultParams() Params {
	return Params{
		Amplitude: 1,
		Frequency: 1,
		HalfWidth: 1,
	}
}

// Evaluate returns the waveform value at x.
func Evaluate(kind Kind, x float64, p Params) float64 {
	switch kind {
	case KindSine:
		return p.Amplitude * math.Sin(2*math.Pi*p.Frequency*x+p.Phase)
	case KindCosine:
		return p.Amplitude * math.Cos(2*math.Pi*p.Frequency*x+p.Phase)
	case KindRectangularPulse:
		// Hard edges; |x| == HalfWidth is outside.
		if math.Abs(x) < p.HalfWidth {
			return 1
		}
		return 0
	case KindSinc:
		return core.Sinc(x)
	default:
		return 0
	}
}

// Sample evaluates kind at resolution evenly spaced points spanning domain,
// both ends included. resolution must be >= 2.
func Sample(kind Kind, domain core.Range, resolution int, p Params) (core.Series, error) {
	if kind < KindSine || kind > KindSinc {
		return nil, fmt.Errorf("%w: unknown waveform kind %d", core.ErrInvalidParameter, int(kind))
	}
	if kind == KindRectangularPulse && p.HalfWidth < 0 {
		return nil, fmt.Errorf("%w: pulse half-width must be >= 0: %f", core.ErrInvalidParameter, p.HalfWidth)
	}

	xs, err := domain.Grid(resolution)
	if err != nil {
		return nil, err
	}

	out := make(core.Series, len(xs))
	for i, x := range xs {
		out[i] = core.Point{X: x, Y: Evaluate(kind, x, p)}
	}
	return out, nil
}
