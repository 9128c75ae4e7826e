package constellation

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/cwbudde/algo-comms/dsp/core"
	timestats "github.com/cwbudde/algo-comms/stats/time"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSymbols is the number of samples drawn per widget refresh.
const DefaultSymbols = 1000

// Channel impairs constellation points.
type Channel struct {
	// NoiseAmplitude bounds uniform noise per axis, or is the standard
	// deviation per axis when Gaussian is set.
	NoiseAmplitude float64
	// PhaseJitter rotates each sample by a uniform angle in
	// ±PhaseJitter·π/2.
	PhaseJitter float64
	Gaussian    bool
}

// DefaultChannel returns light uniform noise without jitter.
func DefaultChannel() Channel {
	return Channel{NoiseAmplitude: 0.05}
}

// Validate checks the channel parameters.
func (c Channel) Validate() error {
	if math.IsNaN(c.NoiseAmplitude) || c.NoiseAmplitude < 0 || math.IsInf(c.NoiseAmplitude, 0) {
		return fmt.Errorf("%w: noise amplitude must be finite and >= 0: %v", core.ErrInvalidParameter, c.NoiseAmplitude)
	}
	if math.IsNaN(c.PhaseJitter) || c.PhaseJitter < 0 || math.IsInf(c.PhaseJitter, 0) {
		return fmt.Errorf("%w: phase jitter must be finite and >= 0: %v", core.ErrInvalidParameter, c.PhaseJitter)
	}
	return nil
}

// Apply returns one impaired copy of p.
func (c Channel) Apply(p complex128, rng *rand.Rand) complex128 {
	var ni, nq float64
	if c.Gaussian {
		if c.NoiseAmplitude > 0 {
			n := distuv.Normal{Mu: 0, Sigma: c.NoiseAmplitude, Src: rng}
			ni, nq = n.Rand(), n.Rand()
		}
	} else {
		ni = (rng.Float64()*2 - 1) * c.NoiseAmplitude
		nq = (rng.Float64()*2 - 1) * c.NoiseAmplitude
	}
	r := p + complex(ni, nq)
	if c.PhaseJitter > 0 {
		angle := (rng.Float64() - 0.5) * c.PhaseJitter * math.Pi
		r *= cmplx.Rect(1, angle)
	}
	return r
}

// Simulate draws n uniformly random symbols from points and passes them
// through ch. It returns the sent indices and the received samples.
func Simulate(points []complex128, n int, ch Channel, rng *rand.Rand) (sent []int, received []complex128, err error) {
	if len(points) == 0 {
		return nil, nil, fmt.Errorf("%w: constellation must not be empty", core.ErrInvalidParameter)
	}
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: symbol count must be >= 0: %d", core.ErrInvalidParameter, n)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%w: simulation needs a random source", core.ErrInvalidParameter)
	}
	if err := ch.Validate(); err != nil {
		return nil, nil, err
	}
	sent = make([]int, n)
	received = make([]complex128, n)
	for i := range sent {
		sent[i] = rng.IntN(len(points))
		received[i] = ch.Apply(points[sent[i]], rng)
	}
	return sent, received, nil
}

// SymbolErrorRate is the fraction of decisions that differ from sent.
func SymbolErrorRate(sent, decided []int) (float64, error) {
	if len(sent) != len(decided) {
		return 0, fmt.Errorf("%w: sent and decided lengths differ: %d vs %d", core.ErrInvalidParameter, len(sent), len(decided))
	}
	if len(sent) == 0 {
		return 0, nil
	}
	errs := 0
	for i := range sent {
		if sent[i] != decided[i] {
			errs++
		}
	}
	return float64(errs) / float64(len(sent)), nil
}

// EVM is the RMS error vector magnitude of received against the ideal
// points of sent, relative to the RMS magnitude of the constellation.
func EVM(points []complex128, sent []int, received []complex128) (float64, error) {
	if len(sent) != len(received) {
		return 0, fmt.Errorf("%w: sent and received lengths differ: %d vs %d", core.ErrInvalidParameter, len(sent), len(received))
	}
	if len(sent) == 0 {
		return 0, fmt.Errorf("%w: evm needs at least one symbol", core.ErrInvalidParameter)
	}
	errMag := make([]float64, len(sent))
	for i, s := range sent {
		if s < 0 || s >= len(points) {
			return 0, fmt.Errorf("%w: symbol index out of range: %d", core.ErrInvalidParameter, s)
		}
		errMag[i] = cmplx.Abs(received[i] - points[s])
	}
	ref := math.Sqrt(AverageEnergy(points))
	if ref == 0 {
		return 0, fmt.Errorf("%w: constellation has zero energy", core.ErrInvalidParameter)
	}
	return timestats.RMS(errMag) / ref, nil
}
