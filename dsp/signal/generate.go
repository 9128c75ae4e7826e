package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-comms/dsp/core"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator creates deterministic sampled signals from a shared
// configuration. Every noise call restarts from the configured seed, so two
// generators with the same seed produce identical sequences.
type Generator struct {
	cfg core.Config
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{cfg: core.ApplyOptions(opts...)}
}

// Config returns the generator configuration.
func (g *Generator) Config() core.Config {
	return g.cfg
}

// SetSeed updates the noise seed.
func (g *Generator) SetSeed(seed uint64) {
	g.cfg.Seed = seed
}

// Seed returns the noise seed.
func (g *Generator) Seed() uint64 {
	return g.cfg.Seed
}

// Rand returns a fresh random source positioned at the start of the
// configured seed's stream.
func (g *Generator) Rand() *rand.Rand {
	return rand.New(g.source())
}

func (g *Generator) source() rand.Source {
	return rand.NewPCG(g.cfg.Seed, g.cfg.Seed^0x9e3779b97f4a7c15)
}

// Sine generates samples of amplitude*sin(2*pi*freq*n/sampleRate).
func (g *Generator) Sine(freq, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: sine samples must be > 0: %d", core.ErrInvalidParameter, samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freq / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples must be > 0: %d", core.ErrInvalidParameter, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", core.ErrInvalidParameter, amplitude)
	}
	out := make([]float64, samples)
	rng := g.Rand()
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// GaussianNoise generates zero-mean Gaussian noise with the given standard
// deviation.
func (g *Generator) GaussianNoise(sigma float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples must be > 0: %d", core.ErrInvalidParameter, samples)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("%w: noise sigma must be >= 0: %f", core.ErrInvalidParameter, sigma)
	}
	out := make([]float64, samples)
	if sigma == 0 {
		return out, nil
	}
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: g.source()}
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

// AddNoise returns data plus uniform noise in [-amplitude, amplitude].
func (g *Generator) AddNoise(data []float64, amplitude float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: noise input must not be empty", core.ErrInvalidParameter)
	}
	noise, err := g.WhiteNoise(amplitude, len(data))
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		noise[i] += v
	}
	return noise, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", core.ErrInvalidParameter, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", core.ErrInvalidParameter)
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
