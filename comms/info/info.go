// Package info holds the information-theory measures used by the source
// and channel coding lessons: source entropy, Huffman code lengths and the
// Shannon-Hartley capacity of a noisy channel.
package info

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultProbabilities is the four-symbol source of the entropy widget.
func DefaultProbabilities() []float64 {
	return []float64{0.5, 0.25, 0.125, 0.125}
}

// Normalize validates probs and scales them to sum to 1.
func Normalize(probs []float64) ([]float64, error) {
	if len(probs) == 0 {
		return nil, fmt.Errorf("%w: probabilities must not be empty", core.ErrInvalidParameter)
	}
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("%w: probability %d must be finite and >= 0: %v", core.ErrInvalidParameter, i, p)
		}
	}
	sum := floats.Sum(probs)
	if sum <= 0 {
		return nil, fmt.Errorf("%w: probabilities must have a positive sum: %v", core.ErrInvalidParameter, sum)
	}
	out := make([]float64, len(probs))
	floats.ScaleTo(out, 1/sum, probs)
	return out, nil
}

// Entropy returns -Σ p·log2(p) in bits after normalizing probs. Zero
// probabilities contribute nothing.
func Entropy(probs []float64) (float64, error) {
	p, err := Normalize(probs)
	if err != nil {
		return 0, err
	}
	return stat.Entropy(p) / math.Ln2, nil
}

// MaxEntropy is log2(n), the entropy of n equiprobable symbols.
func MaxEntropy(n int) float64 {
	if n < 1 {
		return 0
	}
	return math.Log2(float64(n))
}

// Efficiency is the entropy relative to MaxEntropy(len(probs)). A single
// symbol source is fully efficient by convention.
func Efficiency(probs []float64) (float64, error) {
	h, err := Entropy(probs)
	if err != nil {
		return 0, err
	}
	hmax := MaxEntropy(len(probs))
	if hmax == 0 {
		return 1, nil
	}
	return h / hmax, nil
}

// Adjust sets probs[i] to p and spreads the change evenly over the other
// symbols, clamping each at 0. The result is not renormalized.
func Adjust(probs []float64, i int, p float64) ([]float64, error) {
	if i < 0 || i >= len(probs) {
		return nil, fmt.Errorf("%w: symbol index out of range: %d", core.ErrInvalidParameter, i)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: probability must be in [0,1]: %v", core.ErrInvalidParameter, p)
	}
	out := make([]float64, len(probs))
	if len(probs) == 1 {
		out[0] = p
		return out, nil
	}
	diff := (p - probs[i]) / float64(len(probs)-1)
	for j, v := range probs {
		if j == i {
			out[j] = p
			continue
		}
		out[j] = math.Max(0, v-diff)
	}
	return out, nil
}

func errLengthMismatch(want, got int) error {
	return fmt.Errorf("%w: expected %d code lengths, got %d", core.ErrInvalidParameter, want, got)
}
