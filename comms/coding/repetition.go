// Package coding implements the channel codes of the coding lessons: the
// n-fold repetition code with majority decoding and a Reed-Solomon
// erasure code over byte shards.
package coding

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// DefaultRepetition is the repetition factor of the coding demo.
const DefaultRepetition = 3

func validateFactor(n int) error {
	if n < 1 || n%2 == 0 {
		return fmt.Errorf("%w: repetition factor must be odd and >= 1: %d", core.ErrInvalidParameter, n)
	}
	return nil
}

func validateBits(bits []uint8) error {
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: bit %d must be 0 or 1: %d", core.ErrInvalidParameter, i, b)
		}
	}
	return nil
}

// RepetitionEncode repeats every bit n times.
func RepetitionEncode(bits []uint8, n int) ([]uint8, error) {
	if err := validateFactor(n); err != nil {
		return nil, err
	}
	if err := validateBits(bits); err != nil {
		return nil, err
	}
	out := make([]uint8, 0, len(bits)*n)
	for _, b := range bits {
		for range n {
			out = append(out, b)
		}
	}
	return out, nil
}

// RepetitionDecode takes a majority vote over each group of n received
// bits. corrected[i] is true when group i held a minority of flipped bits
// that the vote overruled.
func RepetitionDecode(received []uint8, n int) (decoded []uint8, corrected []bool, err error) {
	if err := validateFactor(n); err != nil {
		return nil, nil, err
	}
	if len(received)%n != 0 {
		return nil, nil, fmt.Errorf("%w: received length must be a multiple of %d: %d",
			core.ErrInvalidParameter, n, len(received))
	}
	if err := validateBits(received); err != nil {
		return nil, nil, err
	}
	groups := len(received) / n
	decoded = make([]uint8, groups)
	corrected = make([]bool, groups)
	for g := range groups {
		ones := 0
		for _, b := range received[g*n : (g+1)*n] {
			ones += int(b)
		}
		if 2*ones > n {
			decoded[g] = 1
		}
		corrected[g] = ones != 0 && ones != n
	}
	return decoded, corrected, nil
}

// FlipBit returns a copy of bits with position i inverted. An out of range
// index returns an unchanged copy, matching the "no error injected" state.
func FlipBit(bits []uint8, i int) []uint8 {
	out := append([]uint8(nil), bits...)
	if i >= 0 && i < len(out) {
		out[i] ^= 1
	}
	return out
}

// BinarySymmetricChannel flips each bit independently with probability p.
func BinarySymmetricChannel(bits []uint8, p float64, rng *rand.Rand) ([]uint8, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: crossover probability must be in [0,1]: %v", core.ErrInvalidParameter, p)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: channel needs a random source", core.ErrInvalidParameter)
	}
	out := append([]uint8(nil), bits...)
	for i := range out {
		if rng.Float64() < p {
			out[i] ^= 1
		}
	}
	return out, nil
}

// ResidualErrorRate is the probability that majority decoding of an n-fold
// repetition fails on a binary symmetric channel with crossover p.
func ResidualErrorRate(p float64, n int) (float64, error) {
	if err := validateFactor(n); err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: crossover probability must be in [0,1]: %v", core.ErrInvalidParameter, p)
	}
	sum := 0.0
	for k := n/2 + 1; k <= n; k++ {
		sum += binomial(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	return sum, nil
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}
