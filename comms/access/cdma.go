package access

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/pn"
)

// Orthogonality returns the dot product of the code [1, 1, -1, -1] with a
// copy rotated by phaseDeg towards the orthogonal code [1, -1, 1, -1]:
// 4·cos(phase). It vanishes at 90 degrees.
func Orthogonality(phaseDeg float64) float64 {
	a := []float64{1, 1, -1, -1}
	alt := []float64{1, -1, 1, -1}
	s, c := math.Sincos(phaseDeg * math.Pi / 180)
	dot := 0.0
	for i := range a {
		dot += a[i] * (c*a[i] + s*alt[i])
	}
	return dot
}

// IsIsolated reports whether a cross-correlation is small enough to call
// the channels isolated.
func IsIsolated(dot float64) bool {
	return math.Abs(dot) < 0.1
}

// WalshCodes returns the n rows of the Sylvester-Hadamard matrix of order
// n, a power of two. Distinct rows are orthogonal.
func WalshCodes(n int) ([][]float64, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: walsh order must be a power of two: %d", core.ErrInvalidParameter, n)
	}
	h := [][]float64{{1}}
	for len(h) < n {
		m := len(h)
		next := make([][]float64, 2*m)
		for i, row := range h {
			top := make([]float64, 2*m)
			bottom := make([]float64, 2*m)
			for j, v := range row {
				top[j], top[j+m] = v, v
				bottom[j], bottom[j+m] = v, -v
			}
			next[i], next[i+m] = top, bottom
		}
		h = next
	}
	return h, nil
}

// CDMACombine spreads each user's bits with that user's code and sums the
// results into one channel signal. All users must send the same number of
// bits and all codes must have the same length.
func CDMACombine(users [][]uint8, codes [][]float64) ([]float64, error) {
	if len(users) == 0 || len(users) != len(codes) {
		return nil, fmt.Errorf("%w: need one code per user: %d users, %d codes",
			core.ErrInvalidParameter, len(users), len(codes))
	}
	var sum []float64
	for u, bits := range users {
		chips, err := pn.Spread(bits, codes[u])
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = make([]float64, len(chips))
		}
		if len(chips) != len(sum) {
			return nil, fmt.Errorf("%w: user %d spreads to %d chips, want %d",
				core.ErrInvalidParameter, u, len(chips), len(sum))
		}
		for i, v := range chips {
			sum[i] += v
		}
	}
	return sum, nil
}

// CDMASeparate recovers one user's bits from the combined signal by
// despreading with that user's code.
func CDMASeparate(signal, code []float64) ([]uint8, error) {
	bits, _, err := pn.Despread(signal, code)
	return bits, err
}
