package spectrum

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// CostReport compares the multiplication counts of a naive DFT and a
// radix-2 FFT of size N.
type CostReport struct {
	N int
	// DFTOperations is N*N.
	DFTOperations int
	// FFTOperations is (N/2)*log2(N). For N that is not a power of two the
	// value is fractional and only illustrative.
	FFTOperations float64
}

// Speedup returns DFTOperations/FFTOperations, or +Inf when the FFT count
// is zero (N == 1).
func (r CostReport) Speedup() float64 {
	if r.FFTOperations == 0 {
		return math.Inf(1)
	}
	return float64(r.DFTOperations) / r.FFTOperations
}

// EstimateCost returns the operation counts for a transform of size n.
// log2(n) is not rounded, so non powers of two are accepted.
func EstimateCost(n int) (CostReport, error) {
	if n <= 0 {
		return CostReport{}, fmt.Errorf("%w: transform size must be > 0: %d", core.ErrInvalidParameter, n)
	}
	if n > math.MaxInt32 {
		return CostReport{}, fmt.Errorf("%w: transform size too large: %d", core.ErrInvalidParameter, n)
	}
	return CostReport{
		N:             n,
		DFTOperations: n * n,
		FFTOperations: float64(n) / 2 * math.Log2(float64(n)),
	}, nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Stages returns the number of radix-2 butterfly stages, log2(n).
func Stages(n int) (int, error) {
	if !IsPowerOfTwo(n) {
		return 0, fmt.Errorf("%w: butterfly size must be a power of two: %d", core.ErrInvalidParameter, n)
	}
	return bits.TrailingZeros(uint(n)), nil
}

// ButterflyPartner returns the index that i exchanges data with in the
// given stage: i XOR 2^stage.
func ButterflyPartner(i, stage int) int {
	return i ^ (1 << stage)
}

// Edge connects input line From to output line To within one stage.
type Edge struct {
	From int
	To   int
}

// Butterflies returns, per stage, the n edges i -> ButterflyPartner(i,
// stage) of the radix-2 wiring diagram.
func Butterflies(n int) ([][]Edge, error) {
	stages, err := Stages(n)
	if err != nil {
		return nil, err
	}
	out := make([][]Edge, stages)
	for s := range out {
		edges := make([]Edge, n)
		for i := range edges {
			edges[i] = Edge{From: i, To: ButterflyPartner(i, s)}
		}
		out[s] = edges
	}
	return out, nil
}

// MeshEdges returns the number of input-to-output connections of the naive
// DFT: every input feeds every output.
func MeshEdges(n int) (int, error) {
	r, err := EstimateCost(n)
	if err != nil {
		return 0, err
	}
	return r.DFTOperations, nil
}
