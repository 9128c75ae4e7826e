// Package constellation builds square QAM constellations, passes symbols
// through a noisy channel with phase jitter, and measures what survives
// with nearest-point decisions, symbol error rate and EVM.
package constellation

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// DefaultOrder is the default constellation size.
const DefaultOrder = 16

// QAM returns the m points of a square constellation scaled to the box
// [-1,1]x[-1,1]. Point i*side+j has in-phase index i and quadrature index
// j. m must be a power of four >= 4.
func QAM(m int) ([]complex128, error) {
	side, err := sideOf(m)
	if err != nil {
		return nil, err
	}
	half := float64(side-1) / 2
	pts := make([]complex128, 0, m)
	for i := range side {
		for j := range side {
			pts = append(pts, complex((float64(i)-half)/half, (float64(j)-half)/half))
		}
	}
	return pts, nil
}

func sideOf(m int) (int, error) {
	if m < 4 || m > 1<<16 || bits.OnesCount(uint(m)) != 1 || bits.TrailingZeros(uint(m))%2 != 0 {
		return 0, fmt.Errorf("%w: qam order must be a power of four in [4,65536]: %d", core.ErrInvalidParameter, m)
	}
	return 1 << (bits.TrailingZeros(uint(m)) / 2), nil
}

// BitsPerSymbol returns log2(m) for a valid order.
func BitsPerSymbol(m int) (int, error) {
	if _, err := sideOf(m); err != nil {
		return 0, err
	}
	return bits.TrailingZeros(uint(m)), nil
}

// AverageEnergy returns the mean of |p|^2.
func AverageEnergy(points []complex128) float64 {
	if len(points) == 0 {
		return 0
	}
	e := 0.0
	for _, p := range points {
		e += real(p)*real(p) + imag(p)*imag(p)
	}
	return e / float64(len(points))
}

// Nearest returns the index of the constellation point closest to r, -1
// for an empty constellation.
func Nearest(points []complex128, r complex128) int {
	best, bestDist := -1, math.Inf(1)
	for i, p := range points {
		if d := cmplx.Abs(r - p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Decide maps every received sample to its nearest point index.
func Decide(points, received []complex128) []int {
	out := make([]int, len(received))
	for i, r := range received {
		out[i] = Nearest(points, r)
	}
	return out
}

func gray(v int) int { return v ^ v>>1 }

func grayInverse(g int) int {
	v := g
	for s := g >> 1; s != 0; s >>= 1 {
		v ^= s
	}
	return v
}

// Modulate Gray-maps groups of log2(m) bits onto QAM(m): the high half of
// each group selects the in-phase level, the low half the quadrature
// level, so horizontally or vertically adjacent points differ in one bit.
// The bit count must be a multiple of log2(m).
func Modulate(data []uint8, m int) ([]complex128, error) {
	pts, err := QAM(m)
	if err != nil {
		return nil, err
	}
	k, _ := BitsPerSymbol(m)
	if len(data)%k != 0 {
		return nil, fmt.Errorf("%w: bit count must be a multiple of %d: %d", core.ErrInvalidParameter, k, len(data))
	}
	side := 1 << (k / 2)
	out := make([]complex128, len(data)/k)
	for s := range out {
		word := 0
		for _, b := range data[s*k : (s+1)*k] {
			if b > 1 {
				return nil, fmt.Errorf("%w: bits must be 0 or 1: %d", core.ErrInvalidParameter, b)
			}
			word = word<<1 | int(b)
		}
		i := grayInverse(word >> (k / 2))
		j := grayInverse(word & (side - 1))
		out[s] = pts[i*side+j]
	}
	return out, nil
}

// Demodulate makes nearest-point decisions and inverts the Gray mapping
// of Modulate.
func Demodulate(received []complex128, m int) ([]uint8, error) {
	pts, err := QAM(m)
	if err != nil {
		return nil, err
	}
	k, _ := BitsPerSymbol(m)
	side := 1 << (k / 2)
	out := make([]uint8, 0, len(received)*k)
	for _, idx := range Decide(pts, received) {
		word := gray(idx/side)<<(k/2) | gray(idx%side)
		for b := k - 1; b >= 0; b-- {
			out = append(out, uint8(word>>b&1))
		}
	}
	return out, nil
}
