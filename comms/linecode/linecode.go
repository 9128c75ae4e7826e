// Package linecode maps bits to baseband line levels. Every bit occupies
// two half-bit slots so return-to-zero and mid-bit transitions are
// representable:
//
//	NRZ         1 -> +1 +1    0 -> -1 -1
//	RZ          1 -> +1  0    0 ->  0  0
//	Manchester  1 -> -1 +1    0 -> +1 -1   (IEEE 802.3)
//	AMI         1 -> ±1 ±1 alternating, 0 -> 0 0
package linecode

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-comms/dsp/core"
	"gonum.org/v1/gonum/stat"
)

// Scheme selects a line code.
type Scheme int

const (
	NRZ Scheme = iota
	RZ
	Manchester
	AMI
)

var schemeNames = map[Scheme]string{
	NRZ:        "nrz",
	RZ:         "rz",
	Manchester: "manchester",
	AMI:        "ami",
}

func (s Scheme) String() string {
	if n, ok := schemeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme accepts the lower-case scheme names.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, v := range schemeNames {
		if v == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown line code: %q", core.ErrInvalidParameter, name)
}

// Levels encodes bits as 2*len(bits) half-bit levels.
func Levels(bits []uint8, scheme Scheme) ([]float64, error) {
	if _, ok := schemeNames[scheme]; !ok {
		return nil, fmt.Errorf("%w: unknown line code: %d", core.ErrInvalidParameter, int(scheme))
	}
	out := make([]float64, 0, 2*len(bits))
	mark := 1.0
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("%w: bit %d must be 0 or 1: %d", core.ErrInvalidParameter, i, b)
		}
		var first, second float64
		switch scheme {
		case NRZ:
			first = float64(2*int(b) - 1)
			second = first
		case RZ:
			first = float64(b)
		case Manchester:
			second = float64(2*int(b) - 1)
			first = -second
		case AMI:
			if b == 1 {
				first, second = mark, mark
				mark = -mark
			}
		}
		out = append(out, first, second)
	}
	return out, nil
}

// Waveform returns Levels as a step plot: each half-bit contributes its
// start and end point, with X in bit periods.
func Waveform(bits []uint8, scheme Scheme) (core.Series, error) {
	levels, err := Levels(bits, scheme)
	if err != nil {
		return nil, err
	}
	out := make(core.Series, 0, 2*len(levels))
	for i, v := range levels {
		out = append(out,
			core.Point{X: float64(i) / 2, Y: v},
			core.Point{X: float64(i+1) / 2, Y: v},
		)
	}
	return out, nil
}

// Decode recovers bits from half-bit levels. Levels are sliced at zero
// (NRZ, Manchester) or at half amplitude (RZ, AMI), so moderate noise is
// tolerated.
func Decode(levels []float64, scheme Scheme) ([]uint8, error) {
	if _, ok := schemeNames[scheme]; !ok {
		return nil, fmt.Errorf("%w: unknown line code: %d", core.ErrInvalidParameter, int(scheme))
	}
	if len(levels)%2 != 0 {
		return nil, fmt.Errorf("%w: level count must be even: %d", core.ErrInvalidParameter, len(levels))
	}
	bits := make([]uint8, len(levels)/2)
	for i := range bits {
		a, b := levels[2*i], levels[2*i+1]
		var one bool
		switch scheme {
		case NRZ:
			one = a+b > 0
		case RZ:
			one = a > 0.5
		case Manchester:
			one = b-a > 0
		case AMI:
			one = math.Abs(a+b) > 1
		}
		if one {
			bits[i] = 1
		}
	}
	return bits, nil
}

// Transitions counts level changes between neighbouring half-bit slots,
// a measure of the timing information a receiver can recover.
func Transitions(levels []float64) int {
	n := 0
	for i := 1; i < len(levels); i++ {
		if levels[i] != levels[i-1] {
			n++
		}
	}
	return n
}

// DCLevel returns the mean level, 0 for a balanced code.
func DCLevel(levels []float64) float64 {
	if len(levels) == 0 {
		return 0
	}
	return stat.Mean(levels, nil)
}
