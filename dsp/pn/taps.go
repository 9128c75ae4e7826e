package pn

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// MinPrimitiveWidth and MaxPrimitiveWidth bound the PrimitiveTaps table.
const (
	MinPrimitiveWidth = 2
	MaxPrimitiveWidth = 20
)

// primitiveExponents lists, per width, the exponents of a primitive
// polynomial over GF(2) (the constant term is implied). Exponent e feeds
// back from register bit e-1.
var primitiveExponents = map[int][]int{
	2:  {2, 1},
	3:  {3, 2},
	4:  {4, 3},
	5:  {5, 3},
	6:  {6, 5},
	7:  {7, 6},
	8:  {8, 6, 5, 4},
	9:  {9, 5},
	10: {10, 7},
	11: {11, 9},
	12: {12, 6, 4, 1},
	13: {13, 4, 3, 1},
	14: {14, 5, 3, 1},
	15: {15, 14},
	16: {16, 15, 13, 4},
	17: {17, 14},
	18: {18, 11},
	19: {19, 6, 2, 1},
	20: {20, 17},
}

// PrimitiveTaps returns feedback taps giving a maximal-length register of
// the given width. For width 4 these are the default taps {3, 2}.
func PrimitiveTaps(width int) ([]int, error) {
	exps, ok := primitiveExponents[width]
	if !ok {
		return nil, fmt.Errorf("%w: no primitive taps for width %d, want [%d,%d]",
			core.ErrInvalidParameter, width, MinPrimitiveWidth, MaxPrimitiveWidth)
	}
	taps := make([]int, len(exps))
	for i, e := range exps {
		taps[i] = e - 1
	}
	return taps, nil
}
