package conv

import "slices"

// Correlate returns the cross-correlation of a with b,
// c[k] = Σ a[k+j]·b[j] over the lags kept by mode. In ModeFull index k is
// lag k−(len(b)−1), see LagFromIndex; in ModeValid with len(a) ≥ len(b)
// index k is the offset of b inside a.
func Correlate(a, b []float64, mode Mode) ([]float64, error) {
	if err := validate(a, b, mode); err != nil {
		return nil, err
	}
	rev := slices.Clone(b)
	slices.Reverse(rev)
	return ConvolveMode(a, rev, mode)
}

// FindPeak returns the index and value of the largest element, the first
// one on ties, or -1 for no input.
func FindPeak(x []float64) (index int, value float64) {
	if len(x) == 0 {
		return -1, 0
	}
	for i, v := range x {
		if i == 0 || v > value {
			index, value = i, v
		}
	}
	return index, value
}

// LagFromIndex converts a ModeFull correlation index to a lag.
func LagFromIndex(index, lenB int) int { return index - (lenB - 1) }

// IndexFromLag converts a lag to a ModeFull correlation index.
func IndexFromLag(lag, lenB int) int { return lag + (lenB - 1) }
