package spectrum

import (
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// parts splits bins into real and imaginary planes for the vecmath
// kernels, which work on separate float slices.
func parts(bins []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(bins))
	re, im = buf[:len(bins)], buf[len(bins):]
	for i, c := range bins {
		re[i], im[i] = real(c), imag(c)
	}
	return re, im
}

// Magnitude returns |X[k]| per bin, nil for no bins.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	re, im := parts(bins)
	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|² per bin, nil for no bins.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	re, im := parts(bins)
	out := make([]float64, len(bins))
	vecmath.Power(out, re, im)
	return out
}

// PowerDB returns 10·log10|X[k]|² per bin, clipped below at floorDB so
// empty bins stay plottable.
func PowerDB(bins []complex128, floorDB float64) []float64 {
	out := Power(bins)
	for i, p := range out {
		db := core.LinearPowerToDB(p)
		if db < floorDB {
			db = floorDB
		}
		out[i] = db
	}
	return out
}

// Phase returns arg(X[k]) in radians per bin, nil for no bins.
func Phase(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = cmplx.Phase(c)
	}
	return out
}
