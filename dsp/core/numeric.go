package core

import "math"

// Clamp limits v to [lo, hi]. Swapped bounds are reordered.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Sinc is the normalized sinc sin(πx)/(πx) with Sinc(0) = 1. It vanishes
// at every nonzero integer, which is what makes sinc pulses free of
// inter-symbol interference.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		return 0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Amplitude ratios use 20·log10, power ratios (SNR, spectra) 10·log10.
const (
	amplitudeDB = 20
	powerDB     = 10
)

func toDB(ratio, scale float64) float64 {
	switch {
	case ratio < 0, math.IsNaN(ratio):
		return math.NaN()
	case ratio == 0:
		return math.Inf(-1)
	}
	return scale * math.Log10(ratio)
}

// DBToLinear converts an amplitude level in dB to a linear ratio.
func DBToLinear(db float64) float64 { return math.Pow(10, db/amplitudeDB) }

// LinearToDB converts a linear amplitude ratio to dB: -Inf for 0, NaN for
// negative input.
func LinearToDB(ratio float64) float64 { return toDB(ratio, amplitudeDB) }

// DBPowerToLinear converts a power level in dB, such as an SNR, to a
// linear ratio.
func DBPowerToLinear(db float64) float64 { return math.Pow(10, db/powerDB) }

// LinearPowerToDB converts a linear power ratio to dB: -Inf for 0, NaN for
// negative input.
func LinearPowerToDB(ratio float64) float64 { return toDB(ratio, powerDB) }
