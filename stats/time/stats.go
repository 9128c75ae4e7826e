// Package time computes time-domain statistics of sampled signals.
package time

import (
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMSdB         float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	CrestFactor   float64 // peak / RMS, 0 for silence
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	Variance      float64 // population variance
	ZeroCrossings int
}

// Calculate computes the statistics of signal. An empty signal yields a
// zero Stats with RMSdB = -Inf.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{RMSdB: math.Inf(-1)}
	}

	mean, variance := stat.PopMeanVariance(signal, nil)
	energy := floats.Dot(signal, signal)
	maxVal, minVal := floats.Max(signal), floats.Min(signal)

	s := Stats{
		Length:        n,
		DC:            mean,
		Max:           maxVal,
		Min:           minVal,
		Peak:          math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Energy:        energy,
		Power:         energy / float64(n),
		Variance:      variance,
		ZeroCrossings: ZeroCrossings(signal),
	}
	s.RMS = math.Sqrt(s.Power)
	s.RMSdB = core.LinearToDB(s.RMS)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}

// RMS returns the root mean square of signal, 0 when empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// Peak returns the largest absolute sample, 0 when empty.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))
}

// ZeroCrossings counts sign changes between neighbouring samples. Samples
// that are exactly zero do not count as a crossing on either side.
func ZeroCrossings(signal []float64) int {
	n := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			n++
		}
	}
	return n
}
