package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidParameter marks a call that violates a function's contract
// (resolution too small, non-positive sizes, mismatched lengths). Packages
// wrap it so callers can test with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Point is one sample of a series: the domain value and its amplitude.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered sequence of points. Series returned by this module
// are freshly allocated and never retained by the producer.
type Series []Point

// Len returns the number of points.
func (s Series) Len() int { return len(s) }

// Xs returns the domain values.
func (s Series) Xs() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.X
	}
	return out
}

// Ys returns the amplitudes.
func (s Series) Ys() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Y
	}
	return out
}

// Peak returns the point with the largest |Y|. ok is false for an empty series.
func (s Series) Peak() (p Point, ok bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if math.Abs(s[i].Y) > math.Abs(s[best].Y) {
			best = i
		}
	}
	return s[best], true
}

// Zip builds a series from parallel domain and amplitude slices.
func Zip(xs, ys []float64) (Series, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: series x/y length mismatch: %d != %d", ErrInvalidParameter, len(xs), len(ys))
	}
	out := make(Series, len(xs))
	for i := range xs {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}
	return out, nil
}

// Range is a closed interval [Min, Max] of the independent variable.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Validate reports whether the range is finite and ordered.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: range bounds must be finite: [%v, %v]", ErrInvalidParameter, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: range min must be <= max: [%v, %v]", ErrInvalidParameter, r.Min, r.Max)
	}
	return nil
}

// Grid returns resolution evenly spaced values covering the range, both
// ends included. resolution must be >= 2.
func (r Range) Grid(resolution int) ([]float64, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: resolution must be >= 2: %d", ErrInvalidParameter, resolution)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, resolution), r.Min, r.Max), nil
}
