// Package polyroot finds and builds polynomials from their roots for the
// z-plane helpers. Coefficients are always in descending power order,
// c[0]·zⁿ + c[1]·zⁿ⁻¹ + … + c[n].
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned for polynomials without roots
// (degree < 1 or zero leading coefficient) and when the iteration does not
// settle.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

const (
	maxIterations = 500
	stepTol       = 1e-12
	// Accepted residual |p(r)| when the steps stall, typically around
	// repeated roots where convergence is only linear.
	residualTol = 1e-6
)

// DurandKerner returns all n roots of a degree-n polynomial using the
// Weierstrass (Durand-Kerner) simultaneous iteration.
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}
	monic := make([]complex128, len(coeff))
	for i, c := range coeff {
		monic[i] = c / coeff[0]
	}

	roots := initialGuesses(monic)
	for range maxIterations {
		if weierstrassStep(monic, roots) < stepTol {
			return roots, nil
		}
	}
	for _, r := range roots {
		if cmplx.Abs(PolyEval(monic, r)) >= residualTol {
			return nil, ErrDegeneratePolynomial
		}
	}
	return roots, nil
}

// initialGuesses spreads the starting points on a slightly opening spiral
// whose radius bounds the root moduli. The angular offset keeps them off
// the real axis so conjugate pairs can separate.
func initialGuesses(monic []complex128) []complex128 {
	n := len(monic) - 1
	radius := 1.0
	for _, c := range monic[1:] {
		radius = math.Max(radius, cmplx.Abs(c))
	}
	out := make([]complex128, n)
	for i := range out {
		frac := float64(i) / float64(n)
		out[i] = cmplx.Rect(radius*(1+0.1*frac), 2*math.Pi*frac+0.3)
	}
	return out
}

// weierstrassStep updates roots in place and returns the largest
// correction applied.
func weierstrassStep(monic, roots []complex128) float64 {
	largest := 0.0
	for i, r := range roots {
		den := complex(1, 0)
		for j, s := range roots {
			if j != i {
				den *= r - s
			}
		}
		if den == 0 {
			// Coincident estimates; nudge apart and retry next pass.
			roots[i] += complex(1e-10, 1e-10)
			continue
		}
		delta := PolyEval(monic, r) / den
		roots[i] = r - delta
		largest = math.Max(largest, cmplx.Abs(delta))
	}
	return largest
}

// PolyEval evaluates the polynomial at x with Horner's rule.
func PolyEval(coeff []complex128, x complex128) complex128 {
	var v complex128
	for _, c := range coeff {
		v = v*x + c
	}
	return v
}

// Expand multiplies out (z-r0)(z-r1)… into its n+1 monic coefficients.
// Expand(nil) is the constant polynomial 1.
func Expand(roots []complex128) []complex128 {
	out := append(make([]complex128, 0, len(roots)+1), 1)
	for _, r := range roots {
		out = append(out, 0)
		for i := len(out) - 1; i > 0; i-- {
			out[i] -= r * out[i-1]
		}
	}
	return out
}

// ConjugateTol is the default relative tolerance for IsConjugate.
const ConjugateTol = 1e-7

// IsConjugate reports whether b ≈ conj(a), comparing each part relative to
// max(1, |part of a|).
func IsConjugate(a, b complex128, tol float64) bool {
	near := func(x, y, scale float64) bool {
		return math.Abs(x-y) <= tol*math.Max(1, math.Abs(scale))
	}
	return near(real(a), real(b), real(a)) && near(imag(a), -imag(b), imag(a))
}
