package zplane

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/internal/polyroot"
)

// DefaultPickRadius is the distance within which Nearest selects a point.
const DefaultPickRadius = 0.1

// DefaultPoles returns the conjugate pair 0.5 ± 0.5j.
func DefaultPoles() []complex128 {
	return []complex128{complex(0.5, 0.5), complex(0.5, -0.5)}
}

// DefaultZeros returns a single zero at -1.
func DefaultZeros() []complex128 {
	return []complex128{-1}
}

// MaxPoleRadius returns the largest pole magnitude, 0 for no poles.
func MaxPoleRadius(poles []complex128) float64 {
	r := 0.0
	for _, p := range poles {
		r = math.Max(r, cmplx.Abs(p))
	}
	return r
}

// IsStable reports whether every pole lies strictly inside the unit circle.
func IsStable(poles []complex128) bool {
	return MaxPoleRadius(poles) < 1
}

// ConjugateClosed reports whether every non-real point has its conjugate
// in the set, i.e. whether the points belong to a real-coefficient system.
func ConjugateClosed(points []complex128, tol float64) bool {
	used := make([]bool, len(points))
	for i, p := range points {
		if used[i] {
			continue
		}
		if math.Abs(imag(p)) <= tol*math.Max(1, math.Abs(real(p))) {
			used[i] = true
			continue
		}
		match := -1
		for j := i + 1; j < len(points); j++ {
			if !used[j] && polyroot.IsConjugate(p, points[j], tol) {
				match = j
				break
			}
		}
		if match < 0 {
			return false
		}
		used[i], used[match] = true, true
	}
	return true
}

// Nearest returns the index of the point closest to target, provided it
// lies within radius.
func Nearest(points []complex128, target complex128, radius float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, p := range points {
		if d := cmplx.Abs(p - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > radius {
		return -1, false
	}
	return best, true
}

// FromCoefficients factors H(z) = B(z^-1)/A(z^-1), with b and a in
// ascending powers of z^-1, into zeros, poles and the gain b[0]/a[0].
// Unequal orders add the missing roots at the origin.
func FromCoefficients(b, a []float64) (zeros, poles []complex128, gain float64, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, 0, fmt.Errorf("%w: coefficient lists must not be empty", core.ErrInvalidParameter)
	}
	if b[0] == 0 || a[0] == 0 {
		return nil, nil, 0, fmt.Errorf("%w: leading coefficients must be non-zero: b0=%v a0=%v",
			core.ErrInvalidParameter, b[0], a[0])
	}

	zeros, err = rootsOf(b)
	if err != nil {
		return nil, nil, 0, err
	}
	poles, err = rootsOf(a)
	if err != nil {
		return nil, nil, 0, err
	}
	for len(zeros) < len(poles) {
		zeros = append(zeros, 0)
	}
	for len(poles) < len(zeros) {
		poles = append(poles, 0)
	}
	return zeros, poles, b[0] / a[0], nil
}

// rootsOf solves c[0]z^n + c[1]z^(n-1) + ... + c[n] = 0, which is
// c in ascending powers of z^-1 multiplied through by z^n.
func rootsOf(c []float64) ([]complex128, error) {
	if len(c) == 1 {
		return nil, nil
	}
	coeff := make([]complex128, len(c))
	for i, v := range c {
		coeff[i] = complex(v, 0)
	}
	roots, err := polyroot.DurandKerner(coeff)
	if err != nil {
		return nil, fmt.Errorf("zplane: %w", err)
	}
	return roots, nil
}

// ToCoefficients expands conjugate-closed zeros and poles back into real
// coefficients in ascending powers of z^-1, with b scaled by gain.
func ToCoefficients(zeros, poles []complex128, gain float64) (b, a []float64, err error) {
	if !ConjugateClosed(zeros, polyroot.ConjugateTol) || !ConjugateClosed(poles, polyroot.ConjugateTol) {
		return nil, nil, fmt.Errorf("%w: zeros and poles must come in conjugate pairs", core.ErrInvalidParameter)
	}
	b = realParts(polyroot.Expand(zeros), gain)
	a = realParts(polyroot.Expand(poles), 1)
	return b, a, nil
}

func realParts(c []complex128, scale float64) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v) * scale
	}
	return out
}
