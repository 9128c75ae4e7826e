package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func sortedReal(roots []complex128) []float64 {
	out := make([]float64, len(roots))
	for i, r := range roots {
		out[i] = real(r)
	}
	sort.Float64s(out)
	return out
}

func TestDurandKernerRealRoots(t *testing.T) {
	tests := []struct {
		name  string
		coeff []complex128
		want  []float64
	}{
		{"quadratic", []complex128{1, -3, 2}, []float64{1, 2}},
		{"quartic", []complex128{1, 0, -5, 0, 4}, []float64{-2, -1, 1, 2}},
		{"root at origin", []complex128{1, -0.5, 0}, []float64{0, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := DurandKerner(tt.coeff)
			if err != nil {
				t.Fatalf("DurandKerner() error = %v", err)
			}
			got := sortedReal(roots)
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Fatalf("roots=%v, want %v", got, tt.want)
				}
			}
			for _, r := range roots {
				if math.Abs(imag(r)) > 1e-9 {
					t.Fatalf("root %v not real", r)
				}
			}
		})
	}
}

func TestDurandKernerUnitCircle(t *testing.T) {
	for _, coeff := range [][]complex128{
		{1, 0, 0, 0, 1},  // z^4 + 1
		{1, 0, 0, 0, -1}, // z^4 - 1
	} {
		roots, err := DurandKerner(coeff)
		if err != nil {
			t.Fatalf("DurandKerner() error = %v", err)
		}
		if len(roots) != 4 {
			t.Fatalf("got %d roots, want 4", len(roots))
		}
		for i, r := range roots {
			if math.Abs(cmplx.Abs(r)-1) > 1e-9 {
				t.Fatalf("root %d: |r|=%v, want 1", i, cmplx.Abs(r))
			}
			if v := cmplx.Abs(PolyEval(coeff, r)); v > 1e-8 {
				t.Fatalf("root %d: |p(r)|=%v", i, v)
			}
		}
	}
}

func TestDurandKernerDoubleRoots(t *testing.T) {
	// (z-0.9)^2 (z-0.8)^2
	coeff := Expand([]complex128{0.9, 0.9, 0.8, 0.8})
	roots, err := DurandKerner(coeff)
	if err != nil {
		t.Fatalf("DurandKerner() error = %v", err)
	}
	for i, r := range roots {
		if v := cmplx.Abs(PolyEval(coeff, r)); v > 1e-6 {
			t.Fatalf("root %d: |p(%v)|=%v", i, r, v)
		}
	}
}

func TestDurandKernerDegenerate(t *testing.T) {
	for _, coeff := range [][]complex128{nil, {1}, {0, 1, 2}} {
		if _, err := DurandKerner(coeff); !errors.Is(err, ErrDegeneratePolynomial) {
			t.Fatalf("DurandKerner(%v) error = %v, want ErrDegeneratePolynomial", coeff, err)
		}
	}
}

func TestPolyEval(t *testing.T) {
	// 2z^3 - 3z + 5 at z = 2 and z = i.
	coeff := []complex128{2, 0, -3, 5}
	if v := PolyEval(coeff, 2); v != 15 {
		t.Fatalf("p(2)=%v, want 15", v)
	}
	if v := PolyEval(coeff, 1i); cmplx.Abs(v-complex(5, -5)) > 1e-12 {
		t.Fatalf("p(i)=%v, want 5-5i", v)
	}
}

func TestExpand(t *testing.T) {
	got := Expand([]complex128{1, 2})
	want := []complex128{1, -3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expand()=%v, want %v", got, want)
		}
	}

	// Conjugate pairs expand to real coefficients.
	got = Expand([]complex128{complex(0.5, 0.5), complex(0.5, -0.5)})
	want = []complex128{1, -1, 0.5}
	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("Expand()=%v, want %v", got, want)
		}
	}

	if e := Expand(nil); len(e) != 1 || e[0] != 1 {
		t.Fatalf("Expand(nil)=%v, want [1]", e)
	}
}

func TestExpandRoundTrip(t *testing.T) {
	in := []complex128{complex(0.3, 0.4), complex(0.3, -0.4), -0.7, 0.2}
	roots, err := DurandKerner(Expand(in))
	if err != nil {
		t.Fatalf("DurandKerner() error = %v", err)
	}
	for _, want := range in {
		best := math.Inf(1)
		for _, r := range roots {
			best = math.Min(best, cmplx.Abs(r-want))
		}
		if best > 1e-9 {
			t.Fatalf("root %v not recovered from %v", want, roots)
		}
	}
}

func TestIsConjugate(t *testing.T) {
	tests := []struct {
		name string
		a, b complex128
		want bool
	}{
		{"exact", complex(1, 2), complex(1, -2), true},
		{"near", complex(1, 2), complex(1+1e-9, -2+1e-9), true},
		{"different real part", complex(1, 2), complex(2, -2), false},
		{"same sign imaginary", complex(1, 2), complex(1, 2), false},
		{"real", 5, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConjugate(tt.a, tt.b, ConjugateTol); got != tt.want {
				t.Fatalf("IsConjugate(%v, %v)=%v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
