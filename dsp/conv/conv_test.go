package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/mjibson/go-dsp/fft"
)

func equalWithin(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestDirect(t *testing.T) {
	got, err := Direct([]float64{1, 2, 3}, []float64{0, 1, 0.5})
	if err != nil {
		t.Fatalf("Direct() error = %v", err)
	}
	want := []float64{0, 1, 2.5, 4, 1.5}
	if !equalWithin(got, want, 1e-12) {
		t.Fatalf("Direct()=%v, want %v", got, want)
	}
}

func TestDirectMatchesCircularFFTOnPaddedInput(t *testing.T) {
	a := []float64{0.5, -1, 2, 0.25, 3, -0.75, 1}
	b := []float64{1, 0.5, -0.5, 2}
	got, err := Direct(a, b)
	if err != nil {
		t.Fatalf("Direct() error = %v", err)
	}
	n := len(a) + len(b) - 1
	pa := make([]complex128, n)
	pb := make([]complex128, n)
	for i, v := range a {
		pa[i] = complex(v, 0)
	}
	for i, v := range b {
		pb[i] = complex(v, 0)
	}
	ref := fft.Convolve(pa, pb)
	for i := range got {
		if math.Abs(got[i]-real(ref[i])) > 1e-9 {
			t.Fatalf("out[%d]=%v, want %v", i, got[i], real(ref[i]))
		}
	}
}

func TestConvolveModeLengths(t *testing.T) {
	a := make([]float64, 10)
	b := make([]float64, 4)
	for _, tc := range []struct {
		mode Mode
		want int
	}{
		{ModeFull, 13},
		{ModeSame, 10},
		{ModeValid, 7},
	} {
		got, err := ConvolveMode(a, b, tc.mode)
		if err != nil {
			t.Fatalf("%v: error = %v", tc.mode, err)
		}
		if len(got) != tc.want {
			t.Fatalf("%v: len=%d, want %d", tc.mode, len(got), tc.want)
		}
	}
	// Valid mode is symmetric in which input is longer.
	got, err := ConvolveMode(b, a, ModeValid)
	if err != nil || len(got) != 7 {
		t.Fatalf("swapped valid len=%d err=%v, want 7", len(got), err)
	}
}

func TestConvolveModeRejectsBadInput(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("empty a: err=%v, want ErrInvalidParameter", err)
	}
	if _, err := ConvolveMode([]float64{1}, []float64{1}, Mode(7)); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("bad mode: err=%v, want ErrInvalidParameter", err)
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Fatalf("String()=%q, want Mode(7)", s)
	}
}

func TestCorrelateValid(t *testing.T) {
	got, err := Correlate([]float64{0, 1, 2, 3, 0}, []float64{1, 2, 3}, ModeValid)
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	want := []float64{8, 14, 8}
	if !equalWithin(got, want, 1e-12) {
		t.Fatalf("Correlate()=%v, want %v", got, want)
	}
}

func TestCorrelateFullLag(t *testing.T) {
	b := []float64{1, 2, 3}
	a := []float64{0, 0, 0, 1, 2, 3}
	got, err := Correlate(a, b, ModeFull)
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	idx, v := FindPeak(got)
	if lag := LagFromIndex(idx, len(b)); lag != 3 || v != 14 {
		t.Fatalf("peak lag=%d value=%v, want 3,14", lag, v)
	}
	if IndexFromLag(3, len(b)) != idx {
		t.Fatalf("IndexFromLag(3)=%d, want %d", IndexFromLag(3, len(b)), idx)
	}
}

func TestFindPeak(t *testing.T) {
	if i, v := FindPeak(nil); i != -1 || v != 0 {
		t.Fatalf("FindPeak(nil)=%d,%v, want -1,0", i, v)
	}
	if i, v := FindPeak([]float64{-3, -1, -1, -2}); i != 1 || v != -1 {
		t.Fatalf("FindPeak()=%d,%v, want 1,-1", i, v)
	}
}

func TestIntegralRectTrapezoid(t *testing.T) {
	c, err := NewIntegral(DefaultX, DefaultH)
	if err != nil {
		t.Fatalf("NewIntegral() error = %v", err)
	}
	// rect[0,2] * rect[0,1] rises on [0,1], is flat at 1 on [1,2] and
	// falls on [2,3]. The Riemann sum is off by at most a step or two.
	for _, tc := range []struct{ t, want float64 }{
		{-1, 0},
		{0.5, 0.5},
		{1.5, 1},
		{2.5, 0.5},
		{4, 0},
	} {
		if got := c.At(tc.t); math.Abs(got-tc.want) > 2*DefaultStep {
			t.Fatalf("y(%v)=%v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestIntegralPartialEndsAtOffset(t *testing.T) {
	c, err := NewIntegral(DefaultX, DefaultH)
	if err != nil {
		t.Fatalf("NewIntegral() error = %v", err)
	}
	full, err := c.Output(core.Range{Min: -5, Max: 8}, 0.1)
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	part, err := c.Partial(-5, 1.5, 0.1)
	if err != nil {
		t.Fatalf("Partial() error = %v", err)
	}
	if len(part) == 0 || len(part) >= len(full) {
		t.Fatalf("len(part)=%d, want between 1 and %d", len(part), len(full)-1)
	}
	if last := part[len(part)-1].X; math.Abs(last-1.5) > 1e-9 {
		t.Fatalf("last x=%v, want 1.5", last)
	}
	for i, p := range part {
		if p != full[i] {
			t.Fatalf("part[%d]=%v, want %v", i, p, full[i])
		}
	}
	empty, err := c.Partial(-5, -6, 0.1)
	if err != nil || len(empty) != 0 {
		t.Fatalf("Partial before start=%v,%v, want empty", empty, err)
	}
}

func TestIntegralKernelIsFlippedAndShifted(t *testing.T) {
	c, err := NewIntegral(DefaultX, DefaultH)
	if err != nil {
		t.Fatalf("NewIntegral() error = %v", err)
	}
	k, err := c.Kernel(3, core.Range{Min: 0, Max: 5}, 0.5)
	if err != nil {
		t.Fatalf("Kernel() error = %v", err)
	}
	// h(3-τ) is 1 for τ in [2, 3].
	for _, p := range k {
		want := 0.0
		if p.X >= 2 && p.X <= 3 {
			want = 1
		}
		if p.Y != want {
			t.Fatalf("kernel(%v)=%v, want %v", p.X, p.Y, want)
		}
	}
}

func TestNewIntegralRejectsBadInput(t *testing.T) {
	if _, err := NewIntegral(nil, DefaultH); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("nil x: err=%v, want ErrInvalidParameter", err)
	}
	if _, err := NewIntegral(DefaultX, DefaultH, WithSupport(core.Range{Min: 1, Max: 0})); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("reversed support: err=%v, want ErrInvalidParameter", err)
	}
	if _, err := StepGrid(core.Range{Min: 0, Max: 1}, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("zero step: err=%v, want ErrInvalidParameter", err)
	}
}

func TestStepGridIncludesEnd(t *testing.T) {
	g, err := StepGrid(core.Range{Min: -5, Max: 10}, 0.05)
	if err != nil {
		t.Fatalf("StepGrid() error = %v", err)
	}
	if len(g) != 301 {
		t.Fatalf("len=%d, want 301", len(g))
	}
}
