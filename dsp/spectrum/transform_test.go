package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/internal/testutil"
)

func TestBinsMatchReferenceFFT(t *testing.T) {
	x := testutil.DeterministicNoise(11, 1, 64)
	got, err := Bins(x)
	if err != nil {
		t.Fatalf("Bins() error = %v", err)
	}
	want := fft.FFTReal(x)
	for k := range want {
		if cmplx.Abs(got[k]-want[k]) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, got[k], want[k])
		}
	}
}

func TestBinsRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := Bins(make([]float64, 12)); err == nil {
		t.Fatal("expected error for length 12")
	}
}

func TestTransformRectIsSinc(t *testing.T) {
	grid, err := core.Range{Min: -8, Max: 8}.Grid(1601)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	s := make(core.Series, len(grid))
	for i, x := range grid {
		y := 0.0
		if math.Abs(x) < 0.5 {
			y = 1
		}
		s[i] = core.Point{X: x, Y: y}
	}

	spec, err := Transform(s)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	testutil.RequireFinite(t, spec.Ys())
	for _, p := range spec {
		if math.Abs(p.X) > 3 {
			continue
		}
		want := math.Abs(core.Sinc(p.X))
		if math.Abs(p.Y-want) > 0.03 {
			t.Fatalf("|F|(%v)=%v, want ~%v", p.X, p.Y, want)
		}
	}
	peak, _ := spec.Peak()
	if math.Abs(peak.X) > 1e-9 {
		t.Fatalf("peak at f=%v, want 0", peak.X)
	}
}

func TestTransformRejectsBadSeries(t *testing.T) {
	if _, err := Transform(core.Series{{X: 0, Y: 1}}); err == nil {
		t.Fatal("expected error for single point")
	}
	uneven := core.Series{{X: 0}, {X: 1}, {X: 3}}
	if _, err := Transform(uneven); err == nil {
		t.Fatal("expected error for uneven spacing")
	}
	reversed := core.Series{{X: 1}, {X: 0}}
	if _, err := Transform(reversed); err == nil {
		t.Fatal("expected error for decreasing x")
	}
}
