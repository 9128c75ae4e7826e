package zplane

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
)

func TestFrequencyResponseDefaultGrid(t *testing.T) {
	got, err := FrequencyResponse(DefaultPoles(), DefaultZeros(), 100)
	if err != nil {
		t.Fatalf("FrequencyResponse() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len=%d, want 100", len(got))
	}
	for k, s := range got {
		if want := float64(k) / 100; math.Abs(s.AngleFraction-want) > 1e-15 {
			t.Fatalf("AngleFraction[%d]=%v, want %v", k, s.AngleFraction, want)
		}
		want := Magnitude(DefaultPoles(), DefaultZeros(), float64(k)/100*math.Pi)
		if math.Abs(s.Magnitude-want) > 1e-12 {
			t.Fatalf("Magnitude[%d]=%v, want %v", k, s.Magnitude, want)
		}
	}

	// DC: |1+1| / (|1-(0.5+0.5j)| * |1-(0.5-0.5j)|) = 2 / 0.5 = 4.
	if math.Abs(got[0].Magnitude-4) > 1e-12 {
		t.Fatalf("DC gain=%v, want 4", got[0].Magnitude)
	}
}

func TestFrequencyResponseEmptyIsUnity(t *testing.T) {
	got, err := FrequencyResponse(nil, nil, 16, WithFullCircle())
	if err != nil {
		t.Fatalf("FrequencyResponse() error = %v", err)
	}
	for k, s := range got {
		if s.Magnitude != 1 {
			t.Fatalf("Magnitude[%d]=%v, want 1", k, s.Magnitude)
		}
	}
}

func TestFrequencyResponseConjugateSymmetry(t *testing.T) {
	poles := []complex128{cmplx.Rect(0.8, 1.1), cmplx.Rect(0.8, -1.1), 0.3}
	zeros := []complex128{cmplx.Rect(1, 2.2), cmplx.Rect(1, -2.2)}
	const n = 64
	got, err := FrequencyResponse(poles, zeros, n, WithFullCircle())
	if err != nil {
		t.Fatalf("FrequencyResponse() error = %v", err)
	}
	if got[n-1].AngleFraction >= 2 {
		t.Fatalf("last angle fraction=%v, want < 2", got[n-1].AngleFraction)
	}
	for k := 1; k < n; k++ {
		a, b := got[k].Magnitude, got[n-k].Magnitude
		if math.Abs(a-b) > 1e-12*math.Max(1, a) {
			t.Fatalf("|H| at k=%d is %v, at %d is %v", k, a, n-k, b)
		}
	}
}

func TestFrequencyResponsePeakGrowsWithRadius(t *testing.T) {
	peak := func(r float64) float64 {
		poles := []complex128{cmplx.Rect(r, math.Pi/4), cmplx.Rect(r, -math.Pi/4)}
		got, err := FrequencyResponse(poles, nil, 200)
		if err != nil {
			t.Fatalf("FrequencyResponse() error = %v", err)
		}
		m := 0.0
		for _, s := range got {
			m = math.Max(m, s.Magnitude)
		}
		return m
	}
	if lo, hi := peak(0.9), peak(0.99); hi <= lo {
		t.Fatalf("peak at r=0.99 (%v) not above r=0.9 (%v)", hi, lo)
	}
}

func TestFrequencyResponseEpsilonFloor(t *testing.T) {
	poles := []complex128{1}
	got, err := FrequencyResponse(poles, nil, 8)
	if err != nil {
		t.Fatalf("FrequencyResponse() error = %v", err)
	}
	if math.Abs(got[0].Magnitude-1/DefaultEpsilon) > 1e-9 {
		t.Fatalf("gain on pole=%v, want %v", got[0].Magnitude, 1/DefaultEpsilon)
	}

	got, _ = FrequencyResponse(poles, nil, 8, WithEpsilon(0.5), WithEpsilon(-1))
	if got[0].Magnitude != 2 {
		t.Fatalf("gain with eps 0.5=%v, want 2", got[0].Magnitude)
	}
	if v := Magnitude(poles, nil, 0, WithEpsilon(0.25)); v != 4 {
		t.Fatalf("Magnitude()=%v, want 4", v)
	}
}

func TestFrequencyResponseValidation(t *testing.T) {
	if _, err := FrequencyResponse(nil, nil, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("resolution 0 error = %v", err)
	}
	bad := []complex128{complex(math.NaN(), 0)}
	if _, err := FrequencyResponse(bad, nil, 4); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("NaN pole error = %v", err)
	}
	if _, err := FrequencyResponse(nil, []complex128{cmplx.Inf()}, 4); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Inf zero error = %v", err)
	}
}

func TestMagnitudeDB(t *testing.T) {
	db := MagnitudeDB([]Sample{{Magnitude: 10}, {Magnitude: 0}, {Magnitude: 1e-9}}, -60)
	want := []float64{20, -60, -60}
	for i := range want {
		if math.Abs(db[i]-want[i]) > 1e-9 {
			t.Fatalf("MagnitudeDB()=%v, want %v", db, want)
		}
	}
}
