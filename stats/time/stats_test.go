package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-comms/internal/testutil"
)

const tolerance = 1e-10

func TestCalculateDC(t *testing.T) {
	s := Calculate(testutil.DC(0.5, 1000))
	if s.Length != 1000 {
		t.Fatalf("Length=%d, want 1000", s.Length)
	}
	if math.Abs(s.DC-0.5) > tolerance || math.Abs(s.RMS-0.5) > tolerance {
		t.Fatalf("DC=%v RMS=%v, want 0.5", s.DC, s.RMS)
	}
	if s.Variance > tolerance || s.ZeroCrossings != 0 {
		t.Fatalf("Variance=%v ZeroCrossings=%d, want 0", s.Variance, s.ZeroCrossings)
	}
	if math.Abs(s.CrestFactor-1) > tolerance {
		t.Fatalf("CrestFactor=%v, want 1", s.CrestFactor)
	}
	if math.Abs(s.Energy-250) > 1e-9 || math.Abs(s.Power-0.25) > tolerance {
		t.Fatalf("Energy=%v Power=%v", s.Energy, s.Power)
	}
}

func TestCalculateSine(t *testing.T) {
	// 10 full cycles of 100 samples each.
	sig := testutil.DeterministicSine(10, 1000, 2, 1000)
	s := Calculate(sig)
	if math.Abs(s.RMS-math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS=%v, want %v", s.RMS, math.Sqrt2)
	}
	if math.Abs(s.DC) > 1e-9 {
		t.Fatalf("DC=%v, want 0", s.DC)
	}
	if math.Abs(s.Peak-2) > 1e-9 || math.Abs(s.CrestFactor-math.Sqrt2) > 1e-9 {
		t.Fatalf("Peak=%v CrestFactor=%v", s.Peak, s.CrestFactor)
	}
	if math.Abs(s.Variance-2) > 1e-9 {
		t.Fatalf("Variance=%v, want 2", s.Variance)
	}
	if math.Abs(s.RMSdB-20*math.Log10(math.Sqrt2)) > 1e-9 {
		t.Fatalf("RMSdB=%v", s.RMSdB)
	}
}

func TestCalculateAlternating(t *testing.T) {
	s := Calculate([]float64{3, -1, 2, -4})
	if s.Max != 3 || s.Min != -4 || s.Peak != 4 {
		t.Fatalf("Max=%v Min=%v Peak=%v", s.Max, s.Min, s.Peak)
	}
	if s.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings=%d, want 3", s.ZeroCrossings)
	}
	if RMS([]float64{3, -1, 2, -4}) != s.RMS || Peak([]float64{3, -1, 2, -4}) != 4 {
		t.Fatal("helpers disagree with Calculate")
	}
}

func TestCalculateEmptyAndSilent(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || !math.IsInf(s.RMSdB, -1) {
		t.Fatalf("empty stats = %+v", s)
	}
	s = Calculate(make([]float64, 8))
	if s.CrestFactor != 0 || !math.IsInf(s.RMSdB, -1) {
		t.Fatalf("silent stats = %+v", s)
	}
	if RMS(nil) != 0 || Peak(nil) != 0 {
		t.Fatal("helpers on empty input should be 0")
	}
}

func TestZeroCrossingsIgnoresExactZeros(t *testing.T) {
	if n := ZeroCrossings([]float64{1, 0, -1, 0, 1}); n != 0 {
		t.Fatalf("ZeroCrossings=%d, want 0", n)
	}
}
