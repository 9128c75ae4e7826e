package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
)

func TestSubcarrierSpectra(t *testing.T) {
	spec, err := SubcarrierSpectra(8, 1, core.Range{Min: -5, Max: 5}, 500)
	if err != nil {
		t.Fatalf("SubcarrierSpectra() error = %v", err)
	}
	if len(spec.Carriers) != 8 || len(spec.Total) != 500 {
		t.Fatalf("unexpected shape: %d carriers, %d points", len(spec.Carriers), len(spec.Total))
	}
	if spec.Centers[0] != -3.5 || spec.Centers[7] != 3.5 {
		t.Fatalf("centers=%v", spec.Centers)
	}
	for i, p := range spec.Total {
		sum := 0.0
		for _, c := range spec.Carriers {
			sum += c[i].Y
		}
		if math.Abs(sum-p.Y) > 1e-12 {
			t.Fatalf("total[%d]=%v, want %v", i, p.Y, sum)
		}
	}
}

func TestInterferenceOrthogonality(t *testing.T) {
	for _, spacing := range []float64{1, 2} {
		ici, err := Interference(8, spacing)
		if err != nil {
			t.Fatalf("Interference() error = %v", err)
		}
		if ici > 1e-20 {
			t.Fatalf("spacing %v: interference=%v, want 0", spacing, ici)
		}
	}
	ici, err := Interference(8, 0.5)
	if err != nil {
		t.Fatalf("Interference() error = %v", err)
	}
	if ici < 0.1 {
		t.Fatalf("spacing 0.5: interference=%v, want > 0.1", ici)
	}
}

func TestSubcarrierSpectraRejectsBadInput(t *testing.T) {
	r := core.Range{Min: -1, Max: 1}
	if _, err := SubcarrierSpectra(0, 1, r, 10); err == nil {
		t.Fatal("expected error for zero carriers")
	}
	if _, err := SubcarrierSpectra(4, 0, r, 10); err == nil {
		t.Fatal("expected error for zero spacing")
	}
	if _, err := Interference(4, -1); err == nil {
		t.Fatal("expected error for negative spacing")
	}
}
