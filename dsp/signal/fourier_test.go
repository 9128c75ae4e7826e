package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/window"
	"github.com/cwbudde/algo-comms/internal/testutil"
)

func peakOf(t *testing.T, harmonics int, taper window.Type) float64 {
	t.Helper()
	s, err := SquareSeries(harmonics, taper, core.Range{Min: 0, Max: math.Pi}, 4000)
	if err != nil {
		t.Fatalf("SquareSeries() error = %v", err)
	}
	testutil.RequireFinite(t, s.Ys())
	p, ok := s.Peak()
	if !ok {
		t.Fatal("empty series")
	}
	return p.Y
}

func TestSquareSeriesGibbsOvershoot(t *testing.T) {
	for _, h := range []int{15, 31, 63} {
		peak := peakOf(t, h, window.TypeRectangular)
		if peak < 1.17 || peak > 1.19 {
			t.Fatalf("harmonics=%d: rectangular peak=%v, want ~1.179", h, peak)
		}
	}
}

func TestSquareSeriesHammingTaper(t *testing.T) {
	for _, h := range []int{15, 31, 63} {
		peak := peakOf(t, h, window.TypeHamming)
		if peak > 1.01 || peak < 0.99 {
			t.Fatalf("harmonics=%d: hamming peak=%v, want ~1.004", h, peak)
		}
	}
}

func TestSquareSeriesFundamentalOnly(t *testing.T) {
	s, err := SquareSeries(1, window.TypeHamming, core.Range{Min: 0, Max: math.Pi}, 3)
	if err != nil {
		t.Fatalf("SquareSeries() error = %v", err)
	}
	// One harmonic, weight At(hamming, 0.75) = 0.54.
	want := 0.54 * 4 / math.Pi
	if math.Abs(s[1].Y-want) > 1e-12 {
		t.Fatalf("y(pi/2)=%v, want %v", s[1].Y, want)
	}
	if _, err := SquareSeries(0, window.TypeRectangular, core.Range{Min: 0, Max: 1}, 4); err == nil {
		t.Fatal("expected error for zero harmonics")
	}
}
