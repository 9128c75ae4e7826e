package signal

import (
	"math"
	"testing"
)

func TestPerceivedFrequency(t *testing.T) {
	tests := []struct {
		name    string
		f, fs   float64
		want    float64
		aliased bool
	}{
		{name: "oversampled", f: 1, fs: 10, want: 1, aliased: false},
		{name: "nyquist", f: 1, fs: 2, want: 1, aliased: false},
		{name: "undersampled", f: 1, fs: 1.5, want: 0.5, aliased: true},
		{name: "multiple", f: 3, fs: 1, want: 0, aliased: true},
		{name: "near-multiple", f: 2.1, fs: 2, want: 0.1, aliased: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PerceivedFrequency(tt.f, tt.fs)
			if err != nil {
				t.Fatalf("PerceivedFrequency() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("PerceivedFrequency(%v,%v)=%v, want %v", tt.f, tt.fs, got, tt.want)
			}
			if IsAliased(tt.f, tt.fs) != tt.aliased {
				t.Fatalf("IsAliased(%v,%v)=%v, want %v", tt.f, tt.fs, !tt.aliased, tt.aliased)
			}
		})
	}
	if _, err := PerceivedFrequency(1, 0); err == nil {
		t.Fatal("expected error for zero sampling rate")
	}
}

func TestSampleInstants(t *testing.T) {
	s, err := SampleInstants(1, 2.5, 5)
	if err != nil {
		t.Fatalf("SampleInstants() error = %v", err)
	}
	if len(s) != 13 {
		t.Fatalf("len=%d, want 13", len(s))
	}
	if math.Abs(s[12].X-4.8) > 1e-12 {
		t.Fatalf("last instant=%v, want 4.8", s[12].X)
	}
	for _, p := range s {
		if math.Abs(p.Y-math.Sin(2*math.Pi*p.X)) > 1e-12 {
			t.Fatalf("sample at %v = %v", p.X, p.Y)
		}
	}

	exact, err := SampleInstants(1, 4, 1)
	if err != nil {
		t.Fatalf("SampleInstants() error = %v", err)
	}
	if len(exact) != 5 || exact[4].X != 1 {
		t.Fatalf("expected tMax to be included, got %v", exact)
	}
	if _, err := SampleInstants(1, -1, 1); err == nil {
		t.Fatal("expected error for negative rate")
	}
}
