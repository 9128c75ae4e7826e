package core

import (
	"errors"
	"math"
	"testing"
)

func TestRangeGrid(t *testing.T) {
	grid, err := Range{Min: -5, Max: 5}.Grid(11)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	for i, x := range grid {
		want := float64(i - 5)
		if math.Abs(x-want) > 1e-12 {
			t.Fatalf("grid[%d]=%v, want %v", i, x, want)
		}
	}
}

func TestRangeGridRejectsLowResolution(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := (Range{Min: 0, Max: 1}).Grid(n); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("Grid(%d) error = %v, want ErrInvalidParameter", n, err)
		}
	}
}

func TestRangeValidate(t *testing.T) {
	if err := (Range{Min: 1, Max: 0}).Validate(); err == nil {
		t.Fatal("expected error for reversed range")
	}
	if err := (Range{Min: math.NaN(), Max: 0}).Validate(); err == nil {
		t.Fatal("expected error for NaN bound")
	}
	if err := (Range{Min: 2, Max: 2}).Validate(); err != nil {
		t.Fatalf("degenerate range error = %v", err)
	}
}

func TestSeriesAccessors(t *testing.T) {
	s, err := Zip([]float64{0, 1, 2}, []float64{0.5, -2, 1})
	if err != nil {
		t.Fatalf("Zip() error = %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("len=%d, want 3", s.Len())
	}
	p, ok := s.Peak()
	if !ok || p.X != 1 || p.Y != -2 {
		t.Fatalf("Peak()=%v,%v, want {1 -2},true", p, ok)
	}
	ys := s.Ys()
	if ys[2] != 1 {
		t.Fatalf("Ys()[2]=%v, want 1", ys[2])
	}
	if _, ok := Series(nil).Peak(); ok {
		t.Fatal("expected no peak for empty series")
	}
	if _, err := Zip([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
