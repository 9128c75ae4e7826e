package conv

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Mode selects which part of a full convolution or correlation is kept.
type Mode int

const (
	// ModeFull keeps all len(a)+len(b)-1 outputs.
	ModeFull Mode = iota
	// ModeSame keeps len(a) outputs centred on the full result.
	ModeSame
	// ModeValid keeps the positions where the shorter input lies entirely
	// inside the longer one: |len(a)-len(b)|+1 outputs.
	ModeValid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func validate(a, b []float64, mode Mode) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("%w: convolution inputs must not be empty: %d, %d", core.ErrInvalidParameter, len(a), len(b))
	}
	if mode < ModeFull || mode > ModeValid {
		return fmt.Errorf("%w: unknown convolution mode: %d", core.ErrInvalidParameter, int(mode))
	}
	return nil
}

// Direct returns the full linear convolution of a and b,
// out[n] = Σ a[k]·b[n−k], of length len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if err := validate(a, b, ModeFull); err != nil {
		return nil, err
	}
	out := make([]float64, len(a)+len(b)-1)
	scaled := make([]float64, len(b))
	for i, v := range a {
		if v == 0 {
			continue
		}
		vecmath.ScaleBlock(scaled, b, v)
		vecmath.AddBlockInPlace(out[i:i+len(b)], scaled)
	}
	return out, nil
}

// ConvolveMode is Direct trimmed to mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	if err := validate(a, b, mode); err != nil {
		return nil, err
	}
	full, err := Direct(a, b)
	if err != nil {
		return nil, err
	}
	return trim(full, len(a), len(b), mode), nil
}

func trim(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		lo, hi := min(lenA, lenB), max(lenA, lenB)
		return full[lo-1 : hi]
	default:
		return full
	}
}
