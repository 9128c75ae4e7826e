package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// SubcarrierSpectrum holds the power spectra of individual OFDM subcarriers
// and their sum over a common frequency grid.
type SubcarrierSpectrum struct {
	Centers  []float64
	Carriers []core.Series
	Total    core.Series
}

// SubcarrierCenter returns the centre frequency of carrier k of n when the
// carriers are spaced by spacing (1 is orthogonal) around zero.
func SubcarrierCenter(k, n int, spacing float64) float64 {
	return (float64(k) - float64(n-1)/2) * spacing
}

// SubcarrierPower returns sinc^2(f - center): the power spectrum of one
// rectangular-pulse subcarrier.
func SubcarrierPower(center, f float64) float64 {
	v := core.Sinc(f - center)
	return v * v
}

// SubcarrierSpectra evaluates n subcarrier spectra at resolution points of
// domain.
func SubcarrierSpectra(n int, spacing float64, domain core.Range, resolution int) (SubcarrierSpectrum, error) {
	if n < 1 {
		return SubcarrierSpectrum{}, fmt.Errorf("%w: subcarrier count must be >= 1: %d", core.ErrInvalidParameter, n)
	}
	if spacing <= 0 {
		return SubcarrierSpectrum{}, fmt.Errorf("%w: subcarrier spacing must be > 0: %f", core.ErrInvalidParameter, spacing)
	}
	fs, err := domain.Grid(resolution)
	if err != nil {
		return SubcarrierSpectrum{}, err
	}

	out := SubcarrierSpectrum{
		Centers:  make([]float64, n),
		Carriers: make([]core.Series, n),
		Total:    make(core.Series, len(fs)),
	}
	for k := range out.Centers {
		out.Centers[k] = SubcarrierCenter(k, n, spacing)
		out.Carriers[k] = make(core.Series, len(fs))
	}
	for i, f := range fs {
		total := 0.0
		for k, c := range out.Centers {
			p := SubcarrierPower(c, f)
			out.Carriers[k][i] = core.Point{X: f, Y: p}
			total += p
		}
		out.Total[i] = core.Point{X: f, Y: total}
	}
	return out, nil
}

// Interference returns the summed power that the other carriers place on
// each carrier's centre frequency. It is zero (up to rounding) for integer
// spacing, the orthogonality condition.
func Interference(n int, spacing float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: subcarrier count must be >= 1: %d", core.ErrInvalidParameter, n)
	}
	if spacing <= 0 {
		return 0, fmt.Errorf("%w: subcarrier spacing must be > 0: %f", core.ErrInvalidParameter, spacing)
	}
	sum := 0.0
	for k := range n {
		ck := SubcarrierCenter(k, n, spacing)
		for j := range n {
			if j == k {
				continue
			}
			sum += SubcarrierPower(SubcarrierCenter(j, n, spacing), ck)
		}
	}
	return sum, nil
}
