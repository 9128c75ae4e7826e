package info

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// ShannonCapacity returns B·log2(1 + SNR) in bits per second for a
// bandwidth in Hz and an SNR in dB.
func ShannonCapacity(bandwidth, snrDB float64) (float64, error) {
	if math.IsNaN(bandwidth) || bandwidth < 0 || math.IsInf(bandwidth, 0) {
		return 0, fmt.Errorf("%w: bandwidth must be finite and >= 0: %v", core.ErrInvalidParameter, bandwidth)
	}
	if math.IsNaN(snrDB) {
		return 0, fmt.Errorf("%w: snr must not be NaN", core.ErrInvalidParameter)
	}
	return bandwidth * math.Log2(1+core.DBPowerToLinear(snrDB)), nil
}

// SpectralEfficiency is the capacity per hertz, log2(1 + SNR).
func SpectralEfficiency(snrDB float64) float64 {
	return math.Log2(1 + core.DBPowerToLinear(snrDB))
}

// RequiredSNR inverts ShannonCapacity: the SNR in dB needed to carry rate
// bits per second over bandwidth Hz.
func RequiredSNR(rate, bandwidth float64) (float64, error) {
	if bandwidth <= 0 {
		return 0, fmt.Errorf("%w: bandwidth must be > 0: %v", core.ErrInvalidParameter, bandwidth)
	}
	if rate < 0 {
		return 0, fmt.Errorf("%w: rate must be >= 0: %v", core.ErrInvalidParameter, rate)
	}
	return core.LinearPowerToDB(math.Exp2(rate/bandwidth) - 1), nil
}

// ChannelQuality classifies an SNR for display.
type ChannelQuality int

const (
	ExtremelyNoisy ChannelQuality = iota
	ModerateNoise
	CleanChannel
)

func (q ChannelQuality) String() string {
	switch q {
	case ExtremelyNoisy:
		return "Extremely Noisy"
	case ModerateNoise:
		return "Moderate Noise"
	case CleanChannel:
		return "Clean Channel"
	default:
		return "Unknown"
	}
}

// Quality buckets snrDB: below 0 dB, below 15 dB, and the rest.
func Quality(snrDB float64) ChannelQuality {
	switch {
	case snrDB < 0:
		return ExtremelyNoisy
	case snrDB < 15:
		return ModerateNoise
	default:
		return CleanChannel
	}
}
