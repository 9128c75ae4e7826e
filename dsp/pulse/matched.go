package pulse

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/conv"
	"github.com/cwbudde/algo-comms/dsp/core"
)

// MatchedFilter correlates received with template, which is the output of
// a filter whose impulse response is the time-reversed template. Only
// fully overlapping positions are returned (len(received)-len(template)+1
// values); out[i] peaks where the template aligns with received[i:].
func MatchedFilter(received, template []float64) ([]float64, error) {
	if len(template) == 0 {
		return nil, fmt.Errorf("%w: matched filter template must not be empty", core.ErrInvalidParameter)
	}
	if len(received) < len(template) {
		return nil, fmt.Errorf("%w: received signal shorter than template: %d < %d",
			core.ErrInvalidParameter, len(received), len(template))
	}
	return conv.Correlate(received, template, conv.ModeValid)
}

// DetectPeak returns the index and value of the largest filter output. ok
// is false when the peak does not exceed threshold.
func DetectPeak(out []float64, threshold float64) (index int, value float64, ok bool) {
	index, value = conv.FindPeak(out)
	return index, value, index >= 0 && value > threshold
}
