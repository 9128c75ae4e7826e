package pn

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Defaults of the frequency-hopping widget.
const (
	DefaultChannels = 8
	DefaultHistory  = 20
)

// Hopper picks a channel per hop for frequency-hopping spread spectrum
// and keeps the most recent picks.
type Hopper struct {
	channels   int
	historyLen int
	rng        *rand.Rand

	current int
	history []int
}

// NewHopper returns a hopper over channels channels keeping at most
// history past hops. rng supplies the hop pattern; a shared seed on both
// ends reproduces the same pattern.
func NewHopper(channels, history int, rng *rand.Rand) (*Hopper, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count must be >= 1: %d", core.ErrInvalidParameter, channels)
	}
	if history < 1 {
		return nil, fmt.Errorf("%w: history length must be >= 1: %d", core.ErrInvalidParameter, history)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: hopper needs a random source", core.ErrInvalidParameter)
	}
	return &Hopper{
		channels:   channels,
		historyLen: history,
		rng:        rng,
		history:    make([]int, 0, history),
	}, nil
}

// Hop moves to a random channel and records it.
func (h *Hopper) Hop() int {
	h.current = h.rng.IntN(h.channels)
	if len(h.history) == h.historyLen {
		copy(h.history, h.history[1:])
		h.history = h.history[:len(h.history)-1]
	}
	h.history = append(h.history, h.current)
	return h.current
}

// Current returns the channel of the last hop (0 before the first).
func (h *Hopper) Current() int { return h.current }

// Channels returns the number of channels.
func (h *Hopper) Channels() int { return h.channels }

// History returns the recorded hops, oldest first.
func (h *Hopper) History() []int {
	return append([]int(nil), h.history...)
}

// Reset clears the history. The random source is not rewound.
func (h *Hopper) Reset() {
	h.current = 0
	h.history = h.history[:0]
}
