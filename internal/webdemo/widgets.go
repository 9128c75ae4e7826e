package webdemo

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-comms/comms/access"
	"github.com/cwbudde/algo-comms/dsp/conv"
	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/pn"
	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/dsp/spectrum"
	"github.com/cwbudde/algo-comms/dsp/zplane"
)

const (
	lfsrHistory        = 32
	poleZeroResolution = 100
	defaultCostSize    = 8
)

// LFSRWidget animates the default 4-bit register and keeps the last 32
// bits shifted out of it.
type LFSRWidget struct {
	gen     *pn.Generator
	history []uint8
}

// NewLFSRWidget returns the widget at seed 1001.
func NewLFSRWidget() *LFSRWidget {
	return &LFSRWidget{gen: pn.NewDefaultGenerator()}
}

// Step shifts the register once and records the bit leaving it.
func (w *LFSRWidget) Step() {
	s := w.gen.State()
	w.history = append(w.history, s[len(s)-1])
	if len(w.history) > lfsrHistory {
		w.history = w.history[len(w.history)-lfsrHistory:]
	}
	w.gen.Next()
}

// State returns the register content.
func (w *LFSRWidget) State() pn.State { return w.gen.State() }

// History returns the recorded output bits, oldest first.
func (w *LFSRWidget) History() []uint8 { return append([]uint8(nil), w.history...) }

// Reset rewinds to the seed and clears the history.
func (w *LFSRWidget) Reset() {
	w.gen.Reset()
	w.history = nil
}

// HoppingWidget hops over the default 8 channels.
type HoppingWidget struct {
	hopper *pn.Hopper
}

// NewHoppingWidget returns a widget drawing hops from rng.
func NewHoppingWidget(rng *rand.Rand) (*HoppingWidget, error) {
	h, err := pn.NewHopper(pn.DefaultChannels, pn.DefaultHistory, rng)
	if err != nil {
		return nil, err
	}
	return &HoppingWidget{hopper: h}, nil
}

// Step performs one hop.
func (w *HoppingWidget) Step() { w.hopper.Hop() }

// Current returns the active channel.
func (w *HoppingWidget) Current() int { return w.hopper.Current() }

// History returns the recent hops, newest first.
func (w *HoppingWidget) History() []int {
	h := w.hopper.History()
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
	return h
}

// Reset clears the hop history.
func (w *HoppingWidget) Reset() { w.hopper.Reset() }

// AccessWidget runs the ALOHA/CSMA channel simulation.
type AccessWidget struct {
	sim *access.Simulator
}

// NewAccessWidget returns an ALOHA simulation at the default load.
func NewAccessWidget(rng *rand.Rand) (*AccessWidget, error) {
	sim, err := access.NewSimulator(access.ALOHA, access.DefaultLoad, rng)
	if err != nil {
		return nil, err
	}
	return &AccessWidget{sim: sim}, nil
}

// Step simulates one slot.
func (w *AccessWidget) Step() { w.sim.Step() }

// Simulator exposes the underlying simulation.
func (w *AccessWidget) Simulator() *access.Simulator { return w.sim }

// Reset restores ALOHA at the default load and clears the timeline.
func (w *AccessWidget) Reset() {
	w.sim.Reset()
}

// PoleZeroWidget holds an editable pole-zero layout.
type PoleZeroWidget struct {
	poles []complex128
	zeros []complex128
}

// NewPoleZeroWidget returns poles 0.5±0.5j and a zero at -1.
func NewPoleZeroWidget() *PoleZeroWidget {
	return &PoleZeroWidget{poles: zplane.DefaultPoles(), zeros: zplane.DefaultZeros()}
}

// Poles returns a copy of the poles.
func (w *PoleZeroWidget) Poles() []complex128 { return append([]complex128(nil), w.poles...) }

// Zeros returns a copy of the zeros.
func (w *PoleZeroWidget) Zeros() []complex128 { return append([]complex128(nil), w.zeros...) }

// Response samples the magnitude over [0, π) at 100 points.
func (w *PoleZeroWidget) Response() ([]zplane.Sample, error) {
	return zplane.FrequencyResponse(w.poles, w.zeros, poleZeroResolution)
}

// Pick finds the pole or zero within the pick radius of target. Poles win
// ties of the search order.
func (w *PoleZeroWidget) Pick(target complex128) (kind string, index int, ok bool) {
	if i, ok := zplane.Nearest(w.poles, target, zplane.DefaultPickRadius); ok {
		return pointKindPole, i, true
	}
	if i, ok := zplane.Nearest(w.zeros, target, zplane.DefaultPickRadius); ok {
		return pointKindZero, i, true
	}
	return "", -1, false
}

// Move places the selected point at pos. Stability is not enforced.
func (w *PoleZeroWidget) Move(kind string, index int, pos complex128) error {
	var pts []complex128
	switch kind {
	case pointKindPole:
		pts = w.poles
	case pointKindZero:
		pts = w.zeros
	default:
		return fmt.Errorf("%w: point kind must be pole or zero: %q", core.ErrInvalidParameter, kind)
	}
	if index < 0 || index >= len(pts) {
		return fmt.Errorf("%w: %s index out of range: %d", core.ErrInvalidParameter, kind, index)
	}
	pts[index] = pos
	return nil
}

// Stable reports whether all poles are inside the unit circle.
func (w *PoleZeroWidget) Stable() bool { return zplane.IsStable(w.poles) }

// Reset restores the default layout.
func (w *PoleZeroWidget) Reset() {
	w.poles = zplane.DefaultPoles()
	w.zeros = zplane.DefaultZeros()
}

// PulseWidget holds raised-cosine parameters.
type PulseWidget struct {
	params pulse.Params
}

// NewPulseWidget returns roll-off 0.5 at 8 samples per symbol.
func NewPulseWidget() *PulseWidget {
	return &PulseWidget{params: pulse.DefaultParams()}
}

// SetParams replaces the parameters after validation.
func (w *PulseWidget) SetParams(p pulse.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	return nil
}

// Params returns the current parameters.
func (w *PulseWidget) Params() pulse.Params { return w.params }

// Series returns the sampled impulse response.
func (w *PulseWidget) Series() (core.Series, error) { return pulse.RaisedCosine(w.params) }

// Reset restores the defaults.
func (w *PulseWidget) Reset() { w.params = pulse.DefaultParams() }

// CostWidget compares DFT and FFT operation counts for one size.
type CostWidget struct {
	n int
}

// NewCostWidget starts at N = 8.
func NewCostWidget() *CostWidget { return &CostWidget{n: defaultCostSize} }

// SetSize changes N.
func (w *CostWidget) SetSize(n int) error {
	if _, err := spectrum.EstimateCost(n); err != nil {
		return err
	}
	w.n = n
	return nil
}

// Size returns N.
func (w *CostWidget) Size() int { return w.n }

// Report returns the operation counts for N.
func (w *CostWidget) Report() spectrum.CostReport {
	r, _ := spectrum.EstimateCost(w.n)
	return r
}

// Butterflies returns the FFT wiring for N when N is a power of two.
func (w *CostWidget) Butterflies() ([][]spectrum.Edge, error) { return spectrum.Butterflies(w.n) }

// Reset restores N = 8.
func (w *CostWidget) Reset() { w.n = defaultCostSize }

// Convolution widget geometry: the shift sweeps [-5, 8], the flipped
// kernel is drawn over [-10, 10] and the output is traced from -5.
const (
	convShiftMin  = -5
	convShiftMax  = 8
	convShiftStep = 0.02
	convPlotStep  = 0.1
)

var convPlotRange = core.Range{Min: -10, Max: 10}

// ConvolutionWidget slides h(t−τ) across x(τ) and traces y(t) = (x*h)(t)
// up to the current shift.
type ConvolutionWidget struct {
	integral *conv.Integral
	offset   float64
}

// NewConvolutionWidget convolves rect[0,2] with rect[0,1], starting at
// shift -5.
func NewConvolutionWidget() (*ConvolutionWidget, error) {
	c, err := conv.NewIntegral(conv.DefaultX, conv.DefaultH)
	if err != nil {
		return nil, err
	}
	return &ConvolutionWidget{integral: c, offset: convShiftMin}, nil
}

// Step advances the shift by 0.02 and wraps to -5 once it reaches 8.
func (w *ConvolutionWidget) Step() {
	if w.offset >= convShiftMax {
		w.offset = convShiftMin
		return
	}
	w.offset += convShiftStep
}

// Offset returns the current shift t.
func (w *ConvolutionWidget) Offset() float64 { return w.offset }

// SetOffset moves the shift, clamped to [-5, 8].
func (w *ConvolutionWidget) SetOffset(t float64) {
	w.offset = core.Clamp(t, convShiftMin, convShiftMax)
}

// Input samples x(τ) over the plot range.
func (w *ConvolutionWidget) Input() (core.Series, error) {
	return w.integral.Input(convPlotRange, convPlotStep)
}

// Kernel samples h(t−τ) at the current shift over the plot range.
func (w *ConvolutionWidget) Kernel() (core.Series, error) {
	return w.integral.Kernel(w.offset, convPlotRange, convPlotStep)
}

// Output traces y from -5 up to the current shift.
func (w *ConvolutionWidget) Output() (core.Series, error) {
	return w.integral.Partial(convShiftMin, w.offset, convPlotStep)
}

// Reset returns the shift to -5.
func (w *ConvolutionWidget) Reset() { w.offset = convShiftMin }
