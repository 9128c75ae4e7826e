// Package webdemo holds the state of the interactive lesson widgets and the
// engine that the js/wasm bridge exports to the browser.
package webdemo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/cwbudde/algo-comms/dsp/core"
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for state transitions. The default is a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed seeds the randomized widgets. Equal seeds give equal runs.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// Engine groups the widgets by topic id and tracks which animated ones are
// running. It is not safe for concurrent use; the browser drives it from a
// single event loop.
type Engine struct {
	logger *zap.Logger
	seed   uint64

	lfsr     *LFSRWidget
	hopping  *HoppingWidget
	access   *AccessWidget
	poleZero *PoleZeroWidget
	pulse    *PulseWidget
	cost     *CostWidget
	conv     *ConvolutionWidget

	running map[string]bool
}

// NewEngine builds all widgets in their default state. Frequency hopping
// starts running; the other animations start stopped.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:   zap.NewNop(),
		seed:     core.DefaultConfig().Seed,
		lfsr:     NewLFSRWidget(),
		poleZero: NewPoleZeroWidget(),
		pulse:    NewPulseWidget(),
		cost:     NewCostWidget(),
		running:  map[string]bool{TopicFHSS: true},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if err := e.resetHopping(); err != nil {
		return nil, err
	}
	if err := e.resetAccess(); err != nil {
		return nil, err
	}
	c, err := NewConvolutionWidget()
	if err != nil {
		return nil, fmt.Errorf("convolution widget: %w", err)
	}
	e.conv = c
	e.logger.Debug("engine ready", zap.Uint64("seed", e.seed), zap.Strings("topics", e.Topics()))
	return e, nil
}

func (e *Engine) rng(stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(e.seed, stream))
}

func (e *Engine) resetHopping() error {
	w, err := NewHoppingWidget(e.rng(1))
	if err != nil {
		return fmt.Errorf("hopping widget: %w", err)
	}
	e.hopping = w
	return nil
}

func (e *Engine) resetAccess() error {
	w, err := NewAccessWidget(e.rng(2))
	if err != nil {
		return fmt.Errorf("access widget: %w", err)
	}
	e.access = w
	return nil
}

// LFSR returns the shift-register widget.
func (e *Engine) LFSR() *LFSRWidget { return e.lfsr }

// Hopping returns the frequency-hopping widget.
func (e *Engine) Hopping() *HoppingWidget { return e.hopping }

// Access returns the ALOHA/CSMA widget.
func (e *Engine) Access() *AccessWidget { return e.access }

// PoleZero returns the pole-zero widget.
func (e *Engine) PoleZero() *PoleZeroWidget { return e.poleZero }

// Pulse returns the pulse-shaping widget.
func (e *Engine) Pulse() *PulseWidget { return e.pulse }

// Cost returns the DFT/FFT cost widget.
func (e *Engine) Cost() *CostWidget { return e.cost }

// Convolution returns the convolution widget.
func (e *Engine) Convolution() *ConvolutionWidget { return e.conv }

// Topics lists the topic ids served by the engine.
func (e *Engine) Topics() []string {
	t := []string{TopicPNSequence, TopicFHSS, TopicAccess, TopicPoleZero, TopicPulse, TopicCost, TopicConvolution}
	sort.Strings(t)
	return t
}

// Reset returns a topic's widget to its defaults and stops its animation.
// Randomized widgets are reseeded, so a reset replays the same run.
func (e *Engine) Reset(topic string) error {
	switch topic {
	case TopicPNSequence:
		e.lfsr.Reset()
	case TopicFHSS:
		if err := e.resetHopping(); err != nil {
			return err
		}
	case TopicAccess:
		if err := e.resetAccess(); err != nil {
			return err
		}
	case TopicPoleZero:
		e.poleZero.Reset()
	case TopicPulse:
		e.pulse.Reset()
	case TopicCost:
		e.cost.Reset()
	case TopicConvolution:
		e.conv.Reset()
	default:
		return unknownTopic(topic)
	}
	delete(e.running, topic)
	e.logger.Debug("topic reset", zap.String("topic", topic))
	return nil
}

func (e *Engine) stepper(topic string) (Stepper, bool) {
	switch topic {
	case TopicPNSequence:
		return e.lfsr, true
	case TopicFHSS:
		return e.hopping, true
	case TopicAccess:
		return e.access, true
	case TopicConvolution:
		return e.conv, true
	default:
		return nil, false
	}
}

// Interval returns the tick interval of an animated topic.
func (e *Engine) Interval(topic string) (time.Duration, error) {
	switch topic {
	case TopicPNSequence:
		return LFSRInterval, nil
	case TopicFHSS:
		return HopInterval, nil
	case TopicAccess:
		return AccessInterval, nil
	case TopicConvolution:
		return ConvolutionInterval, nil
	}
	return 0, notAnimated(topic)
}

// SetRunning starts or stops an animated topic.
func (e *Engine) SetRunning(topic string, running bool) error {
	if _, ok := e.stepper(topic); !ok {
		return notAnimated(topic)
	}
	if e.running[topic] != running {
		e.logger.Debug("topic running", zap.String("topic", topic), zap.Bool("running", running))
	}
	if running {
		e.running[topic] = true
	} else {
		delete(e.running, topic)
	}
	return nil
}

// Running reports whether a topic is animating.
func (e *Engine) Running(topic string) bool { return e.running[topic] }

// Tick advances a running topic by one step and reports whether it moved.
// Ticks for stopped topics are ignored, which is how a late timer callback
// after a stop is absorbed.
func (e *Engine) Tick(topic string) (bool, error) {
	s, ok := e.stepper(topic)
	if !ok {
		return false, notAnimated(topic)
	}
	if !e.running[topic] {
		return false, nil
	}
	s.Step()
	e.logger.Debug("tick", zap.String("topic", topic))
	return true, nil
}

// Animate ticks a topic at its interval until ctx is done. It is the
// in-process counterpart of the browser timers.
func (e *Engine) Animate(ctx context.Context, topic string) error {
	interval, err := e.Interval(topic)
	if err != nil {
		return err
	}
	if err := e.SetRunning(topic, true); err != nil {
		return err
	}
	defer func() { _ = e.SetRunning(topic, false) }()
	return RunEvery(ctx, interval, StepperFunc(func() {
		if _, err := e.Tick(topic); err != nil {
			e.logger.Warn("tick failed", zap.String("topic", topic), zap.Error(err))
		}
	}))
}

func unknownTopic(topic string) error {
	return fmt.Errorf("%w: unknown topic: %q", core.ErrInvalidParameter, topic)
}

func notAnimated(topic string) error {
	return fmt.Errorf("%w: topic is not animated: %q", core.ErrInvalidParameter, topic)
}
