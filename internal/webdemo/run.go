package webdemo

import (
	"context"
	"time"
)

// Tick intervals of the animated widgets.
const (
	LFSRInterval        = 300 * time.Millisecond
	HopInterval         = 400 * time.Millisecond
	AccessInterval      = 200 * time.Millisecond
	ConvolutionInterval = 16 * time.Millisecond
)

// Stepper advances a widget by one tick.
type Stepper interface {
	Step()
}

// StepperFunc adapts a function to Stepper.
type StepperFunc func()

// Step calls f.
func (f StepperFunc) Step() { f() }

// Run calls s.Step once per value received from ticks until ctx is done or
// ticks is closed. It returns ctx.Err() on cancellation and nil when the
// ticks run out. Steps never overlap.
func Run(ctx context.Context, ticks <-chan time.Time, s Stepper) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			s.Step()
		}
	}
}

// RunEvery drives s from a time.Ticker with the given interval until ctx
// is done.
func RunEvery(ctx context.Context, interval time.Duration, s Stepper) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	return Run(ctx, t.C, s)
}
