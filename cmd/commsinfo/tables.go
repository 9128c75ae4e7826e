package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-comms/dsp/pn"
	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/dsp/spectrum"
	"github.com/cwbudde/algo-comms/dsp/zplane"
)

var defaultCostSizes = []int{8, 16, 64, 256, 1024, 4096}

func runCost(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := newFlagSet("cost", stdout)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes := defaultCostSizes
	if fs.NArg() > 0 {
		sizes = sizes[:0:0]
		for _, a := range fs.Args() {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("size %q: %w", a, err)
			}
			sizes = append(sizes, n)
		}
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "N\tDFT mults\tFFT mults\tSpeedup\tStages\n")
	_, _ = fmt.Fprintf(tw, "-\t---------\t---------\t-------\t------\n")
	for _, n := range sizes {
		r, err := spectrum.EstimateCost(n)
		if err != nil {
			return err
		}
		stages := "-"
		if s, err := spectrum.Stages(n); err == nil {
			stages = strconv.Itoa(s)
		} else {
			log.Debug("size is not a power of two", zap.Int("n", n))
		}
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%.1f\t%.2f\t%s\n", r.N, r.DFTOperations, r.FFTOperations, r.Speedup(), stages)
	}
	return tw.Flush()
}

func runLFSR(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := newFlagSet("lfsr", stdout)
	seedFlag := fs.String("seed", pn.DefaultSeed().String(), "initial register state as 0/1 digits")
	tapsFlag := fs.String("taps", "", "comma separated tap indices (default: primitive taps for the width)")
	steps := fs.Int("n", 0, "steps to print (default: one period)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed, err := pn.ParseState(*seedFlag)
	if err != nil {
		return err
	}
	taps, err := parseTaps(*tapsFlag, len(seed))
	if err != nil {
		return err
	}
	period, err := pn.Period(seed, taps, 1<<len(seed))
	if err != nil {
		return err
	}
	log.Debug("lfsr", zap.Stringer("seed", seed), zap.Ints("taps", taps), zap.Int("period", period))

	n := *steps
	if n <= 0 {
		n = period
		if n == 0 {
			n = 1 << len(seed)
		}
	}

	g, err := pn.NewGenerator(seed, taps)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Step\tState\tOut\n")
	_, _ = fmt.Fprintf(tw, "----\t-----\t---\n")
	for i := 1; i <= n; i++ {
		bit := g.Next()
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\n", i, g.State(), bit)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if period == 0 {
		_, err = fmt.Fprintf(stdout, "\nperiod: seed not revisited\n")
		return err
	}
	_, err = fmt.Fprintf(stdout, "\nperiod: %d (maximal %d)\n", period, 1<<len(seed)-1)
	return err
}

func parseTaps(s string, width int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return pn.PrimitiveTaps(width)
	}
	parts := strings.Split(s, ",")
	taps := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("tap %q: %w", p, err)
		}
		taps = append(taps, v)
	}
	return taps, nil
}

func runPulse(args []string, stdout io.Writer, _ *zap.Logger) error {
	def := pulse.DefaultParams()
	fs := newFlagSet("pulse", stdout)
	beta := fs.Float64("beta", def.RollOff, "roll-off factor in [0, 1]")
	sps := fs.Int("sps", def.SamplesPerSymbol, "samples per symbol")
	span := fs.Int("span", def.SpanSymbols, "one-sided span in symbols")
	rrc := fs.Bool("rrc", false, "print unit-energy root-raised-cosine taps instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p := pulse.Params{RollOff: *beta, SamplesPerSymbol: *sps, SpanSymbols: *span}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "t [T]\th(t)\n")
	_, _ = fmt.Fprintf(tw, "-----\t----\n")
	if *rrc {
		taps, err := pulse.RootRaisedCosineTaps(p)
		if err != nil {
			return err
		}
		half := p.SpanSymbols * p.SamplesPerSymbol
		for i, v := range taps {
			_, _ = fmt.Fprintf(tw, "%.4f\t%.6f\n", float64(i-half)/float64(p.SamplesPerSymbol), v)
		}
		return tw.Flush()
	}

	s, err := pulse.RaisedCosine(p)
	if err != nil {
		return err
	}
	for _, pt := range s {
		_, _ = fmt.Fprintf(tw, "%.4f\t%.6f\n", pt.X, pt.Y)
	}
	return tw.Flush()
}

func runPoleZero(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := newFlagSet("polezero", stdout)
	resolution := fs.Int("resolution", 16, "number of frequency points")
	full := fs.Bool("full", false, "sweep the full circle instead of [0, pi)")
	floor := fs.Float64("floor", -120, "dB floor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	poles, zeros := zplane.DefaultPoles(), zplane.DefaultZeros()
	var opts []zplane.Option
	if *full {
		opts = append(opts, zplane.WithFullCircle())
	}
	resp, err := zplane.FrequencyResponse(poles, zeros, *resolution, opts...)
	if err != nil {
		return err
	}
	if !zplane.IsStable(poles) {
		log.Warn("pole set is unstable", zap.Float64("maxRadius", zplane.MaxPoleRadius(poles)))
	}
	db := zplane.MagnitudeDB(resp, *floor)

	_, _ = fmt.Fprintf(stdout, "poles: %v\nzeros: %v\n\n", poles, zeros)
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "w/pi\t|H|\t|H| [dB]\n")
	_, _ = fmt.Fprintf(tw, "----\t---\t--------\n")
	for i, s := range resp {
		_, _ = fmt.Fprintf(tw, "%.4f\t%.6f\t%.2f\n", s.AngleFraction, s.Magnitude, db[i])
	}
	return tw.Flush()
}
