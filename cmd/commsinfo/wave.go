package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/signal"
	timestats "github.com/cwbudde/algo-comms/stats/time"
)

const wavBitDepth = 16

func runWave(args []string, stdout io.Writer, log *zap.Logger) error {
	def := signal.DefaultParams()
	fs := newFlagSet("wave", stdout)
	kindFlag := fs.String("kind", signal.KindSine.String(), "waveform: sine, cosine, rect or sinc")
	freq := fs.Float64("freq", def.Frequency, "frequency in Hz")
	amp := fs.Float64("amp", def.Amplitude, "amplitude")
	phase := fs.Float64("phase", def.Phase, "phase in radians")
	width := fs.Float64("width", def.HalfWidth, "pulse half-width in seconds")
	rate := fs.Int("rate", 16, "sample rate in Hz")
	n := fs.Int("n", 16, "number of samples")
	start := fs.Float64("start", 0, "time of the first sample in seconds")
	out := fs.String("wav", "", "write 16-bit mono PCM to this file instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := signal.ParseKind(*kindFlag)
	if err != nil {
		return err
	}
	if *rate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", core.ErrInvalidParameter, *rate)
	}
	if *n < 2 {
		return fmt.Errorf("%w: sample count must be >= 2: %d", core.ErrInvalidParameter, *n)
	}
	domain := core.Range{Min: *start, Max: *start + float64(*n-1)/float64(*rate)}
	p := signal.Params{Amplitude: *amp, Frequency: *freq, Phase: *phase, HalfWidth: *width}
	s, err := signal.Sample(kind, domain, *n, p)
	if err != nil {
		return err
	}

	st := timestats.Calculate(s.Ys())
	if *out != "" {
		if err := writeWAV(*out, s, *rate); err != nil {
			return err
		}
		log.Info("wrote wav",
			zap.String("path", *out),
			zap.Int("samples", len(s)),
			zap.Int("rate", *rate),
			zap.Float64("peak", st.Peak),
			zap.Float64("rms", st.RMS))
		if st.Peak > 1 {
			log.Warn("samples clipped at full scale", zap.Float64("peak", st.Peak))
		}
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "t [s]\t%s\n", kind)
	_, _ = fmt.Fprintf(tw, "-----\t----\n")
	for _, pt := range s {
		_, _ = fmt.Fprintf(tw, "%.6f\t%.6f\n", pt.X, pt.Y)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "\nrms=%.4f peak=%.4f dc=%.4f zero-crossings=%d\n",
		st.RMS, st.Peak, st.DC, st.ZeroCrossings)
	return err
}

// pcm16 scales s to 16-bit integers, clipping at full scale.
func pcm16(s core.Series) []int {
	const full = 1<<(wavBitDepth-1) - 1
	data := make([]int, len(s))
	for i, pt := range s {
		v := math.Max(-1, math.Min(1, pt.Y))
		data[i] = int(math.Round(v * full))
	}
	return data
}

func writeWAV(path string, s core.Series, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, rate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           pcm16(s),
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return f.Close()
}
