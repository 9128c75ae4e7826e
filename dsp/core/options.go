package core

// Config holds settings shared by the signal sources.
type Config struct {
	SampleRate float64
	Seed       uint64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used by the teaching widgets: a unit
// sample rate, so sample index and time coincide, and seed 1.
func DefaultConfig() Config {
	return Config{
		SampleRate: 1,
		Seed:       1,
	}
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSeed sets the seed for randomized sources.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
