package bench

import "time"

// Config controls a plain-versus-lanes comparison.
type Config struct {
	// Size is the number of elements summed per operation.
	Size int
	// Seed selects the pseudo-random input.
	Seed int64
	// Offset places the input this many elements past a 64-byte boundary.
	Offset int
	// MinTime is the minimum measuring time per variant.
	MinTime time.Duration
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference setup: one million elements starting on
// a 64-byte boundary.
func DefaultConfig() Config {
	return Config{
		Size:    1_000_000,
		Seed:    1,
		Offset:  0,
		MinTime: 500 * time.Millisecond,
	}
}

// WithSize sets the number of elements.
func WithSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.Size = size
		}
	}
}

// WithSeed sets the input seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithOffset sets the misalignment of the input in elements.
func WithOffset(offset int) Option {
	return func(cfg *Config) {
		if offset >= 0 {
			cfg.Offset = offset
		}
	}
}

// WithMinTime sets the minimum measuring time per variant.
func WithMinTime(d time.Duration) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.MinTime = d
		}
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
