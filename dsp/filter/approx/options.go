package approx

import "log/slog"

// DefaultSweepPoints is the number of frequencies sampled when locating the
// transition band during denormalization.
const DefaultSweepPoints = 100000

// Option configures an Engine or a DelayEngine.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	sweepPoints int
	matchTol    float64
}

// WithLogger sets the logger that receives search progress. Engines are
// silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSweepPoints sets the resolution of the transition-band sweep. Values
// below 2 are ignored.
func WithSweepPoints(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.sweepPoints = n
		}
	}
}

// WithMatchTolerance sets the slack in dB used by the template checks.
// Negative values are ignored.
func WithMatchTolerance(db float64) Option {
	return func(c *config) {
		if db >= 0 {
			c.matchTol = db
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		logger:      slog.New(slog.DiscardHandler),
		sweepPoints: DefaultSweepPoints,
		matchTol:    DefaultMatchTolerance,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
