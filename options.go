package roundrobin

import "log/slog"

// Option configures a Scheduler.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	compact bool
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger the Scheduler reports ticks and task
// failures to. A nil logger keeps the default, which discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCompaction drops terminated Runners from the sequence at the
// end of every tick that completed without error. The relative order
// of the remaining Runners is unchanged.
func WithCompaction(enabled bool) Option {
	return func(c *config) {
		c.compact = enabled
	}
}
