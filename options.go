package gridpath

import (
	"io"
	"log/slog"
)

// config holds the construction-time settings a Map is built with.
type config struct {
	logger *slog.Logger
}

// Option configures a Map at construction time via New.
type Option func(*config)

// WithLogger attaches a *slog.Logger that Map uses for precompute summaries
// and query diagnostics, all at Debug level. The default, if this option is
// never supplied, discards every record.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
