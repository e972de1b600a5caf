package parser

import "log/slog"

// Options configures decoding.
type Options struct {
	// Logger receives debug events for schema compilation and record
	// decoding. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns options with defaults.
func DefaultOptions() Options {
	return Options{
		Logger: nil,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
