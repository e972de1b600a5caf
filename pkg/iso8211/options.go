package iso8211

import (
	"log/slog"

	"github.com/beetlebugorg/iso8211/internal/parser"
)

// ParseOptions configures decoding.
type ParseOptions struct {
	// Logger receives debug events for schema compilation and each decoded
	// record. Nil discards them.
	Logger *slog.Logger
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Logger: nil,
	}
}

func (o ParseOptions) internal() parser.Options {
	return parser.Options{Logger: o.Logger}
}

// Option changes one ParseOptions setting.
type Option func(*ParseOptions)

// WithLogger sets the logger for decode events.
func WithLogger(l *slog.Logger) Option {
	return func(o *ParseOptions) {
		o.Logger = l
	}
}

// WithOptions replaces every setting with opts.
func WithOptions(opts ParseOptions) Option {
	return func(o *ParseOptions) {
		*o = opts
	}
}
