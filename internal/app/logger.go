package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the dump's diagnostic logger, which writes to logW (stderr
// in s57dump) so that record output on stdout stays machine readable. Level
// names are case-insensitive; an unknown or empty level falls back to warn,
// the s57dump default. It does not set the global logger.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if levelStr != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(strings.ToLower(levelStr))); err == nil {
			level = parsed
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(logW, handlerOpts))
}
