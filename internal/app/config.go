package app

import (
	"errors"
	"fmt"

	"github.com/beetlebugorg/iso8211/pkg/exchangeset"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Path   string // ISO 8211 file, or zip://archive!entry
	Format string // text, json or yaml

	LogFormat string
	LogLevel  string

	SchemaOnly bool                // print the DDR and stop
	Limit      int                 // maximum number of records, 0 for all
	Bounds     *exchangeset.Bounds // treat Path as CATALOG.031 and query its coverage
	Workers    int                 // >1 decodes in memory with a worker pool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text', 'json' or 'yaml'", cfg.Format)
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("invalid limit %d: must not be negative", cfg.Limit)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid workers %d: must not be negative", cfg.Workers)
	}
	if cfg.Bounds != nil && cfg.SchemaOnly {
		return nil, errors.New("bounds and schema cannot be combined")
	}
	return &cfg, nil
}
