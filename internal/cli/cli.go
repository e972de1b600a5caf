package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/beetlebugorg/iso8211/internal/app"
	"github.com/beetlebugorg/iso8211/pkg/exchangeset"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("s57dump", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
s57dump - Decode ISO 8211 files from IHO S-57 exchange sets.

Usage:
  s57dump [options] FILE

Arguments:
  FILE
    Path to an ISO 8211 file (CATALOG.031, a .000 cell, ...), or
    zip://ARCHIVE!ENTRY to read a file inside a zip archive.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "text", "Output format. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	schemaFlag := flagSet.Bool("schema", false, "Print the schema (DDR) only.")
	limitFlag := flagSet.Int("limit", 0, "Stop after this many records. 0 prints all.")
	boundsFlag := flagSet.String("bounds", "", "Treat FILE as CATALOG.031 and list entries intersecting minLon,minLat,maxLon,maxLat.")
	workersFlag := flagSet.Int("workers", 1, "Decode records in memory with this many workers when greater than 1.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected a single FILE argument"}
	}
	path := flagSet.Arg(0)
	slog.Debug("File path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var bounds *exchangeset.Bounds
	if *boundsFlag != "" {
		b, err := exchangeset.ParseBounds(*boundsFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid bounds: " + err.Error()}
		}
		bounds = &b
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Path:       path,
		Format:     strings.ToLower(*formatFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		SchemaOnly: *schemaFlag,
		Limit:      *limitFlag,
		Bounds:     bounds,
		Workers:    *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
