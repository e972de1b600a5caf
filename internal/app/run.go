package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beetlebugorg/iso8211/pkg/exchangeset"
	"github.com/beetlebugorg/iso8211/pkg/iso8211"
)

// Run executes the dump described by the configuration.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "path", a.config.Path, "format", a.config.Format)

	enc := newEncoder(a.config.Format, a.outW)
	var err error
	switch {
	case a.config.Bounds != nil:
		err = a.queryCoverage(enc)
	case a.config.Workers > 1:
		err = a.dumpParallel(ctx, enc)
	default:
		err = a.dumpSequential(enc)
	}
	if cerr := enc.Close(); err == nil {
		err = cerr
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// dumpSequential streams records from the file as they decode.
func (a *App) dumpSequential(enc encoder) error {
	f, err := iso8211.OpenFile(a.config.Path, iso8211.WithLogger(a.logger))
	if err != nil {
		return describe(err)
	}
	defer f.Close()

	if err := enc.Schema(newSchemaDoc(f.Schema())); err != nil {
		return err
	}
	if a.config.SchemaOnly {
		return nil
	}

	n := 0
	for rec, err := range f.Records() {
		if err != nil {
			return describe(err)
		}
		if err := enc.Record(newRecordDoc(n, rec)); err != nil {
			return err
		}
		n++
		if a.config.Limit > 0 && n >= a.config.Limit {
			break
		}
	}
	a.logger.Info("Dump finished.", "records", n)
	return nil
}

// dumpParallel reads the whole file and decodes its records with a worker
// pool. Output matches dumpSequential: records up to the first failure, then
// the failure.
func (a *App) dumpParallel(ctx context.Context, enc encoder) error {
	data, err := iso8211.ReadFile(a.config.Path)
	if err != nil {
		return err
	}
	records, splitErr := iso8211.SplitRecords(data)
	if len(records) == 0 {
		if splitErr == nil {
			splitErr = &iso8211.Error{Kind: iso8211.EOF}
		}
		return describe(&iso8211.Error{Kind: iso8211.CouldNotParseCatalog, Err: splitErr})
	}
	schema, err := iso8211.ParseDDR(records[0])
	if err != nil {
		return describe(&iso8211.Error{Kind: iso8211.CouldNotParseCatalog, Err: err})
	}
	if err := enc.Schema(newSchemaDoc(schema)); err != nil {
		return err
	}
	if a.config.SchemaOnly {
		return nil
	}

	records = records[1:]
	if a.config.Limit > 0 && len(records) >= a.config.Limit {
		records = records[:a.config.Limit]
		splitErr = nil
	}

	recs, errs := iso8211.DecodeParallel(ctx, schema, records, iso8211.LoadOptions{
		Workers:    a.config.Workers,
		SkipErrors: true,
		Progress: func(done, total int) {
			a.logger.Debug("Decode progress.", "done", done, "total", total)
		},
	})

	n := 0
	var last *iso8211.Record
	for i, rec := range recs {
		if rec == nil {
			break
		}
		if err := enc.Record(newRecordDoc(i, rec)); err != nil {
			return err
		}
		last = rec
		n++
	}
	if len(errs) > 0 {
		a.logger.Warn("Records failed to decode.", "failed", len(errs))
		return describe(errs[0])
	}
	if splitErr != nil {
		return describe(&iso8211.RecordError{
			Index: len(records),
			Last:  last,
			Err:   &iso8211.Error{Kind: iso8211.InvalidDR, Err: splitErr},
		})
	}
	a.logger.Info("Dump finished.", "records", n, "workers", a.config.Workers)
	return nil
}

// queryCoverage loads the file as an exchange set catalogue and lists the
// entries intersecting the configured bounds.
func (a *App) queryCoverage(enc encoder) error {
	cat, err := exchangeset.LoadFile(a.config.Path, iso8211.WithLogger(a.logger))
	if err != nil {
		return describe(err)
	}

	idx := cat.Index()
	entries := idx.Query(*a.config.Bounds)
	a.logger.Info("Coverage queried.", "indexed", idx.Count(), "matched", len(entries))

	if entries == nil {
		entries = []exchangeset.Entry{}
	}
	return enc.Entries(entriesDoc{Query: *a.config.Bounds, Entries: entries})
}

// describe renders a decode failure with its cause chain, one cause per line,
// and the last record that decoded.
func describe(err error) error {
	var b strings.Builder
	b.WriteString(err.Error())

	var rerr *iso8211.RecordError
	if errors.As(err, &rerr) {
		if rerr.Last != nil {
			fmt.Fprintf(&b, "\nlast good record: %d", rerr.Index-1)
		} else {
			b.WriteString("\nlast good record: none")
		}
	}
	for i, cause := range iso8211.Chain(err)[1:] {
		fmt.Fprintf(&b, "\n%*scaused by: %v", 2*(i+1), "", cause)
	}
	return &DecodeError{Message: b.String(), Err: err}
}

// DecodeError is a failure to decode the input, described for a terminal.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string { return e.Message }

func (e *DecodeError) Unwrap() error { return e.Err }
