package iso8211

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// LoadOptions controls parallel decoding and error handling.
type LoadOptions struct {
	// Workers is the number of decoder goroutines. If 0, defaults to
	// runtime.NumCPU(). A value of 1 decodes serially on the calling
	// goroutine.
	Workers int

	// SkipErrors continues past records that fail to decode. Failed records
	// are left nil in the result and their errors collected. When false, the
	// lowest failing record stops decoding and is returned alone, as a serial
	// decode would report it.
	SkipErrors bool

	// Progress is called after each record is decoded, successfully or not,
	// with the number processed so far and the total.
	Progress func(done, total int)
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Progress:   nil,
	}
}

// DecodeParallel decodes pre-sliced Data Records with a shared schema using a
// worker pool. The result is in input order.
//
// Errors are *RecordError values whose Index is the position in records and
// whose Last is the nearest preceding record that decoded.
//
// Example:
//
//	records, _ := iso8211.SplitRecords(data)
//	schema, _ := iso8211.ParseDDR(records[0])
//	recs, errs := iso8211.DecodeParallel(ctx, schema, records[1:], iso8211.DefaultLoadOptions())
func DecodeParallel(ctx context.Context, schema *Schema, records [][]byte, opts LoadOptions) ([]*Record, []error) {
	if len(records) == 0 {
		return []*Record{}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}
	if workers == 1 {
		return decodeSerial(ctx, schema, records, opts)
	}

	type decodeResult struct {
		index int
		rec   *Record
		err   error
	}

	// stop is the lowest failing index seen so far. Records past it are
	// skipped; records before it are always decoded.
	var stop atomic.Int64
	stop.Store(int64(len(records)))

	jobs := make(chan int, len(records))
	results := make(chan decodeResult, len(records))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				if !opts.SkipErrors && int64(index) > stop.Load() {
					results <- decodeResult{index: index}
					continue
				}
				if err := ctx.Err(); err != nil {
					results <- decodeResult{index: index, err: err}
					continue
				}
				rec, err := schema.DecodeRecord(records[index])
				results <- decodeResult{index: index, rec: rec, err: err}
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]*Record, len(records))
	failed := make(map[int]error)
	done := 0

	for result := range results {
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(records))
		}

		if result.err != nil {
			failed[result.index] = result.err
			if !opts.SkipErrors && int64(result.index) < stop.Load() {
				stop.Store(int64(result.index))
			}
			continue
		}
		out[result.index] = result.rec
	}

	if !opts.SkipErrors {
		if first := int(stop.Load()); first < len(records) {
			return nil, []error{&RecordError{Index: first, Last: lastGood(out, first), Err: failed[first]}}
		}
	}

	return out, collectErrors(out, failed)
}

// decodeSerial decodes records one at a time on the calling goroutine.
func decodeSerial(ctx context.Context, schema *Schema, records [][]byte, opts LoadOptions) ([]*Record, []error) {
	out := make([]*Record, len(records))
	failed := make(map[int]error)

	for i, raw := range records {
		err := ctx.Err()
		if err == nil {
			out[i], err = schema.DecodeRecord(raw)
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(records))
		}
		if err != nil {
			if !opts.SkipErrors {
				return nil, []error{&RecordError{Index: i, Last: lastGood(out, i), Err: err}}
			}
			failed[i] = err
		}
	}

	return out, collectErrors(out, failed)
}

// collectErrors orders failures by index and attaches the last good record
// before each.
func collectErrors(out []*Record, failed map[int]error) []error {
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for i := range out {
		if err, ok := failed[i]; ok {
			errs = append(errs, &RecordError{Index: i, Last: lastGood(out, i), Err: err})
		}
	}
	return errs
}

func lastGood(out []*Record, i int) *Record {
	for j := i - 1; j >= 0; j-- {
		if out[j] != nil {
			return out[j]
		}
	}
	return nil
}

// DecodeAll splits an in-memory file, compiles its DDR and decodes every Data
// Record in parallel.
func DecodeAll(ctx context.Context, data []byte, opts LoadOptions) (*Schema, []*Record, []error) {
	records, err := SplitRecords(data)
	if err != nil {
		return nil, nil, []error{fmt.Errorf("split records: %w", err)}
	}
	if len(records) == 0 {
		return nil, nil, []error{fmt.Errorf("split records: %w", &Error{Kind: EOF})}
	}

	schema, err := ParseDDR(records[0])
	if err != nil {
		return nil, nil, []error{&Error{Kind: CouldNotParseCatalog, Err: err}}
	}

	recs, errs := DecodeParallel(ctx, schema, records[1:], opts)
	return schema, recs, errs
}
