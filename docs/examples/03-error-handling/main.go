package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/iso8211/pkg/iso8211"
)

func dump(path string) error {
	f, err := iso8211.OpenFile(path)
	if err != nil {
		// Check if file exists
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		if errors.Is(err, iso8211.InvalidLeader) {
			return fmt.Errorf("%s is not an ISO 8211 file: %w", path, err)
		}
		return err
	}
	defer f.Close()

	n := 0
	for _, err := range f.Records() {
		if err != nil {
			var rerr *iso8211.RecordError
			if errors.As(err, &rerr) && errors.Is(err, iso8211.EOF) {
				log.Printf("Warning: %s is truncated after record %d", path, rerr.Index-1)
			}
			// Print every cause, outermost first
			for _, cause := range iso8211.Chain(err) {
				log.Printf("  %v", cause)
			}
			return err
		}
		n++
	}

	fmt.Printf("%s: %d records\n", path, n)
	return nil
}

func main() {
	if err := dump("ENC_ROOT/CATALOG.031"); err != nil {
		log.Printf("Error: %v", err)
	}

	// Try a non-existent file
	if err := dump("NONEXISTENT.031"); err != nil {
		log.Printf("Expected error: %v", err)
	}
}
