package iso8211

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// zipScheme prefixes paths that name an entry inside a zip archive:
// zip:///path/to/ENC_ROOT.zip!ENC_ROOT/CATALOG.031
const zipScheme = "zip://"

// File is a Catalog opened from a path. Close releases the underlying file.
type File struct {
	*Catalog
	closers []io.Closer
}

// OpenFile opens an ISO 8211 file from disk, or from inside a zip archive when
// path uses the zip://archive!entry form, and compiles its DDR.
func OpenFile(path string, opts ...Option) (*File, error) {
	rc, closers, err := openPath(path)
	if err != nil {
		return nil, err
	}

	cat, err := Open(rc, opts...)
	if err != nil {
		closeAll(closers)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &File{Catalog: cat, closers: closers}, nil
}

// Close closes the file and, for zip entries, the archive.
func (f *File) Close() error {
	return closeAll(f.closers)
}

// ReadFile reads a whole ISO 8211 file into memory. It accepts the same paths
// as OpenFile.
func ReadFile(path string) ([]byte, error) {
	rc, closers, err := openPath(path)
	if err != nil {
		return nil, err
	}
	defer closeAll(closers)

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// openPath returns a reader for path and the closers to release, innermost
// first.
func openPath(path string) (io.Reader, []io.Closer, error) {
	if !strings.HasPrefix(path, zipScheme) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		return f, []io.Closer{f}, nil
	}

	parts := strings.SplitN(strings.TrimPrefix(path, zipScheme), "!", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, nil, fmt.Errorf("invalid zip path %q (expected zip://archive!entry)", path)
	}
	archive, entry := parts[0], parts[1]

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != entry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			zr.Close()
			return nil, nil, fmt.Errorf("open zip entry %s: %w", entry, err)
		}
		return rc, []io.Closer{rc, zr}, nil
	}
	zr.Close()
	return nil, nil, fmt.Errorf("file not found in zip: %s", entry)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
