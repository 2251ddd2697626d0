package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/knapsack/solver"
)

// Compression identifies an instance file container.
type Compression int

const (
	// Plain is uncompressed text.
	Plain Compression = iota
	// Gzip is RFC 1952 gzip (".gz").
	Gzip
	// Zstd is a Zstandard frame (".zst").
	Zstd
	// LZ4 is an LZ4 frame (".lz4").
	LZ4
)

// String returns the canonical file extension, or "" for Plain.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionOf infers the container from the file extension (case-insensitive).
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

// readCloser chains a decompressor's Close before the file's.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var errs []error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewReader wraps r with the decompressor for c. The returned Closer
// releases decompressor resources only; r itself is not closed.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Plain:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("codec: gzip: %w", err)
		}

		return zr, nil
	case Zstd:
		// Single-threaded decoding keeps the reader free of background goroutines.
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %w", err)
		}

		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("codec: unknown compression %d", int(c))
	}
}

// Open opens path for reading, transparently decompressing by extension.
// Closing the result closes both the decompressor and the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	dr, err := NewReader(f, CompressionOf(path))
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &readCloser{Reader: dr, closers: []io.Closer{dr, f}}, nil
}

// ReadFile opens and decodes the instance stored at path.
func ReadFile(path string) (solver.Instance, error) {
	rc, err := Open(path)
	if err != nil {
		return solver.Instance{}, err
	}
	inst, err := Decode(rc)
	if cerr := rc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("codec: close %s: %w", path, cerr)
	}
	if err != nil {
		return solver.Instance{}, err
	}

	return inst, nil
}
