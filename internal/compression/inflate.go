// Package compression provides utilities for inflating compressed asset data.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/jmylchreest/vexil/internal/security"
	"github.com/ulikunitz/xz"
)

// Format identifies a compression format detected from magic bytes.
type Format string

const (
	// FormatXz is the xz stream format.
	FormatXz Format = "xz"
	// FormatGzip is the gzip format.
	FormatGzip Format = "gzip"
	// FormatBzip2 is the bzip2 format.
	FormatBzip2 Format = "bzip2"
	// FormatNone means no recognised compression format.
	FormatNone Format = "none"
)

// DefaultMaxBytes is the default cap on inflated output size.
const DefaultMaxBytes = 100 * 1024 * 1024

var (
	magicXz    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte{'B', 'Z', 'h'}
)

// DetectFormat sniffs the compression format from the data's magic bytes.
func DetectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicXz):
		return FormatXz
	case bytes.HasPrefix(data, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(data, magicBzip2):
		return FormatBzip2
	}
	return FormatNone
}

// Inflate decompresses data in memory, detecting the format from magic
// bytes. Data in no recognised format is returned unchanged. Output is
// capped at maxBytes (DefaultMaxBytes if zero or negative) to guard
// against decompression bombs.
func Inflate(data []byte, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	var reader io.Reader
	switch DetectFormat(data) {
	case FormatXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzr

	case FormatGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		reader = gzr

	case FormatBzip2:
		reader = bzip2.NewReader(bytes.NewReader(data))

	default:
		return data, nil
	}

	limitedReader := security.NewLimitedReader(reader, maxBytes)
	out, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	return out, nil
}
