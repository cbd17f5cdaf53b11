// Package compression detects and unwraps compressed image files.
package compression

import (
	"bytes"
)

// Format identifies the compression wrapper of a file.
type Format string

const (
	// FormatNone means the data is not wrapped in a known compression format.
	FormatNone Format = "none"
	// FormatGzip is RFC 1952 gzip.
	FormatGzip Format = "gzip"
	// FormatBzip2 is bzip2.
	FormatBzip2 Format = "bzip2"
	// FormatXz is the xz container format.
	FormatXz Format = "xz"
)

// DefaultMaxSize caps the decompressed size of a single input.
const DefaultMaxSize int64 = 256 * 1024 * 1024

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Detect sniffs the compression format from the leading magic bytes.
// Extensions are ignored: logo.png.gz and logo.png are both detected by content.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, xzMagic):
		return FormatXz
	case bytes.HasPrefix(data, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(data, bzip2Magic):
		return FormatBzip2
	default:
		return FormatNone
	}
}

// Unwrap returns the decompressed payload of data together with the detected
// format. Uncompressed data is returned as-is with FormatNone.
// A maxSize of zero or less selects DefaultMaxSize.
func Unwrap(data []byte, maxSize int64) ([]byte, Format, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	format := Detect(data)
	switch format {
	case FormatGzip:
		out, err := decompressGz(data, maxSize)
		return out, format, err
	case FormatBzip2:
		out, err := decompressBz2(data, maxSize)
		return out, format, err
	case FormatXz:
		out, err := decompressXz(data, maxSize)
		return out, format, err
	default:
		return data, FormatNone, nil
	}
}
