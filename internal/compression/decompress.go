package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/jmylchreest/circlecrop/internal/security"
	"github.com/ulikunitz/xz"
)

// decompressGz decompresses a gzipped image into memory.
func decompressGz(data []byte, maxSize int64) ([]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	out, err := io.ReadAll(security.NewLimitedReader(gzr, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip image: %w", err)
	}
	return out, nil
}

// decompressXz decompresses an xz-compressed image into memory.
func decompressXz(data []byte, maxSize int64) ([]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	out, err := io.ReadAll(security.NewLimitedReader(xzr, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress xz image: %w", err)
	}
	return out, nil
}

// decompressBz2 decompresses a bzip2-compressed image into memory.
func decompressBz2(data []byte, maxSize int64) ([]byte, error) {
	bzr := bzip2.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(security.NewLimitedReader(bzr, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress bzip2 image: %w", err)
	}
	return out, nil
}
