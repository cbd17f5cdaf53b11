// Package security provides input and output validation utilities for circlecrop.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrSizeLimit is returned once a LimitedReader has handed out its full budget.
var ErrSizeLimit = errors.New("decompression size limit exceeded")

// ValidateOutputPath checks that path can be created or overwritten as a regular file.
// The parent directory must exist and the path itself must not be a directory.
func ValidateOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	clean := filepath.Clean(path)

	info, err := os.Stat(clean)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("output path is a directory: %s", path)
	case err == nil:
		// Existing regular files are overwritten without confirmation.
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to access output path: %w", err)
	}

	dir := filepath.Dir(clean)
	dirInfo, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("output parent is not a directory: %s", dir)
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when unwrapping compressed images.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Allow a clean EOF when the payload is exactly the limit.
		var probe [1]byte
		if n, err := l.R.Read(probe[:]); n == 0 && err == io.EOF {
			return 0, io.EOF
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
