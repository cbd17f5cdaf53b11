// Package image provides utilities for loading and saving images.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/circlecrop/internal/compression"
)

// ErrNotFound is returned when the input image does not exist.
var ErrNotFound = errors.New("not found")

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
// Files wrapped in gzip, bzip2 or xz are decompressed before decoding.
type FileLoader struct {
	// MaxDecompressedSize bounds the unwrapped size of compressed inputs.
	// Zero selects compression.DefaultMaxSize.
	MaxDecompressedSize int64

	logger hclog.Logger
}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader(logger hclog.Logger) *FileLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FileLoader{logger: logger.Named("loader")}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := CheckExists(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	data, wrapper, err := compression.Unwrap(data, l.MaxDecompressedSize)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress image: %w", err)
	}
	if wrapper != compression.FormatNone {
		l.logger.Debug("decompressed input", "path", path, "compression", wrapper, "bytes", len(data))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	b := img.Bounds()
	l.logger.Debug("decoded image", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())

	return img, nil
}

// CheckExists verifies that path names an existing regular file.
// A missing file yields an error wrapping ErrNotFound whose message is "<path> not found".
func CheckExists(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %w", path, ErrNotFound)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	return nil
}

// SupportedImageExtensions returns a list of image file extensions that decode natively.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// IsImageFile reports whether path has a supported image extension,
// ignoring a trailing .gz, .bz2 or .xz suffix.
func IsImageFile(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range []string{".gz", ".bz2", ".xz"} {
		lower = strings.TrimSuffix(lower, suffix)
	}
	return slices.Contains(SupportedImageExtensions(), filepath.Ext(lower))
}
