package image

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
)

// Compression names accepted by ParseCompression.
const (
	CompressionDefault = "default"
	CompressionNone    = "none"
	CompressionSpeed   = "speed"
	CompressionBest    = "best"
)

// CompressionNames lists the accepted compression level names.
func CompressionNames() []string {
	return []string{CompressionDefault, CompressionNone, CompressionSpeed, CompressionBest}
}

// ParseCompression maps a compression level name to a png.CompressionLevel.
func ParseCompression(name string) (png.CompressionLevel, error) {
	switch strings.ToLower(name) {
	case "", CompressionDefault:
		return png.DefaultCompression, nil
	case CompressionNone:
		return png.NoCompression, nil
	case CompressionSpeed:
		return png.BestSpeed, nil
	case CompressionBest:
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("invalid compression level: %s (valid: %s)", name, strings.Join(CompressionNames(), ", "))
	}
}

// PNGWriter encodes images as PNG files.
type PNGWriter struct {
	encoder png.Encoder
}

// NewPNGWriter creates a PNGWriter using the given compression level.
func NewPNGWriter(level png.CompressionLevel) *PNGWriter {
	return &PNGWriter{encoder: png.Encoder{CompressionLevel: level}}
}

// Encode returns the PNG encoding of img.
func (w *PNGWriter) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Save encodes img and writes it to path, replacing any existing file.
// Encoding completes before the file is opened.
func (w *PNGWriter) Save(path string, img image.Image) error {
	data, err := w.Encode(img)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Output image is meant to be world-readable
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
