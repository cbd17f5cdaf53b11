// Package logo turns an arbitrary image into a circular, transparent-cornered
// square suitable for use as a logo or avatar.
package logo

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"

	imageutil "github.com/jmylchreest/circlecrop/internal/image"
	"github.com/jmylchreest/circlecrop/internal/security"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Result describes a completed conversion.
type Result struct {
	// OutputPath is the absolute path of the written PNG.
	OutputPath string
	// Width and Height are the source dimensions before cropping.
	Width  int
	Height int
	// Crop is the region of the source that was kept.
	Crop image.Rectangle
}

// Side returns the edge length of the output image.
func (r *Result) Side() int {
	return r.Crop.Dx()
}

// Normalise converts img to non-premultiplied RGBA with a zero origin.
// Images without an alpha channel become fully opaque.
func Normalise(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ApplyMask overwrites the alpha channel of dst with mask.
// Colour channels are left untouched. Both images must have the same size.
func ApplyMask(dst *image.NRGBA, mask *image.Alpha) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	for y := 0; y < h; y++ {
		px := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		ma := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			px[x*4+3] = ma[x]
		}
	}
}

// Circularise crops img to its centred square and masks everything outside
// the inscribed circle. It returns the masked image and the crop rectangle in
// img's coordinate space.
func Circularise(img image.Image) (*image.NRGBA, image.Rectangle, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, image.Rectangle{}, ErrEmptyImage
	}

	crop := CenteredSquare(bounds)

	normalised := Normalise(img)
	// Normalise rebases to a zero origin.
	out := imaging.Crop(normalised, crop.Sub(bounds.Min))
	ApplyMask(out, CircleMask(crop.Dx()))

	return out, crop, nil
}

// Saver writes an image to a path.
type Saver interface {
	Save(path string, img image.Image) error
}

// Processor runs the load, circularise and save pipeline for a single file.
type Processor struct {
	loader imageutil.Loader
	saver  Saver
	logger hclog.Logger
}

// NewProcessor creates a Processor. A nil logger disables logging.
func NewProcessor(loader imageutil.Loader, saver Saver, logger hclog.Logger) *Processor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Processor{
		loader: loader,
		saver:  saver,
		logger: logger.Named("logo"),
	}
}

// Process converts the image at input and writes the PNG result to output,
// overwriting any existing file. Nothing is written when input is missing.
func (p *Processor) Process(input, output string) (*Result, error) {
	if err := imageutil.CheckExists(input); err != nil {
		return nil, err
	}
	if err := security.ValidateOutputPath(output); err != nil {
		return nil, fmt.Errorf("invalid output path: %w", err)
	}
	if !imageutil.IsImageFile(input) {
		p.logger.Debug("unrecognised input extension, detecting format from content", "path", input)
	}

	img, err := p.loader.Load(input)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	circle, crop, err := Circularise(img)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}
	bounds := img.Bounds()
	p.logger.Debug("cropped and masked", "width", bounds.Dx(), "height", bounds.Dy(),
		"side", crop.Dx(), "left", crop.Min.X, "top", crop.Min.Y)

	if err := p.saver.Save(output, circle); err != nil {
		return nil, err
	}

	resolved, err := filepath.Abs(output)
	if err != nil {
		resolved = output
	}
	p.logger.Debug("wrote output", "path", resolved)

	return &Result{
		OutputPath: resolved,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Crop:       crop,
	}, nil
}
