// Package cli provides the command-line interface for circlecrop.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	imageutil "github.com/jmylchreest/circlecrop/internal/image"
	"github.com/jmylchreest/circlecrop/internal/logging"
	"github.com/jmylchreest/circlecrop/internal/logo"
	"github.com/jmylchreest/circlecrop/internal/version"
)

// ErrUsage is returned when the command is invoked with the wrong number of arguments.
var ErrUsage = errors.New("invalid arguments")

// options holds the flag values for a single command instance.
type options struct {
	verbose     bool
	quiet       bool
	compression string
}

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the circlecrop command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "circlecrop <input_path> <output_path>",
		Short: "Crop an image to a centred circle",
		Long: `circlecrop crops an image to its centred square, makes everything outside
the inscribed circle transparent, and writes the result as a PNG.

The output is min(width, height) pixels on each side. Inside the circle the
source colours are kept unchanged and fully opaque; outside it they are fully
transparent, whatever the source alpha was. An existing output file is
overwritten.

Supported input formats: JPEG, PNG, GIF, WebP, BMP, TIFF, optionally
compressed with gzip, bzip2 or xz.

Examples:
  # Make a circular logo
  circlecrop logo.jpg logo-circle.png

  # Smallest possible file, with debug logging
  circlecrop -v --compression best photo.png avatar.png`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         exactPaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts, args[0], args[1])
		},
	}

	registerFlags(cmd.Flags(), opts)
	cmd.SetVersionTemplate(version.String() + "\n")

	return cmd
}

// registerFlags defines the command's flags on fs.
func registerFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	fs.StringVar(&opts.compression, "compression", imageutil.CompressionDefault,
		"PNG compression level (default, none, speed, best)")
}

// exactPaths requires exactly an input and an output path.
func exactPaths(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 arguments, got %d\nUsage: %s", ErrUsage, len(args), cmd.UseLine())
	}
	return nil
}

// runProcess executes the conversion and prints the status lines.
func runProcess(cmd *cobra.Command, opts *options, input, output string) error {
	level, err := imageutil.ParseCompression(opts.compression)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{
		Verbose: opts.verbose,
		Output:  cmd.ErrOrStderr(),
	})

	processor := logo.NewProcessor(
		imageutil.NewFileLoader(logger),
		imageutil.NewPNGWriter(level),
		logger,
	)

	result, err := processor.Process(input, output)
	if err != nil {
		return err
	}

	if !opts.quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Logo processed successfully!")
		fmt.Fprintf(out, "Saved to: %s\n", result.OutputPath)
		fmt.Fprintf(out, "Original size: %dx%d\n", result.Width, result.Height)
	}

	return nil
}
