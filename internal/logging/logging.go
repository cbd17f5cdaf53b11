// Package logging builds the hclog logger used across circlecrop.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// Name is the root logger name.
const Name = "circlecrop"

// Options configures New.
type Options struct {
	// Verbose enables debug output. When false the logger is silent.
	Verbose bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger configured from opts.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if !opts.Verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   Name,
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: out,
		Level:  hclog.Debug,
		Color:  colorFor(out),
	})
}

// colorFor enables colour only when out is an interactive terminal.
func colorFor(out io.Writer) hclog.ColorOption {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { // #nosec G115 - file descriptors fit in int
		return hclog.ColorOff
	}
	return hclog.AutoColor
}
