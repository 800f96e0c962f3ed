// Package logging builds the hclog logger shared by colormix commands.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// Name is the logger name printed on every line.
const Name = "colormix"

// Level picks the log level for the verbose and quiet flags. Quiet wins.
func Level(verbose, quiet bool) hclog.Level {
	switch {
	case quiet:
		return hclog.Error
	case verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// New returns a logger writing to w. Colour is used only when w is a terminal.
func New(w io.Writer, verbose, quiet bool) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:        Name,
		Output:      w,
		Level:       Level(verbose, quiet),
		Color:       colorOption(w),
		DisableTime: true,
	})
}

// hclog.AutoColor colours any writer that is not an *os.File, so buffers and
// pipes get ColorOff.
func colorOption(w io.Writer) hclog.ColorOption {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return hclog.AutoColor
	}
	return hclog.ColorOff
}
