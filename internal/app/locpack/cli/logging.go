package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger makes the logger for diagnostics which aren't part of a command's regular output.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "locpack",
		Level:  level,
	})
}
