// Package logging configures the session logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates the shell's logger. Output stays on w (stderr in
// practice) so it never interleaves with rendered task output. Without
// debug only warnings and errors come through.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "todo",
	})
}
