// Package logging wires the process-wide structured logger.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger builds the logger used across a single invocation. Verbose mode
// surfaces per-unit skip decisions and timing on stderr; the default level
// keeps stdout clean for analysis output.
func NewLogger(name string, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: os.Stderr,
	})
}
