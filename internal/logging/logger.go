// Package logging provides the console logger shared by the demo app and the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// TimeFormat is used by the console writer.
const TimeFormat = "15:04:05"

// New returns a logger writing human readable lines to w, tagged with component.
func New(w io.Writer, component string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
	}
	return zerolog.New(output).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// NewDefault returns a stderr logger for the given component.
func NewDefault(component string) zerolog.Logger {
	return New(os.Stderr, component)
}

// SetDebug toggles debug output globally. Without it only warnings and errors are shown.
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}
