// Package logger provides the logger shared by the optimizer's driver
// and command-line surface.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

// Logger returns the configured logger.
func Logger() zerolog.Logger {
	return logger
}

// Set overrides the default logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput redirects the logger's output.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable silences the logger.
func Disable() {
	logger = zerolog.Nop()
}
