package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the default structured logger with console output.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter creates a structured logger with a custom writer, mostly
// for tests.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
