package util

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a human-readable debug logger in development and a JSON logger otherwise.
func NewLogger(environment string, w io.Writer) zerolog.Logger {
	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
