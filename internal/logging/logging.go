// Package logging builds the zerolog logger shared by the server and the viewer.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr. The dev environment gets a
// human-readable console writer, every other environment gets JSON.
// level defaults to info when it cannot be parsed.
func New(level, environment string) zerolog.Logger {
	var out io.Writer = os.Stderr
	if environment == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, level)
}

// NewWithWriter returns a logger writing JSON lines to w
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
