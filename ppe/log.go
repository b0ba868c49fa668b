package ppe

import (
	"io"

	"github.com/rs/zerolog"
)

// logger is the package-wide diagnostic logger. It defaults to
// zerolog.Nop(), so importing this package produces no output unless a
// caller opts in with SetLogger; the library never logs secret material
// (witnesses, randomness matrices) at any level.
var logger = zerolog.Nop()

// SetLogger replaces the package's diagnostic logger. Pass zerolog.Nop()
// to silence it again.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// NewLogger builds a zerolog.Logger writing human-readable output to w,
// for callers that want package diagnostics without wiring their own
// zerolog setup.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Str("component", "ppe").Logger()
}
