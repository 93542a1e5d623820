// Package logging configures the diagnostic logger. Diagnostics go to
// stderr so hook output parsed by callers stays clean on stdout.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the level derived from flags, e.g.
// FERRITE_DIST_LOG=debug.
const EnvLogLevel = "FERRITE_DIST_LOG"

// New builds the console logger. quiet wins over verbose; the
// environment variable wins over both.
func New(verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
