package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the console-writer logger used across the CLI with
// structured fields instead of the standard library's log.SetFlags/
// log.SetPrefix pair.
func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMicro}
	return zerolog.New(writer).With().Timestamp().Str("component", "searchcli").Logger()
}

// LogDuration returns a function that, when called, logs how long has
// elapsed since LogDuration was invoked under the given operation name.
// Grounded on test_example_functions.cpp's LOG_DURATION_STREAM macro.
func LogDuration(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	return func() {
		logger.Info().Str("operation", operation).Dur("duration", time.Since(start)).Msg("operation completed")
	}
}
