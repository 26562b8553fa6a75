// Package logging provides structured logging for mdhelpers using zerolog.
//
// The package-level logger is configured from the LOG_* environment
// variables (see FromEnv). The CLI replaces it per command with a logger
// built from its own configuration and carried in the context:
//
//	ctx = logging.WithTemplate(ctx, "README.md.tmpl")
//	logging.FromContext(ctx).Debug().Msg("Parsed template")
package logging

import "github.com/rs/zerolog"

var defaultLogger = NewLoggerFromConfig(FromEnv())

// Default returns the package-level logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}
