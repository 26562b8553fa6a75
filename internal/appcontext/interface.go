// Package appcontext provides the application context interface used by
// all mdhelpers commands, so command packages depend on an interface
// rather than on the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/mdhelpers"
)

// Interface defines what commands need from the application.
// The App struct from cmd/mdhelpers/app implements it.
type Interface interface {
	// Helpers returns the configured helpers, building them on first use.
	Helpers() (*mdhelpers.Helpers, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// TemplateDir returns the directory relative template paths fall back to.
	TemplateDir() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
