package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	HelpersFunc      func() (*mdhelpers.Helpers, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	TemplateDirFunc  func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Helpers returns helpers using the mock function or mdhelpers.Default().
func (m *Mock) Helpers() (*mdhelpers.Helpers, error) {
	if m.HelpersFunc != nil {
		return m.HelpersFunc()
	}
	return mdhelpers.Default(), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns the format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// TemplateDir returns the template dir using the mock function or "".
func (m *Mock) TemplateDir() string {
	if m.TemplateDirFunc != nil {
		return m.TemplateDirFunc()
	}
	return ""
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
