// Package app wires configuration, logging and the helpers together for
// the mdhelpers CLI.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/internal/appcontext"
	"github.com/agentstation/mdhelpers/pkg/errors"
)

// App holds the CLI's configuration and lazily built dependencies.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	mu      sync.RWMutex
	helpers *mdhelpers.Helpers
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates an App with configuration loaded from the environment,
// .env files and the config file.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string { return a.config.Format }

// TemplateDir returns the configured template directory.
func (a *App) TemplateDir() string { return a.config.TemplateDir }

// Helpers returns the helpers built from the configuration, creating them
// on first use. Safe for concurrent callers.
func (a *App) Helpers() (*mdhelpers.Helpers, error) {
	a.mu.RLock()
	if a.helpers != nil {
		h := a.helpers
		a.mu.RUnlock()
		return h, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.helpers != nil {
		return a.helpers, nil
	}

	h, err := mdhelpers.New(a.helperOptions()...)
	if err != nil {
		return nil, errors.NewConfigError("helpers", err.Error(), err)
	}
	a.helpers = h
	return h, nil
}

// resetHelpers drops the cached helpers after the config changes.
func (a *App) resetHelpers() {
	a.mu.Lock()
	a.helpers = nil
	a.mu.Unlock()
}

func (a *App) helperOptions() []mdhelpers.Option {
	var opts []mdhelpers.Option
	if a.config.ProfileBaseURL != "" {
		opts = append(opts, mdhelpers.WithProfileBaseURL(a.config.ProfileBaseURL))
	}
	if a.config.TruncateMax != 0 {
		opts = append(opts, mdhelpers.WithTruncateMax(a.config.TruncateMax))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "config is nil", nil)
		}
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithHelpers sets prebuilt helpers (useful for testing).
func WithHelpers(h *mdhelpers.Helpers) Option {
	return func(a *App) error {
		a.helpers = h
		return nil
	}
}
