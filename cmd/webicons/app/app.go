// Package app provides the application context and dependency management
// for the webicons CLI. It centralizes configuration, logging and the
// webicons client so commands receive their dependencies through the
// application.Application interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/webicons"
	"github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/pkg/errors"
)

// Compile-time interface check.
var _ application.Application = (*App)(nil)

// App represents the webicons application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client webicons.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
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
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, empty for auto-detection.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// FaviconPath returns the file served at /favicon.ico.
func (a *App) FaviconPath() string {
	return a.config.FaviconPath
}

// Webicons returns the webicons client. Without options the cached client
// is returned, creating it on first use. With options a new client is built
// from the configuration plus opts.
func (a *App) Webicons(opts ...webicons.Option) (webicons.Client, error) {
	if len(opts) > 0 {
		client, err := webicons.New(append(a.clientOptions(), opts...)...)
		if err != nil {
			return nil, errors.NewConfigError("webicons", "creating client with custom options", err)
		}
		return client, nil
	}

	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	client, err := webicons.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.NewConfigError("webicons", "creating client", err)
	}
	a.client = client
	return client, nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []webicons.Option {
	var opts []webicons.Option

	switch {
	case a.config.UseEmbeddedMetadata:
		opts = append(opts, webicons.WithEmbeddedConfig())
	case a.config.MetadataPath != "":
		opts = append(opts, webicons.WithConfigPath(a.config.MetadataPath))
	}

	if a.config.LoadTimeout > 0 {
		opts = append(opts, webicons.WithLoadTimeout(a.config.LoadTimeout))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
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

// WithClient sets a custom client (useful for testing).
func WithClient(client webicons.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
