// Package app provides the application context and dependency management
// for the roster CLI. It centralizes configuration, logging, and the roster
// client, and hands them to commands through application.Application.
package app

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/errors"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the roster application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Output and error streams for commands; nil means the process streams
	out io.Writer
	err io.Writer

	// Client instance (lazy-initialized, singleton)
	mu       sync.Mutex
	client   roster.Client
	injected bool
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the default locations and can be replaced
// using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
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

// OutputFormat returns the configured format, or table for a terminal and
// JSON otherwise.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Client returns the roster client, creating it on first use from the
// configuration in effect at that moment.
func (a *App) Client() (roster.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := roster.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", a.config.File, err)
	}

	a.logger.Debug().
		Str("path", client.Path()).
		Bool("atomic", a.config.Atomic).
		Bool("strict", a.config.Strict).
		Msg("Created roster client")

	a.client = client
	return client, nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []roster.Option {
	return []roster.Option{
		roster.WithPath(a.config.File),
		roster.WithAtomicRewrite(a.config.Atomic),
		roster.WithStrictKeys(a.config.Strict),
		roster.WithLogger(a.logger),
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "nil config", nil)
		}
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
func WithClient(client roster.Client) Option {
	return func(a *App) error {
		a.client = client
		a.injected = client != nil
		return nil
	}
}

// WithOutput redirects command output and errors.
func WithOutput(out, err io.Writer) Option {
	return func(a *App) error {
		a.out = out
		a.err = err
		return nil
	}
}
