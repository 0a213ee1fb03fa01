// Package application provides the application interface for roster commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            list, err := client.ListAll(cmd.Context())
//	            // ... render list
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	client, _ := roster.New(roster.WithPath(filepath.Join(t.TempDir(), "employees.csv")))
//	mock := &application.Mock{
//	    ClientFunc: func() (roster.Client, error) { return client, nil },
//	}
//	cmd := list.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/roster"
)

// Application provides the application interface that commands need.
// The App struct from cmd/roster/app implements it.
type Application interface {
	// Client returns the roster client bound to the configured storage file.
	// The instance is created once and reused.
	Client() (roster.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
