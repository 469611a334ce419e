// Package application provides the application interface for webicons commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Webicons()
//	            if err != nil {
//	                return err
//	            }
//	            p, err := client.Resolve(cmd.Context(), webicons.Request{Family: args[0], ID: args[1]})
//	            // ... print p
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    WebiconsFunc: func(...webicons.Option) (webicons.Client, error) {
//	        return webicons.New(webicons.WithEmbeddedConfig())
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/webicons"
)

// Application provides the application interface that commands need.
// The App struct from cmd/webicons/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Webicons returns a client for the configured metadata source.
	// When called without options, returns the default cached client.
	// Options are appended to the configured ones and produce a new client.
	Webicons(opts ...webicons.Option) (webicons.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// FaviconPath returns the file served at /favicon.ico.
	FaviconPath() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
