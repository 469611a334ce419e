// Package constants provides shared constants used throughout the webicons codebase.
// This includes timeouts, file locations, permissions and server defaults
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultLoadTimeout bounds a single read of the metadata source
	DefaultLoadTimeout = 5 * time.Second

	// DefaultReadTimeout is the HTTP server read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP server keep-alive idle timeout
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout is how long the server waits for in-flight requests on shutdown
	ShutdownTimeout = 10 * time.Second

	// TelemetryShutdownTimeout bounds flushing of pending trace spans
	TelemetryShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultMetadataPath is the vendor metadata file, relative to the working directory
	DefaultMetadataPath = "./config/metadata.json"

	// DefaultFaviconPath is the icon served at /favicon.ico
	DefaultFaviconPath = "favicons/favicon.ico"

	// DefaultConfigFile is the CLI configuration file name inside $HOME
	DefaultConfigFile = ".webicons.yaml"
)

// Server defaults
const (
	// DefaultHost is the interface the HTTP server binds to
	DefaultHost = "127.0.0.1"

	// DefaultPort is the HTTP server port
	DefaultPort = 8000

	// DefaultPathPrefix is the mount point of the JSON API
	DefaultPathPrefix = "/api/v1"

	// DefaultRateLimit is the default requests per minute per client
	DefaultRateLimit = 100

	// MaxIDLength caps the length of a requested icon identifier
	MaxIDLength = 256
)

// EnvPrefix is the prefix for environment variables read by the CLI
const EnvPrefix = "WEBICONS"
