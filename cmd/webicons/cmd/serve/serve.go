// Package serve provides the HTTP server command for the webicons CLI.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/internal/cmd/symbols"
	"github.com/agentstation/webicons/internal/config"
	"github.com/agentstation/webicons/internal/server"
	"github.com/agentstation/webicons/internal/telemetry"
	"github.com/agentstation/webicons/pkg/constants"
)

// APIKeyEnv holds the API key required when --auth is set.
const APIKeyEnv = "WEBICONS_API_KEY"

// NewCommand creates the serve command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		Short:   "Serve attribution pages over HTTP",
		Long: `Start the webicons HTTP server.

Routes:
  GET /{family}/{id}?vendor=V        attribution page (HTML)
  GET /emoji/{id}?vendor=V           redirect to /emojis/{id}
  GET /favicon.ico                   configured favicon
  GET /health, {prefix}/health       liveness
  GET {prefix}/ready                 readiness (metadata loads)
  GET {prefix}/families              families and default vendors (JSON)
  GET {prefix}/families/{family}/vendors
  GET {prefix}/webicons/{family}/{id}?vendor=V

The metadata document is read again on every request, so edits take
effect without a restart. HTTP_HOST and HTTP_PORT override the bind
address. With --auth the JSON API requires the key in ` + APIKeyEnv + `.`,
		Example: `  # Start on the default address
  webicons serve

  # Listen on all interfaces with the embedded metadata
  webicons serve --host 0.0.0.0 --port 8080 --embedded

  # Protect the JSON API
  WEBICONS_API_KEY=secret webicons serve --auth`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, app)
		},
	}

	// Server configuration flags
	cmd.Flags().Int("port", constants.DefaultPort, "Server port")
	cmd.Flags().String("host", constants.DefaultHost, "Bind address")
	cmd.Flags().String("prefix", constants.DefaultPathPrefix, "JSON API path prefix")
	cmd.Flags().String("favicon", "", "Favicon file (default from config)")

	// CORS flags
	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	// Authentication flags
	cmd.Flags().Bool("auth", false, "Require an API key for the JSON API")
	cmd.Flags().String("auth-header", "X-API-Key", "Authentication header name")

	// Performance flags
	cmd.Flags().Int("rate-limit", constants.DefaultRateLimit, "Requests per minute per IP (0 to disable)")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", constants.DefaultReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", constants.DefaultWriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", constants.DefaultIdleTimeout, "HTTP idle timeout")

	return cmd
}

// runServer starts the HTTP server.
func runServer(cmd *cobra.Command, _ []string, app application.Application) error {
	cfg, err := parseConfig(cmd, app)
	if err != nil {
		return err
	}
	logger := app.Logger()

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Bool("auth", cfg.AuthEnabled).
		Int("rate_limit", cfg.RateLimit).
		Str("favicon", cfg.FaviconPath).
		Msg("Starting webicons server")

	shutdownTracing, err := telemetry.Setup(cmd.Context(), "webicons", app.Version())
	if err != nil {
		logger.Warn().Err(err).Msg("Tracing disabled")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.TelemetryShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn().Err(err).Msg("Flushing traces failed")
		}
	}()

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return startWithGracefulShutdown(cmd.Context(), httpServer, srv, logger)
}

// parseConfig parses command flags and environment into server configuration.
func parseConfig(cmd *cobra.Command, app application.Application) (server.Config, error) {
	cfg := server.DefaultConfig()
	cfg.Port = mustGetInt(cmd, "port")
	cfg.Host = mustGetString(cmd, "host")
	cfg.PathPrefix = mustGetString(cmd, "prefix")
	cfg.CORSEnabled = mustGetBool(cmd, "cors")
	cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
	cfg.AuthEnabled = mustGetBool(cmd, "auth")
	cfg.AuthHeader = mustGetString(cmd, "auth-header")
	cfg.RateLimit = mustGetInt(cmd, "rate-limit")
	cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")

	cfg.FaviconPath = mustGetString(cmd, "favicon")
	if cfg.FaviconPath == "" {
		cfg.FaviconPath = app.FaviconPath()
	}

	// CORS origins imply CORS
	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}

	// Environment overrides flags for the bind address
	if err := cfg.ApplyEnv(); err != nil {
		return server.Config{}, fmt.Errorf("invalid server environment: %w", err)
	}

	apiKey, err := config.GetAPIKey(APIKeyEnv, cfg.AuthEnabled)
	if err != nil {
		return server.Config{}, fmt.Errorf("--auth requires an API key: %w", err)
	}
	cfg.APIKey = apiKey

	return cfg, nil
}

// startWithGracefulShutdown starts the HTTP server and shuts it down when ctx is cancelled.
func startWithGracefulShutdown(ctx context.Context, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Msg("HTTP server listening")

		fmt.Printf("Webicons listening on http://%s\n", httpServer.Addr)
		fmt.Println("   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received via context")
		fmt.Printf("\n%s Shutting down webicons server...\n", symbols.Stop)

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		fmt.Printf("%s Webicons server stopped gracefully\n", symbols.Success)
		return nil
	}
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}
