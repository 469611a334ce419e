// Package server provides the HTTP server for webicons attribution pages
// and the JSON API.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/webicons"
	"github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	client    webicons.Client
	logger    *zerolog.Logger
	config    Config
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	logger.Debug().Msg("Creating new server instance")

	cfg.PathPrefix = strings.TrimSuffix(cfg.PathPrefix, "/")
	if cfg.PathPrefix != "" && !strings.HasPrefix(cfg.PathPrefix, "/") {
		cfg.PathPrefix = "/" + cfg.PathPrefix
	}
	if cfg.PathPrefix == "" {
		return nil, errors.NewConfigError("server", "API path prefix must not be empty", nil)
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = "X-API-Key"
	}
	if cfg.AuthEnabled && cfg.APIKey == "" {
		return nil, errors.NewConfigError("server", "authentication enabled without an API key", nil)
	}
	if cfg.FaviconPath == "" {
		cfg.FaviconPath = app.FaviconPath()
	}

	client, err := app.Webicons()
	if err != nil {
		return nil, err
	}

	// Context for background services (rate limiter cleanup)
	ctx, cancel := context.WithCancel(context.Background())

	logger.Debug().Msg("Server instance created successfully")
	return &Server{
		app:       app,
		client:    client,
		logger:    logger,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Config returns the effective configuration.
func (s *Server) Config() Config {
	return s.config
}

// Shutdown stops background services.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")
	s.cancel()
	return nil
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
