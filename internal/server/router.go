package server

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/agentstation/webicons/internal/server/handlers"
	"github.com/agentstation/webicons/internal/server/middleware"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.app, s.client, s.logger, handlers.Options{
		FaviconPath: s.config.FaviconPath,
		StartTime:   s.startTime,
	})

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Static favicon (204 when the file is missing)
	mux.HandleFunc("GET /favicon.ico", h.HandleFavicon)

	// Public health endpoints (no auth required)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET "+prefix+"/health", h.HandleHealth)
	mux.HandleFunc("GET "+prefix+"/ready", h.HandleReady)

	// Attribution pages
	mux.HandleFunc("GET /emoji/{id}", h.HandleEmojiRedirect)
	mux.HandleFunc("GET /{family}/{id}", h.HandlePage)

	// JSON API
	mux.HandleFunc("GET "+prefix+"/families", h.HandleListFamilies)
	mux.HandleFunc("GET "+prefix+"/families/{family}/vendors", h.HandleListVendors)
	mux.HandleFunc("GET "+prefix+"/webicons/{family}/{id}", h.HandleResolve)
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled)
	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(s.ctx, cfg.RateLimit, s.logger)
		handler = middleware.RateLimit(rateLimiter)(handler)
	}

	// Authentication (if enabled)
	if cfg.AuthEnabled {
		authConfig := middleware.DefaultAuthConfig()
		authConfig.Enabled = true
		authConfig.APIKey = cfg.APIKey
		authConfig.HeaderName = cfg.AuthHeader
		authConfig.ProtectedPrefix = cfg.PathPrefix
		authConfig.PublicPaths = []string{"/health", cfg.PathPrefix + "/health", cfg.PathPrefix + "/ready"}
		handler = middleware.Auth(authConfig, s.logger)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Tracing, logging and recovery (always enabled)
	handler = otelhttp.NewHandler(handler, "webicons.http")
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}
