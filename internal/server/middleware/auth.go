package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/webicons/internal/server/response"
)

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled    bool
	APIKey     string
	HeaderName string
	// ProtectedPrefix limits authentication to paths below it. Empty protects everything.
	ProtectedPrefix string
	PublicPaths     []string
}

// DefaultAuthConfig returns the default configuration: the JSON API is
// protected, attribution pages and health probes stay public.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		Enabled:         false,
		HeaderName:      "X-API-Key",
		ProtectedPrefix: "/api/v1",
		PublicPaths:     []string{"/health", "/api/v1/health", "/api/v1/ready"},
	}
}

// Auth middleware validates API keys for protected endpoints.
func Auth(config AuthConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled || !isProtected(r.URL.Path, config) {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := extractAPIKey(r, config)
			if apiKey == "" || config.APIKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.APIKey)) != 1 {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Bool("key_provided", apiKey != "").
					Msg("Authentication failed")

				response.Unauthorized(w, "Invalid or missing API key",
					"Provide a valid API key in the "+config.HeaderName+" header")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isProtected reports whether path requires an API key.
func isProtected(path string, config AuthConfig) bool {
	if isPublicPath(path, config.PublicPaths) {
		return false
	}
	if config.ProtectedPrefix == "" {
		return true
	}
	return path == config.ProtectedPrefix || strings.HasPrefix(path, config.ProtectedPrefix+"/")
}

// isPublicPath checks if a path is in the public paths list.
func isPublicPath(path string, publicPaths []string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

// extractAPIKey extracts the API key from the request.
func extractAPIKey(r *http.Request, config AuthConfig) string {
	if apiKey := r.Header.Get(config.HeaderName); apiKey != "" {
		return apiKey
	}

	// Support both "Bearer <key>" and raw key
	auth := r.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
