// Package handlers provides HTTP request handlers for the webicons server.
package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/webicons"
	"github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/internal/server/response"
	"github.com/agentstation/webicons/pkg/errors"
	"github.com/agentstation/webicons/pkg/logging"
	"github.com/agentstation/webicons/pkg/metadata"
)

// Options configures the handlers.
type Options struct {
	FaviconPath string
	StartTime   time.Time
}

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app     application.Application
	client  webicons.Client
	logger  *zerolog.Logger
	options Options
}

// New creates a new Handlers instance.
func New(app application.Application, client webicons.Client, logger *zerolog.Logger, opts Options) *Handlers {
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now()
	}
	return &Handlers{
		app:     app,
		client:  client,
		logger:  logger,
		options: opts,
	}
}

// fail logs a resolution failure once and writes the mapped error response.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	status := response.Status(err)
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Err(err).
		Str("kind", errors.Kind(err)).
		Int("status", status).
		Msg("Request failed")

	response.ErrorFromType(w, err)
}

// request builds a resolution request from the path and query.
// An explicit empty ?vendor= names no vendor and fails as unknown; only an
// absent parameter selects the family default.
func request(r *http.Request) (webicons.Request, error) {
	req := webicons.Request{
		Family: r.PathValue("family"),
		ID:     r.PathValue("id"),
		Vendor: r.URL.Query().Get("vendor"),
	}
	if req.Vendor == "" && r.URL.Query().Has("vendor") {
		if _, err := metadata.ParseFamily(req.Family); err != nil {
			return req, err
		}
		return req, errors.NewScopedNotFoundError("vendor", "", req.Family)
	}
	return req, nil
}
