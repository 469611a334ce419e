package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/webicons/internal/server/response"
)

// HandleHealth handles GET /health and GET /api/v1/health.
// @Summary Health check
// @Description Health check endpoint (liveness probe)
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "webicons",
		"version": h.app.Version(),
		"time":    utc.Now(),
		"uptime":  time.Since(h.options.StartTime).Round(time.Second).String(),
	})
}

// HandleReady handles GET /api/v1/ready. The service is ready when the
// metadata document loads.
// @Summary Readiness check
// @Description Readiness check that loads the vendor metadata
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.client.Config(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Metadata not available")
		response.ServiceUnavailable(w, "Vendor metadata not available")
		return
	}

	response.OK(w, map[string]any{
		"status":   "ready",
		"families": len(cfg.Families()),
	})
}
