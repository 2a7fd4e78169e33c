package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time, production bool) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger, production),
		startupTime: startupTime,
	}
}

// getHealth reports liveness and process uptime in seconds
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		h.responder.WriteJSON(w, HealthResponse{
			Status:    "ok",
			Timestamp: now.UTC().Format(time.RFC3339Nano),
			Uptime:    now.Sub(h.startupTime).Seconds(),
		})
	}
}
