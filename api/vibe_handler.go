package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rpupo63/chameleon-site/errs"
	"github.com/rpupo63/chameleon-site/models"
	"github.com/rpupo63/chameleon-site/services"
	"github.com/rpupo63/chameleon-site/vibe"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type vibeHandler struct {
	responder Responder
	logger    zerolog.Logger
	cache     *services.VibeCache
}

func newVibeHandler(cache *services.VibeCache, production bool) vibeHandler {
	logger := log.With().Str("handlerName", "vibeHandler").Logger()

	return vibeHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		cache:     cache,
	}
}

// presets returns the cached presets, loading them first when the cache is empty
func (h vibeHandler) presets(ctx context.Context) ([]models.VibeConfig, error) {
	if !h.cache.IsReady() {
		if err := h.cache.Init(ctx); err != nil {
			return nil, errs.NewInternalErrorWithCause("Failed to load vibe configs", err)
		}
	}
	return h.cache.Get(), nil
}

// positionParam reads ?position, defaulting to the middle of the slider
func positionParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("position")
	if raw == "" {
		return vibe.DefaultPosition, nil
	}
	position, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewInvalidFieldError("position", "must be an integer").WithDetails(map[string]string{"param": "position", "received": raw})
	}
	return vibe.Clamp(position), nil
}

// getVibes lists all vibe presets ordered by slider position
// @Summary Get vibe presets
// @Tags Vibes
// @Produce json
// @Success 200 {object} VibesResponse
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error loading vibe configs"
// @Router /api/vibes [get]
func (h vibeHandler) getVibes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		presets, err := h.presets(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, VibesResponse{Vibes: presets})
	}
}

// getNearestVibe returns the preset closest to a slider position
// @Summary Get nearest vibe
// @Tags Vibes
// @Produce json
// @Param position query int false "Slider position, clamped to 0-100" default(50)
// @Success 200 {object} models.VibeConfig
// @Failure 400 {object} ErrorResponse "Bad Request - position is not an integer"
// @Failure 404 {object} ErrorResponse "Not Found - no presets available"
// @Router /api/vibes/nearest [get]
func (h vibeHandler) getNearestVibe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		position, err := positionParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		presets, err := h.presets(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		preset, ok := vibe.Nearest(presets, position)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("No vibe configs available"))
			return
		}

		h.responder.WriteJSON(w, preset)
	}
}

// getThemeCSS renders the theme for a slider position as CSS custom properties
// @Summary Get theme stylesheet
// @Tags Vibes
// @Produce text/css
// @Param position query int false "Slider position, clamped to 0-100" default(50)
// @Param blend query bool false "Interpolate between the two surrounding presets"
// @Success 200 {string} string ":root { ... }"
// @Router /api/vibes/theme.css [get]
func (h vibeHandler) getThemeCSS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		position, err := positionParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		presets, err := h.presets(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var (
			cfg models.Config
			ok  bool
		)
		if r.URL.Query().Get("blend") == "true" {
			cfg, ok = vibe.Blend(presets, position)
		} else {
			var preset models.VibeConfig
			preset, ok = vibe.Nearest(presets, position)
			cfg = preset.Style()
		}
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("No vibe configs available"))
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		h.responder.WriteText(w, "text/css; charset=utf-8", vibe.RenderCSS(cfg))
	}
}

// refreshVibes reloads the vibe cache from the database
// @Summary Refresh vibe cache
// @Tags Vibes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error reloading vibe configs"
// @Router /api/vibes/refresh [post]
func (h vibeHandler) refreshVibes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.cache.Refresh(r.Context()); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to refresh vibe configs", err))
			return
		}

		count := len(h.cache.Get())
		h.logger.Info().
			Str("subject", ctxGetAdminSubject(r.Context())).
			Int("count", count).
			Msg("Vibe cache refreshed")

		h.responder.WriteJSON(w, RefreshResponse{Count: count})
	}
}
