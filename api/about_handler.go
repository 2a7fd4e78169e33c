package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	about     AboutStore
}

func newAboutHandler(about AboutStore, production bool) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		about:     about,
	}
}

// getAbout returns the latest about content, or an empty object when none exists
// @Summary Get about content
// @Tags About
// @Produce json
// @Success 200 {object} models.About "About content"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching about content"
// @Router /api/about [get]
func (h aboutHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.about.FindLatest(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "about content", err))
			return
		}

		if about == nil {
			h.responder.WriteJSON(w, struct{}{})
			return
		}

		h.responder.WriteJSON(w, about)
	}
}
