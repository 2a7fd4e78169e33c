package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type caseStudyHandler struct {
	responder   Responder
	logger      zerolog.Logger
	caseStudies CaseStudyStore
}

func newCaseStudyHandler(caseStudies CaseStudyStore, production bool) caseStudyHandler {
	logger := log.With().Str("handlerName", "caseStudyHandler").Logger()

	return caseStudyHandler{
		responder:   NewResponder(logger, production),
		logger:      logger,
		caseStudies: caseStudies,
	}
}

// getAllCaseStudies lists case studies with their project's title and thumbnail
// @Summary Get all case studies
// @Tags CaseStudies
// @Produce json
// @Success 200 {object} CaseStudiesResponse "Case studies ordered by order_index"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching case studies"
// @Router /api/case-studies [get]
func (h caseStudyHandler) getAllCaseStudies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseStudies, err := h.caseStudies.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "case studies", err))
			return
		}

		h.responder.WriteJSON(w, CaseStudiesResponse{CaseStudies: caseStudies})
	}
}
