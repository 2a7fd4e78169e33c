package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpupo63/chameleon-site/errs"
)

// setupRoutes registers every public route. The refresh route exists only
// when admin auth is configured.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth *authMiddleware, responder Responder) {
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteError(w, errs.NewRouteNotFoundError(req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteError(w, errs.NewMethodNotAllowedError(req.Method, req.URL.Path))
	})

	r.Get("/health", handlers.healthHandler.getHealth())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.With(validateUUIDParam("id", responder)).Get("/projects/{id}", handlers.projectHandler.getProject())

		// Case Study Handler endpoints
		r.Get("/case-studies", handlers.caseStudyHandler.getAllCaseStudies())

		// About Handler endpoints
		r.Get("/about", handlers.aboutHandler.getAbout())

		// Vibe Handler endpoints
		r.Get("/vibes", handlers.vibeHandler.getVibes())
		r.Get("/vibes/nearest", handlers.vibeHandler.getNearestVibe())
		r.Get("/vibes/theme.css", handlers.vibeHandler.getThemeCSS())
		if auth != nil {
			r.With(auth.authenticate).Post("/vibes/refresh", handlers.vibeHandler.refreshVibes())
		}

		// Asset Handler endpoints
		r.Get("/assets/*", handlers.assetHandler.getAsset())
		r.Head("/assets/*", handlers.assetHandler.getAsset())
	})
}
