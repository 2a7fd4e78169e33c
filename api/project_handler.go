package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore, production bool) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		projects:  projects,
	}
}

// getAllProjects retrieves the project list
// @Summary Get all projects
// @Description Lists projects newest first. With featured=true, featured projects come first.
// @Tags Projects
// @Produce json
// @Param featured query bool false "Order featured projects first"
// @Success 200 {object} ProjectsResponse "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		find := h.projects.FindAll
		if r.URL.Query().Get("featured") == "true" {
			find = h.projects.FindFeatured
		}

		projects, err := find(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectsResponse{Projects: projects})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a project with its long-form content and links
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - id is not a UUID v4"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /api/projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "id")

		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidUUIDError("id", projectIDStr))
			return
		}

		project, err := h.projects.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found").WithDetails(map[string]string{"id": projectIDStr}))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
