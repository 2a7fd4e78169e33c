package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/models"
)

// ProjectStore reads projects
type ProjectStore interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	FindFeatured(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
}

// CaseStudyStore reads case studies joined with their project
type CaseStudyStore interface {
	FindAll(ctx context.Context) ([]models.CaseStudy, error)
}

// AboutStore reads the latest about content
type AboutStore interface {
	FindLatest(ctx context.Context) (*models.About, error)
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler   projectHandler
	caseStudyHandler caseStudyHandler
	aboutHandler     aboutHandler
	vibeHandler      vibeHandler
	assetHandler     assetHandler
	healthHandler    healthHandler
}

// ErrorResponse is the envelope of every error response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"Project not found"`
	Details any    `json:"details,omitempty"`
}

type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

type CaseStudiesResponse struct {
	CaseStudies []models.CaseStudy `json:"caseStudies"`
}

type VibesResponse struct {
	Vibes []models.VibeConfig `json:"vibes"`
}

type RefreshResponse struct {
	Count int `json:"count"`
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
