package api

import (
	"time"

	"github.com/rpupo63/chameleon-site/database"
	"github.com/rpupo63/chameleon-site/services"
)

// Backend holds everything the handlers read from
type Backend struct {
	Projects    ProjectStore
	CaseStudies CaseStudyStore
	About       AboutStore
	Vibes       *services.VibeCache
	Assets      services.AssetStore
}

// NewBackend builds a Backend over the database repositories
func NewBackend(db database.Database, vibes *services.VibeCache, assets services.AssetStore) Backend {
	return Backend{
		Projects:    db.ProjectRepo(),
		CaseStudies: db.CaseStudyRepo(),
		About:       db.AboutRepo(),
		Vibes:       vibes,
		Assets:      assets,
	}
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(backend Backend, startupTime time.Time, production bool) *routeHandlers {
	return &routeHandlers{
		projectHandler:   newProjectHandler(backend.Projects, production),
		caseStudyHandler: newCaseStudyHandler(backend.CaseStudies, production),
		aboutHandler:     newAboutHandler(backend.About, production),
		vibeHandler:      newVibeHandler(backend.Vibes, production),
		assetHandler:     newAssetHandler(backend.Assets, production),
		healthHandler:    newHealthHandler(startupTime, production),
	}
}
