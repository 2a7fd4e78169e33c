package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/errs"
	"github.com/rpupo63/chameleon-site/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedCaseStudy is a case study linked to its project by title
type SeedCaseStudy struct {
	ProjectTitle string
	CaseStudy    models.CaseStudy
}

// SeedData is the full content set written by Seed
type SeedData struct {
	Vibes       []models.VibeConfig
	Projects    []models.Project
	CaseStudies []SeedCaseStudy
	About       models.About
}

// seedTables are cleared in dependency order
var seedTables = []string{"case_studies", "projects", "vibe_configs", "about_content"}

// Seed replaces all content with data inside a single transaction. Any
// failure rolls the whole operation back.
func Seed(ctx context.Context, db *gorm.DB, data SeedData) error {
	logger := log.With().Str("component", "seed").Logger()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range seedTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		for _, vibe := range data.Vibes {
			vibe.ID = uuid.New()
			if err := tx.Create(&vibe).Error; err != nil {
				return err
			}
		}
		logger.Info().Int("count", len(data.Vibes)).Msg("Seeded vibe configs")

		projectIDs := make(map[string]uuid.UUID, len(data.Projects))
		for _, project := range data.Projects {
			project.ID = uuid.New()
			if err := tx.Create(&project).Error; err != nil {
				return err
			}
			projectIDs[project.Title] = project.ID
		}
		logger.Info().Int("count", len(data.Projects)).Msg("Seeded projects")

		seeded := 0
		for _, cs := range data.CaseStudies {
			projectID, ok := projectIDs[cs.ProjectTitle]
			if !ok {
				logger.Warn().Str("projectTitle", cs.ProjectTitle).Str("caseStudy", cs.CaseStudy.Title).Msg("Skipping case study with unknown project")
				continue
			}
			caseStudy := cs.CaseStudy
			caseStudy.ID = uuid.New()
			caseStudy.ProjectID = projectID
			if err := tx.Omit("project_title", "project_thumbnail").Create(&caseStudy).Error; err != nil {
				return err
			}
			seeded++
		}
		logger.Info().Int("count", seeded).Msg("Seeded case studies")

		if !data.About.IsZero() {
			if err := NewAboutRepo(tx).Add(ctx, data.About); err != nil {
				return err
			}
			logger.Info().Msg("Seeded about content")
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error seeding database")
		return errs.NewTransactionFailedError("seed", err)
	}

	logger.Info().Msg("Database seeded successfully")
	return nil
}
