package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns the project list, newest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Select(models.ProjectSummaryColumns).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindFeatured returns the project list with featured projects first
func (r *ProjectRepo) FindFeatured(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Select(models.ProjectSummaryColumns).
		Order("featured DESC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when it does not exist
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(project).Error
}
