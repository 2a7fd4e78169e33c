package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/models"
	"gorm.io/gorm"
)

type CaseStudyRepo struct {
	db *gorm.DB
}

func NewCaseStudyRepo(db *gorm.DB) *CaseStudyRepo {
	return &CaseStudyRepo{db}
}

// FindAll returns every case study with its parent project's title and
// thumbnail, ordered by order_index
func (r *CaseStudyRepo) FindAll(ctx context.Context) ([]models.CaseStudy, error) {
	caseStudies := []models.CaseStudy{}
	err := r.db.WithContext(ctx).
		Table("case_studies AS cs").
		Select("cs.*, p.title AS project_title, p.thumbnail_url AS project_thumbnail").
		Joins("LEFT JOIN projects p ON cs.project_id = p.id").
		Order("cs.order_index ASC").
		Scan(&caseStudies).Error
	return caseStudies, err
}

// Add inserts a new case study into the database
func (r *CaseStudyRepo) Add(ctx context.Context, caseStudy *models.CaseStudy) error {
	if caseStudy.ID == uuid.Nil {
		caseStudy.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(caseStudy).Error
}
