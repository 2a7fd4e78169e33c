package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/models"
	"gorm.io/gorm"
)

type VibeConfigRepo struct {
	db *gorm.DB
}

func NewVibeConfigRepo(db *gorm.DB) *VibeConfigRepo {
	return &VibeConfigRepo{db}
}

// FindAllOrdered returns every vibe preset sorted by slider position
func (r *VibeConfigRepo) FindAllOrdered(ctx context.Context) ([]models.VibeConfig, error) {
	vibes := []models.VibeConfig{}
	err := r.db.WithContext(ctx).Order("slider_position ASC").Find(&vibes).Error
	return vibes, err
}

// Add inserts a new vibe preset into the database
func (r *VibeConfigRepo) Add(ctx context.Context, vibe *models.VibeConfig) error {
	if vibe.ID == uuid.Nil {
		vibe.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(vibe).Error
}
