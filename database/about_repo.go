package database

import (
	"context"
	"errors"

	"github.com/rpupo63/chameleon-site/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindLatest returns the most recently updated about content, or nil when
// none has been stored
func (r *AboutRepo) FindLatest(ctx context.Context) (*models.About, error) {
	var row models.AboutContent
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	about := row.Content.Data()
	return &about, nil
}

// Add stores a new about record, which becomes the latest one
func (r *AboutRepo) Add(ctx context.Context, about models.About) error {
	return r.db.WithContext(ctx).Create(&models.AboutContent{Content: datatypes.NewJSONType(about)}).Error
}
