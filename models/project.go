package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Project represents a portfolio entry with its media and links
type Project struct {
	ID           uuid.UUID                   `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" gorm:"column:title;type:text;not null"`
	Description  string                      `json:"description" gorm:"column:description;type:text;not null"`
	ThumbnailURL *string                     `json:"thumbnail_url" gorm:"column:thumbnail_url;type:text"`
	Images       datatypes.JSONSlice[string] `json:"images" gorm:"column:images;type:jsonb;not null;default:'[]'"`
	Tags         pq.StringArray              `json:"tags" gorm:"column:tags;type:text[];not null;default:'{}'"`
	Content      *string                     `json:"content,omitempty" gorm:"column:content;type:text"`
	Featured     bool                        `json:"featured" gorm:"column:featured;not null;default:false"`
	GithubURL    *string                     `json:"github_url,omitempty" gorm:"column:github_url;type:text"`
	LiveURL      *string                     `json:"live_url,omitempty" gorm:"column:live_url;type:text"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"column:created_at;not null;default:now()"`
	UpdatedAt    time.Time                   `json:"updated_at" gorm:"column:updated_at;not null;default:now()"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectSummaryColumns are the columns served by the project list; the
// long-form content and outbound links are only served by the detail view.
var ProjectSummaryColumns = []string{
	"id", "title", "description", "thumbnail_url", "images", "tags", "featured", "created_at", "updated_at",
}
