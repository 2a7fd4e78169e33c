package models

import "github.com/google/uuid"

// CaseStudy is a long-form write-up attached to a project
type CaseStudy struct {
	ID          uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"project_id" gorm:"column:project_id;type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"column:title;type:text;not null"`
	Description string    `json:"description" gorm:"column:description;type:text;not null"`
	Challenge   string    `json:"challenge" gorm:"column:challenge;type:text;not null"`
	Solution    string    `json:"solution" gorm:"column:solution;type:text;not null"`
	Results     string    `json:"results" gorm:"column:results;type:text;not null"`
	OrderIndex  int       `json:"order_index" gorm:"column:order_index;not null;default:0"`

	// Populated by the project join, never written
	ProjectTitle     *string `json:"project_title,omitempty" gorm:"column:project_title;->;-:migration"`
	ProjectThumbnail *string `json:"project_thumbnail,omitempty" gorm:"column:project_thumbnail;->;-:migration"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}
