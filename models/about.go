package models

import (
	"time"

	"gorm.io/datatypes"
)

// About is the singleton profile rendered on the about page
type About struct {
	Name        string       `json:"name,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

// IsZero reports whether no about content was loaded
func (a About) IsZero() bool {
	return a.Name == "" && a.Bio == "" && len(a.Skills) == 0 && len(a.Experience) == 0 && a.SocialLinks == nil
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type SocialLinks struct {
	Email    *string `json:"email"`
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Dribbble *string `json:"dribbble"`
}

// AboutContent is the stored row; only the most recently updated one is served
type AboutContent struct {
	ID        int64                    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Content   datatypes.JSONType[About] `json:"content" gorm:"column:content;type:jsonb;not null"`
	UpdatedAt time.Time                `json:"updated_at" gorm:"column:updated_at;not null;default:now()"`
}

func (AboutContent) TableName() string {
	return "about_content"
}
