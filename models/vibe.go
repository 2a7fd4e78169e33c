package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VibeConfig is a named point on the 0-100 slider carrying a full style
type VibeConfig struct {
	ID             uuid.UUID                  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name           string                     `json:"name" gorm:"column:name;type:text;not null"`
	SliderPosition int                        `json:"slider_position" gorm:"column:slider_position;not null;index"`
	Config         datatypes.JSONType[Config] `json:"config" gorm:"column:config;type:jsonb;not null"`
}

func (VibeConfig) TableName() string {
	return "vibe_configs"
}

// Style returns the decoded style configuration.
func (v VibeConfig) Style() Config {
	return v.Config.Data()
}

// Config is the visual configuration of a vibe. Nil groups and empty
// strings mean "not set".
type Config struct {
	Typography   *Typography `json:"typography,omitempty"`
	Colors       *Colors     `json:"colors,omitempty"`
	Spacing      *Spacing    `json:"spacing,omitempty"`
	BorderRadius string      `json:"border_radius,omitempty"`
	GridColumns  int         `json:"grid_columns,omitempty"`
}

type Typography struct {
	FontFamily string     `json:"font_family,omitempty"`
	FontSizes  *FontSizes `json:"font_sizes,omitempty"`
}

type FontSizes struct {
	H1    string `json:"h1,omitempty"`
	H2    string `json:"h2,omitempty"`
	H3    string `json:"h3,omitempty"`
	Body  string `json:"body,omitempty"`
	Small string `json:"small,omitempty"`
}

type Colors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Accent     string `json:"accent,omitempty"`
}

type Spacing struct {
	XS string `json:"xs,omitempty"`
	SM string `json:"sm,omitempty"`
	MD string `json:"md,omitempty"`
	LG string `json:"lg,omitempty"`
	XL string `json:"xl,omitempty"`
}
