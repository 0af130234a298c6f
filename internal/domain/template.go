package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Template is a named, persisted layout document. Data holds the ordered
// ComponentInstance sequence; name is unique among stored documents.
type Template struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"uniqueIndex:idx_template_name;not null" json:"name"`
	DesignType DesignType     `gorm:"not null;index" json:"design_type"`
	Data       datatypes.JSON `gorm:"type:jsonb" json:"data"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (Template) TableName() string { return "template" }

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Components decodes the stored layout.
func (t *Template) Components() ([]ComponentInstance, error) {
	return UnmarshalComponents(t.Data)
}
