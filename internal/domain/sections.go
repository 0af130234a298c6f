package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Marketing section records follow one pattern: a singleton config row
// (fixed id 1) plus zero or more ordered child rows, each with an
// enabled flag. Admin screens write them; the public live endpoints
// read them and fall back to a hardcoded payload when the config is
// absent or disabled.

const SectionConfigID = 1

type SliderConfig struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SliderConfig) TableName() string { return "slider_config" }

type SliderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	Position  int       `gorm:"not null;index" json:"position"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SliderItem) TableName() string { return "slider_item" }

func (s *SliderItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type SharkTankConfig struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SharkTankConfig) TableName() string { return "shark_tank_config" }

type SharkTankItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string    `gorm:"not null" json:"product_id"`
	Position  int       `gorm:"not null;index" json:"position"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SharkTankItem) TableName() string { return "shark_tank_item" }

func (s *SharkTankItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type NewDropsConfig struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Enabled        bool      `gorm:"not null" json:"enabled"`
	Title          string    `json:"title"`
	BannerImageURL string    `json:"banner_image_url"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (NewDropsConfig) TableName() string { return "new_drops_config" }

type NewDropsItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string    `gorm:"not null" json:"product_id"`
	Position  int       `gorm:"not null;index" json:"position"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (NewDropsItem) TableName() string { return "new_drops_item" }

func (n *NewDropsItem) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type HeaderConfig struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Enabled    bool      `gorm:"not null" json:"enabled"`
	StoreName  string    `json:"store_name"`
	LogoURL    string    `json:"logo_url"`
	ShowSearch bool      `gorm:"not null" json:"show_search"`
	ShowCart   bool      `gorm:"not null" json:"show_cart"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (HeaderConfig) TableName() string { return "header_config" }

type CategoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	CollectionID string    `json:"collection_id"`
	ImageURL     string    `json:"image_url"`
	Position     int       `gorm:"not null;index" json:"position"`
	Enabled      bool      `gorm:"not null" json:"enabled"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (CategoryItem) TableName() string { return "category_item" }

func (c *CategoryItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
