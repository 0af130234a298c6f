package db

import (
	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Layout documents + activation
		&domain.Template{},
		&domain.PdpConfig{},

		// Marketing sections: config row + ordered children
		&domain.SliderConfig{},
		&domain.SliderItem{},
		&domain.SharkTankConfig{},
		&domain.SharkTankItem{},
		&domain.NewDropsConfig{},
		&domain.NewDropsItem{},
		&domain.HeaderConfig{},
		&domain.CategoryItem{},
	)
}
