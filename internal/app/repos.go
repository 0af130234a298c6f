package app

import (
	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/data/repos"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

type Repos struct {
	Template  repos.TemplateRepo
	PdpConfig repos.PdpConfigRepo
	Slider    repos.SliderRepo
	SharkTank repos.SharkTankRepo
	NewDrops  repos.NewDropsRepo
	Header    repos.HeaderRepo
	Category  repos.CategoryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Template:  repos.NewTemplateRepo(db, log),
		PdpConfig: repos.NewPdpConfigRepo(db, log),
		Slider:    repos.NewSliderRepo(db, log),
		SharkTank: repos.NewSharkTankRepo(db, log),
		NewDrops:  repos.NewNewDropsRepo(db, log),
		Header:    repos.NewHeaderRepo(db, log),
		Category:  repos.NewCategoryRepo(db, log),
	}
}
