package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/data/repos"
	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/apierr"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

// Section views returned to the admin screens.

type SliderSection struct {
	Enabled bool                 `json:"enabled"`
	Items   []*domain.SliderItem `json:"items"`
}

type SharkTankSection struct {
	Enabled bool                    `json:"enabled"`
	Title   string                  `json:"title"`
	Items   []*domain.SharkTankItem `json:"items"`
}

type NewDropsSection struct {
	Enabled        bool                   `json:"enabled"`
	Title          string                 `json:"title"`
	BannerImageURL string                 `json:"banner_image_url"`
	Items          []*domain.NewDropsItem `json:"items"`
}

type CategorySection struct {
	Items []*domain.CategoryItem `json:"items"`
}

type SectionService interface {
	GetSlider(ctx context.Context) (*SliderSection, error)
	UpdateSlider(ctx context.Context, enabled bool, items []*domain.SliderItem) error

	GetSharkTank(ctx context.Context) (*SharkTankSection, error)
	UpdateSharkTank(ctx context.Context, enabled bool, title string, items []*domain.SharkTankItem) error

	GetNewDrops(ctx context.Context) (*NewDropsSection, error)
	UpdateNewDrops(ctx context.Context, enabled bool, title, bannerImageURL string, items []*domain.NewDropsItem) error

	GetHeader(ctx context.Context) (*domain.HeaderConfig, error)
	UpdateHeader(ctx context.Context, cfg domain.HeaderConfig) error

	GetCategories(ctx context.Context) (*CategorySection, error)
	UpdateCategories(ctx context.Context, items []*domain.CategoryItem) error
}

type sectionService struct {
	db         *gorm.DB
	log        *logger.Logger
	slider     repos.SliderRepo
	sharkTank  repos.SharkTankRepo
	newDrops   repos.NewDropsRepo
	header     repos.HeaderRepo
	categories repos.CategoryRepo
}

func NewSectionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	slider repos.SliderRepo,
	sharkTank repos.SharkTankRepo,
	newDrops repos.NewDropsRepo,
	header repos.HeaderRepo,
	categories repos.CategoryRepo,
) SectionService {
	return &sectionService{
		db:         db,
		log:        baseLog.With("service", "SectionService"),
		slider:     slider,
		sharkTank:  sharkTank,
		newDrops:   newDrops,
		header:     header,
		categories: categories,
	}
}

func (s *sectionService) GetSlider(ctx context.Context) (*SliderSection, error) {
	cfg, err := s.slider.GetConfig(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	items, err := s.slider.ListItems(ctx, nil, false)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	out := &SliderSection{Items: items}
	if cfg != nil {
		out.Enabled = cfg.Enabled
	}
	return out, nil
}

// UpdateSlider replaces the whole section in one transaction; the admin
// screen always submits the full ordered list.
func (s *sectionService) UpdateSlider(ctx context.Context, enabled bool, items []*domain.SliderItem) error {
	normalizeSliderPositions(items)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.slider.UpsertConfig(ctx, tx, enabled); err != nil {
			return err
		}
		return s.slider.ReplaceItems(ctx, tx, items)
	})
	if err != nil {
		s.log.Error("UpdateSlider failed", "error", err)
		return apierr.Persistence(err)
	}
	return nil
}

func (s *sectionService) GetSharkTank(ctx context.Context) (*SharkTankSection, error) {
	cfg, err := s.sharkTank.GetConfig(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	items, err := s.sharkTank.ListItems(ctx, nil, false)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	out := &SharkTankSection{Items: items}
	if cfg != nil {
		out.Enabled = cfg.Enabled
		out.Title = cfg.Title
	}
	return out, nil
}

func (s *sectionService) UpdateSharkTank(ctx context.Context, enabled bool, title string, items []*domain.SharkTankItem) error {
	for i, item := range items {
		if item.ProductID == "" {
			return apierr.Validation("shark tank item %d has no product id", i)
		}
		item.Position = i + 1
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.sharkTank.UpsertConfig(ctx, tx, enabled, title); err != nil {
			return err
		}
		return s.sharkTank.ReplaceItems(ctx, tx, items)
	})
	if err != nil {
		s.log.Error("UpdateSharkTank failed", "error", err)
		return apierr.Persistence(err)
	}
	return nil
}

func (s *sectionService) GetNewDrops(ctx context.Context) (*NewDropsSection, error) {
	cfg, err := s.newDrops.GetConfig(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	items, err := s.newDrops.ListItems(ctx, nil, false)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	out := &NewDropsSection{Items: items}
	if cfg != nil {
		out.Enabled = cfg.Enabled
		out.Title = cfg.Title
		out.BannerImageURL = cfg.BannerImageURL
	}
	return out, nil
}

func (s *sectionService) UpdateNewDrops(ctx context.Context, enabled bool, title, bannerImageURL string, items []*domain.NewDropsItem) error {
	for i, item := range items {
		if item.ProductID == "" {
			return apierr.Validation("new drops item %d has no product id", i)
		}
		item.Position = i + 1
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.newDrops.UpsertConfig(ctx, tx, enabled, title, bannerImageURL); err != nil {
			return err
		}
		return s.newDrops.ReplaceItems(ctx, tx, items)
	})
	if err != nil {
		s.log.Error("UpdateNewDrops failed", "error", err)
		return apierr.Persistence(err)
	}
	return nil
}

func (s *sectionService) GetHeader(ctx context.Context) (*domain.HeaderConfig, error) {
	cfg, err := s.header.Get(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if cfg == nil {
		cfg = &domain.HeaderConfig{ID: domain.SectionConfigID}
	}
	return cfg, nil
}

func (s *sectionService) UpdateHeader(ctx context.Context, cfg domain.HeaderConfig) error {
	if err := s.header.Upsert(ctx, nil, cfg); err != nil {
		s.log.Error("UpdateHeader failed", "error", err)
		return apierr.Persistence(err)
	}
	return nil
}

func (s *sectionService) GetCategories(ctx context.Context) (*CategorySection, error) {
	items, err := s.categories.ListItems(ctx, nil, false)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return &CategorySection{Items: items}, nil
}

func (s *sectionService) UpdateCategories(ctx context.Context, items []*domain.CategoryItem) error {
	for i, item := range items {
		if item.Title == "" {
			return apierr.Validation("category item %d has no title", i)
		}
		item.Position = i + 1
	}
	if err := s.categories.ReplaceItems(ctx, nil, items); err != nil {
		s.log.Error("UpdateCategories failed", "error", err)
		return apierr.Persistence(err)
	}
	return nil
}

func normalizeSliderPositions(items []*domain.SliderItem) {
	for i, item := range items {
		item.Position = i + 1
	}
}
