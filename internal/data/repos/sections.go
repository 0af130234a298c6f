package repos

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

// Section repos share one pattern: a singleton config row upserted by
// fixed id, and child rows replaced wholesale (the admin screens always
// submit the full ordered list).

func upsertConfig[T any](ctx context.Context, t *gorm.DB, row *T) error {
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

type SliderRepo interface {
	GetConfig(ctx context.Context, tx *gorm.DB) (*domain.SliderConfig, error)
	UpsertConfig(ctx context.Context, tx *gorm.DB, enabled bool) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.SliderItem) error
	ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.SliderItem, error)
}

type sliderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSliderRepo(db *gorm.DB, baseLog *logger.Logger) SliderRepo {
	return &sliderRepo{db: db, log: baseLog.With("repo", "SliderRepo")}
}

func (r *sliderRepo) GetConfig(ctx context.Context, tx *gorm.DB) (*domain.SliderConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.SliderConfig
	if err := t.WithContext(ctx).Where("id = ?", domain.SectionConfigID).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *sliderRepo) UpsertConfig(ctx context.Context, tx *gorm.DB, enabled bool) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return upsertConfig(ctx, t, &domain.SliderConfig{
		ID:        domain.SectionConfigID,
		Enabled:   enabled,
		UpdatedAt: time.Now().UTC(),
	})
}

func (r *sliderRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.SliderItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Where("1 = 1").Delete(&domain.SliderItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&items).Error
}

func (r *sliderRepo) ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.SliderItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Order("position ASC")
	if enabledOnly {
		q = q.Where("enabled = ?", true)
	}
	var out []*domain.SliderItem
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type SharkTankRepo interface {
	GetConfig(ctx context.Context, tx *gorm.DB) (*domain.SharkTankConfig, error)
	UpsertConfig(ctx context.Context, tx *gorm.DB, enabled bool, title string) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.SharkTankItem) error
	ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.SharkTankItem, error)
}

type sharkTankRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSharkTankRepo(db *gorm.DB, baseLog *logger.Logger) SharkTankRepo {
	return &sharkTankRepo{db: db, log: baseLog.With("repo", "SharkTankRepo")}
}

func (r *sharkTankRepo) GetConfig(ctx context.Context, tx *gorm.DB) (*domain.SharkTankConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.SharkTankConfig
	if err := t.WithContext(ctx).Where("id = ?", domain.SectionConfigID).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *sharkTankRepo) UpsertConfig(ctx context.Context, tx *gorm.DB, enabled bool, title string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return upsertConfig(ctx, t, &domain.SharkTankConfig{
		ID:        domain.SectionConfigID,
		Enabled:   enabled,
		Title:     title,
		UpdatedAt: time.Now().UTC(),
	})
}

func (r *sharkTankRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.SharkTankItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Where("1 = 1").Delete(&domain.SharkTankItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&items).Error
}

func (r *sharkTankRepo) ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.SharkTankItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Order("position ASC")
	if enabledOnly {
		q = q.Where("enabled = ?", true)
	}
	var out []*domain.SharkTankItem
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type NewDropsRepo interface {
	GetConfig(ctx context.Context, tx *gorm.DB) (*domain.NewDropsConfig, error)
	UpsertConfig(ctx context.Context, tx *gorm.DB, enabled bool, title, bannerImageURL string) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.NewDropsItem) error
	ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.NewDropsItem, error)
}

type newDropsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNewDropsRepo(db *gorm.DB, baseLog *logger.Logger) NewDropsRepo {
	return &newDropsRepo{db: db, log: baseLog.With("repo", "NewDropsRepo")}
}

func (r *newDropsRepo) GetConfig(ctx context.Context, tx *gorm.DB) (*domain.NewDropsConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.NewDropsConfig
	if err := t.WithContext(ctx).Where("id = ?", domain.SectionConfigID).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *newDropsRepo) UpsertConfig(ctx context.Context, tx *gorm.DB, enabled bool, title, bannerImageURL string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return upsertConfig(ctx, t, &domain.NewDropsConfig{
		ID:             domain.SectionConfigID,
		Enabled:        enabled,
		Title:          title,
		BannerImageURL: bannerImageURL,
		UpdatedAt:      time.Now().UTC(),
	})
}

func (r *newDropsRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.NewDropsItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Where("1 = 1").Delete(&domain.NewDropsItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&items).Error
}

func (r *newDropsRepo) ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.NewDropsItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Order("position ASC")
	if enabledOnly {
		q = q.Where("enabled = ?", true)
	}
	var out []*domain.NewDropsItem
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type HeaderRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*domain.HeaderConfig, error)
	Upsert(ctx context.Context, tx *gorm.DB, cfg domain.HeaderConfig) error
}

type headerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHeaderRepo(db *gorm.DB, baseLog *logger.Logger) HeaderRepo {
	return &headerRepo{db: db, log: baseLog.With("repo", "HeaderRepo")}
}

func (r *headerRepo) Get(ctx context.Context, tx *gorm.DB) (*domain.HeaderConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.HeaderConfig
	if err := t.WithContext(ctx).Where("id = ?", domain.SectionConfigID).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *headerRepo) Upsert(ctx context.Context, tx *gorm.DB, cfg domain.HeaderConfig) error {
	t := tx
	if t == nil {
		t = r.db
	}
	cfg.ID = domain.SectionConfigID
	cfg.UpdatedAt = time.Now().UTC()
	return upsertConfig(ctx, t, &cfg)
}

type CategoryRepo interface {
	ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.CategoryItem) error
	ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.CategoryItem, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, items []*domain.CategoryItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Where("1 = 1").Delete(&domain.CategoryItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&items).Error
}

func (r *categoryRepo) ListItems(ctx context.Context, tx *gorm.DB, enabledOnly bool) ([]*domain.CategoryItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Order("position ASC")
	if enabledOnly {
		q = q.Where("enabled = ?", true)
	}
	var out []*domain.CategoryItem
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
