package repos

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

type PdpConfigRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*domain.PdpConfig, error)
	Upsert(ctx context.Context, tx *gorm.DB, active bool, designData datatypes.JSON) (*domain.PdpConfig, error)
}

type pdpConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPdpConfigRepo(db *gorm.DB, baseLog *logger.Logger) PdpConfigRepo {
	return &pdpConfigRepo{db: db, log: baseLog.With("repo", "PdpConfigRepo")}
}

func (r *pdpConfigRepo) Get(ctx context.Context, tx *gorm.DB) (*domain.PdpConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.PdpConfig
	if err := t.WithContext(ctx).
		Where("id = ?", domain.PdpConfigID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// Upsert writes the activation flag and design data together in one
// statement keyed by the fixed row id. The store itself accepts any
// combination; the emptiness guard lives at the service boundary.
func (r *pdpConfigRepo) Upsert(ctx context.Context, tx *gorm.DB, active bool, designData datatypes.JSON) (*domain.PdpConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	row := &domain.PdpConfig{
		ID:         domain.PdpConfigID,
		Active:     active,
		DesignData: designData,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active", "design_data", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
