package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

type TemplateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.Template) (*domain.Template, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Template, error)
	ListWithData(ctx context.Context, tx *gorm.DB) ([]*domain.Template, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

type templateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTemplateRepo(db *gorm.DB, baseLog *logger.Logger) TemplateRepo {
	return &templateRepo{db: db, log: baseLog.With("repo", "TemplateRepo")}
}

func (r *templateRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Template) (*domain.Template, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *templateRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Template, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*domain.Template
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// ListWithData returns documents with usable component data, newest
// update first. Rows whose data column is NULL or a JSON null are
// skipped; partially-written rows must never reach the editor's list.
func (r *templateRepo) ListWithData(ctx context.Context, tx *gorm.DB) ([]*domain.Template, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*domain.Template
	if err := t.WithContext(ctx).
		Where("data IS NOT NULL").
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Template, 0, len(rows))
	for _, row := range rows {
		if len(row.Data) == 0 || string(row.Data) == "null" {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *templateRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&domain.Template{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *templateRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return 0, nil
	}
	res := t.WithContext(ctx).Where("id = ?", id).Delete(&domain.Template{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
