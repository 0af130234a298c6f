package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/data/repos"
	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/apierr"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
	"github.com/shopcanvas/builder-backend/internal/registry"
)

type TemplateService interface {
	Save(ctx context.Context, name string, designType domain.DesignType, components []domain.ComponentInstance) (uuid.UUID, error)
	Load(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) (string, error)
}

type templateService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.TemplateRepo
}

func NewTemplateService(db *gorm.DB, baseLog *logger.Logger, repo repos.TemplateRepo) TemplateService {
	return &templateService{
		db:   db,
		log:  baseLog.With("service", "TemplateService"),
		repo: repo,
	}
}

// Save always creates a new named document; there is no update-by-name
// path, so an editor can never overwrite a layout by reusing a name.
func (s *templateService) Save(ctx context.Context, name string, designType domain.DesignType, components []domain.ComponentInstance) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, apierr.Validation("template name is required")
	}
	if len(components) == 0 {
		return uuid.Nil, apierr.Validation("template must contain at least one component")
	}
	if !designType.Valid() {
		return uuid.Nil, apierr.Validation("unknown design type %q", designType)
	}
	if err := validateComponents(designType, components); err != nil {
		return uuid.Nil, err
	}

	// Advisory pre-check for a friendly message; the unique index is the
	// authoritative backstop under concurrency.
	exists, err := s.repo.NameExists(ctx, nil, name)
	if err != nil {
		s.log.Error("Save: name check failed", "error", err)
		return uuid.Nil, apierr.Persistence(err)
	}
	if exists {
		return uuid.Nil, apierr.Conflict("a template named %q already exists", name)
	}

	data, err := domain.MarshalComponents(components)
	if err != nil {
		return uuid.Nil, apierr.Validation("components are not serializable: %v", err)
	}

	row, err := s.repo.Create(ctx, nil, &domain.Template{
		Name:       name,
		DesignType: designType,
		Data:       data,
	})
	if err != nil {
		if repos.IsUniqueViolation(err) {
			return uuid.Nil, apierr.Conflict("a template named %q already exists", name)
		}
		s.log.Error("Save: create failed", "error", err, "name", name)
		return uuid.Nil, apierr.Persistence(err)
	}

	s.log.Info("template saved", "id", row.ID, "name", name, "design_type", designType, "components", len(components))
	return row.ID, nil
}

func (s *templateService) Load(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	row, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Error("Load failed", "error", err, "id", id)
		return nil, apierr.Persistence(err)
	}
	if row == nil {
		return nil, apierr.NotFound("template %s not found", id)
	}
	return row, nil
}

func (s *templateService) List(ctx context.Context) ([]*domain.Template, error) {
	rows, err := s.repo.ListWithData(ctx, nil)
	if err != nil {
		s.log.Error("List failed", "error", err)
		return nil, apierr.Persistence(err)
	}
	return rows, nil
}

// Delete removes the document and returns its display name for the
// caller's confirmation message.
func (s *templateService) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	row, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Error("Delete: lookup failed", "error", err, "id", id)
		return "", apierr.Persistence(err)
	}
	if row == nil {
		return "", apierr.NotFound("template %s not found", id)
	}
	n, err := s.repo.DeleteByID(ctx, nil, id)
	if err != nil {
		s.log.Error("Delete failed", "error", err, "id", id)
		return "", apierr.Persistence(err)
	}
	if n == 0 {
		return "", apierr.NotFound("template %s not found", id)
	}
	s.log.Info("template deleted", "id", id, "name", row.Name)
	return row.Name, nil
}

// validateComponents enforces the registry at the store boundary:
// unknown type tags are rejected instead of deferring to UI-only checks,
// and declared prop keys are type-checked.
func validateComponents(designType domain.DesignType, components []domain.ComponentInstance) error {
	for i, c := range components {
		if strings.TrimSpace(c.Type) == "" {
			return apierr.Validation("component %d has no type", i)
		}
		if !registry.Allowed(designType, c.Type) {
			return apierr.Validation("component type %q is not in the %s palette", c.Type, designType)
		}
		if err := registry.ValidateProps(c.Type, c.Props); err != nil {
			return apierr.Validation("component %d: %v", i, err)
		}
	}
	return nil
}
