package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/data/repos"
	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/apierr"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

// PdpStatus is the caller-facing view of the activation record.
type PdpStatus struct {
	Active     bool                       `json:"active"`
	DesignData []domain.ComponentInstance `json:"design_data"`
}

type PdpService interface {
	Status(ctx context.Context) (*PdpStatus, error)
	Update(ctx context.Context, active bool, designData []domain.ComponentInstance) (*PdpStatus, error)
}

type pdpService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.PdpConfigRepo
}

func NewPdpService(db *gorm.DB, baseLog *logger.Logger, repo repos.PdpConfigRepo) PdpService {
	return &pdpService{
		db:   db,
		log:  baseLog.With("service", "PdpService"),
		repo: repo,
	}
}

// Status reads the singleton row; a store without one is a draft with
// no design.
func (s *pdpService) Status(ctx context.Context) (*PdpStatus, error) {
	row, err := s.repo.Get(ctx, nil)
	if err != nil {
		s.log.Error("Status failed", "error", err)
		return nil, apierr.Persistence(err)
	}
	if row == nil {
		return &PdpStatus{Active: false, DesignData: []domain.ComponentInstance{}}, nil
	}
	components, err := row.Components()
	if err != nil {
		s.log.Error("Status: stored design data is corrupt", "error", err)
		return nil, apierr.Persistence(err)
	}
	if components == nil {
		components = []domain.ComponentInstance{}
	}
	return &PdpStatus{Active: row.Active, DesignData: components}, nil
}

// Update writes the flag and the design together in one upsert. Going
// live with an empty design is refused here; the store itself carries
// no such constraint. A failed write leaves the caller-visible state
// untouched.
func (s *pdpService) Update(ctx context.Context, active bool, designData []domain.ComponentInstance) (*PdpStatus, error) {
	if active {
		if len(designData) == 0 {
			return nil, apierr.Validation("cannot activate an empty design; add components first")
		}
		if err := validateComponents(domain.DesignPDP, designData); err != nil {
			return nil, err
		}
	} else if err := validateComponents(domain.DesignPDP, designData); err != nil {
		// Deactivation always goes through, even when the stored design
		// carries a type since removed from the palette.
		s.log.Warn("deactivating a design with components outside the palette", "error", err)
	}

	data, err := domain.MarshalComponents(designData)
	if err != nil {
		return nil, apierr.Validation("design data is not serializable: %v", err)
	}
	row, err := s.repo.Upsert(ctx, nil, active, data)
	if err != nil {
		s.log.Error("Update failed", "error", err, "active", active)
		return nil, apierr.Persistence(err)
	}
	s.log.Info("pdp status updated", "active", row.Active, "components", len(designData))
	if designData == nil {
		designData = []domain.ComponentInstance{}
	}
	return &PdpStatus{Active: row.Active, DesignData: designData}, nil
}
