package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PdpConfigID is the fixed key of the single activation row. There is
// exactly one PDP activation record; every write is an upsert on it.
const PdpConfigID = 1

// PdpConfig is the activation record for the product-detail-page design:
// whether the custom layout is live, and the component sequence to use
// when it is. DesignData may be non-empty in either state; activation is
// refused above the store when it is empty.
type PdpConfig struct {
	ID         int            `gorm:"primaryKey" json:"id"`
	Active     bool           `gorm:"not null" json:"active"`
	DesignData datatypes.JSON `gorm:"type:jsonb" json:"design_data"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (PdpConfig) TableName() string { return "pdp_config" }

// Components decodes the pinned design.
func (p *PdpConfig) Components() ([]ComponentInstance, error) {
	return UnmarshalComponents(p.DesignData)
}
