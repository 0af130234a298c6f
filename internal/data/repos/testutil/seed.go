package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

func SeedTemplate(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, components []domain.ComponentInstance) *domain.Template {
	tb.Helper()
	data, err := domain.MarshalComponents(components)
	if err != nil {
		tb.Fatalf("marshal components: %v", err)
	}
	row := &domain.Template{
		ID:         uuid.New(),
		Name:       name,
		DesignType: domain.DesignHomepage,
		Data:       data,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed template: %v", err)
	}
	return row
}

func Components(types ...string) []domain.ComponentInstance {
	out := make([]domain.ComponentInstance, 0, len(types))
	for i, typ := range types {
		out = append(out, domain.ComponentInstance{
			ID:    typ + "-" + string(rune('1'+i)),
			Type:  typ,
			Props: map[string]any{},
		})
	}
	return out
}
