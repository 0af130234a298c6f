package repos

import (
	"context"
	"testing"

	"github.com/shopcanvas/builder-backend/internal/data/repos/testutil"
	"github.com/shopcanvas/builder-backend/internal/domain"
)

func TestPdpConfigRepoSingletonUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPdpConfigRepo(db, testutil.Logger(t))

	if got, err := repo.Get(ctx, tx); err != nil || got != nil {
		t.Fatalf("Get before first write: got=%v err=%v", got, err)
	}

	data, _ := domain.MarshalComponents(testutil.Components("ProductGallery", "AddToCart"))
	if _, err := repo.Upsert(ctx, tx, false, data); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := repo.Upsert(ctx, tx, true, data); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, tx)
	if err != nil || got == nil {
		t.Fatalf("Get: got=%v err=%v", got, err)
	}
	if got.ID != domain.PdpConfigID || !got.Active {
		t.Fatalf("upsert result: %+v", got)
	}

	var count int64
	if err := tx.Model(&domain.PdpConfig{}).Count(&count).Error; err != nil || count != 1 {
		t.Fatalf("singleton violated: count=%d err=%v", count, err)
	}
}

// The store accepts active=true with empty design data; the guard lives
// above it, at the service boundary.
func TestPdpConfigRepoAcceptsActiveWithEmptyData(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPdpConfigRepo(db, testutil.Logger(t))

	row, err := repo.Upsert(ctx, tx, true, nil)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !row.Active {
		t.Fatal("store should have persisted active=true")
	}
}
