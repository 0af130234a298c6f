package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shopcanvas/builder-backend/internal/data/repos/testutil"
	"github.com/shopcanvas/builder-backend/internal/domain"
)

func TestTemplateRepoCreateGetDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewTemplateRepo(db, testutil.Logger(t))

	row := testutil.SeedTemplate(t, ctx, tx, "Home v1", testutil.Components("Header", "Spacer"))

	got, err := repo.GetByID(ctx, tx, row.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got.Name != "Home v1" || got.DesignType != domain.DesignHomepage {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	components, err := got.Components()
	if err != nil || len(components) != 2 || components[0].Type != "Header" {
		t.Fatalf("components roundtrip: %v err=%v", components, err)
	}

	if got, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID absent: got=%v err=%v", got, err)
	}

	if n, err := repo.DeleteByID(ctx, tx, row.ID); err != nil || n != 1 {
		t.Fatalf("DeleteByID: n=%d err=%v", n, err)
	}
	if n, err := repo.DeleteByID(ctx, tx, row.ID); err != nil || n != 0 {
		t.Fatalf("DeleteByID absent: n=%d err=%v", n, err)
	}
}

func TestTemplateRepoNameUniqueness(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewTemplateRepo(db, testutil.Logger(t))

	testutil.SeedTemplate(t, ctx, tx, "Unique Name", testutil.Components("Header"))

	exists, err := repo.NameExists(ctx, tx, "Unique Name")
	if err != nil || !exists {
		t.Fatalf("NameExists: exists=%v err=%v", exists, err)
	}
	exists, err = repo.NameExists(ctx, tx, "Other Name")
	if err != nil || exists {
		t.Fatalf("NameExists absent: exists=%v err=%v", exists, err)
	}

	data, _ := domain.MarshalComponents(testutil.Components("Footer"))
	_, err = repo.Create(ctx, tx, &domain.Template{
		Name:       "Unique Name",
		DesignType: domain.DesignHomepage,
		Data:       data,
	})
	if err == nil {
		t.Fatal("duplicate name should violate the unique index")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got: %v", err)
	}
}

func TestTemplateRepoListWithDataFiltersAndOrders(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewTemplateRepo(db, testutil.Logger(t))

	older := testutil.SeedTemplate(t, ctx, tx, "Older", testutil.Components("Header"))
	newer := testutil.SeedTemplate(t, ctx, tx, "Newer", testutil.Components("Header"))
	base := time.Now().UTC()
	if err := tx.Model(older).Update("updated_at", base.Add(-time.Hour)).Error; err != nil {
		t.Fatalf("age older row: %v", err)
	}
	if err := tx.Model(newer).Update("updated_at", base).Error; err != nil {
		t.Fatalf("touch newer row: %v", err)
	}

	// Partially-written rows: NULL data and a JSON null.
	if err := tx.Create(&domain.Template{Name: "NullData", DesignType: domain.DesignHomepage, Data: nil}).Error; err != nil {
		t.Fatalf("seed null-data row: %v", err)
	}
	if err := tx.Exec(
		`INSERT INTO template (id, name, design_type, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), "JsonNull", "homepage", "null", base, base,
	).Error; err != nil {
		t.Fatalf("seed json-null row: %v", err)
	}

	rows, err := repo.ListWithData(ctx, tx)
	if err != nil {
		t.Fatalf("ListWithData: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d, want 2 (null rows must be filtered)", len(rows))
	}
	if rows[0].Name != "Newer" || rows[1].Name != "Older" {
		t.Fatalf("order: got %q then %q, want Newer then Older", rows[0].Name, rows[1].Name)
	}
}
