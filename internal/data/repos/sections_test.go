package repos

import (
	"context"
	"testing"

	"github.com/shopcanvas/builder-backend/internal/data/repos/testutil"
	"github.com/shopcanvas/builder-backend/internal/domain"
)

func TestSliderRepoConfigAndItems(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewSliderRepo(db, testutil.Logger(t))

	if cfg, err := repo.GetConfig(ctx, tx); err != nil || cfg != nil {
		t.Fatalf("GetConfig before write: cfg=%v err=%v", cfg, err)
	}
	if err := repo.UpsertConfig(ctx, tx, true); err != nil {
		t.Fatalf("UpsertConfig: %v", err)
	}
	if err := repo.UpsertConfig(ctx, tx, false); err != nil {
		t.Fatalf("UpsertConfig again: %v", err)
	}
	cfg, err := repo.GetConfig(ctx, tx)
	if err != nil || cfg == nil || cfg.Enabled {
		t.Fatalf("GetConfig: cfg=%+v err=%v", cfg, err)
	}

	items := []*domain.SliderItem{
		{Title: "Second", Position: 2, Enabled: true},
		{Title: "First", Position: 1, Enabled: true},
		{Title: "Hidden", Position: 3, Enabled: false},
	}
	if err := repo.ReplaceItems(ctx, tx, items); err != nil {
		t.Fatalf("ReplaceItems: %v", err)
	}

	visible, err := repo.ListItems(ctx, tx, true)
	if err != nil || len(visible) != 2 {
		t.Fatalf("ListItems enabled: len=%d err=%v", len(visible), err)
	}
	if visible[0].Title != "First" || visible[1].Title != "Second" {
		t.Fatalf("position order broken: %q, %q", visible[0].Title, visible[1].Title)
	}

	all, err := repo.ListItems(ctx, tx, false)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListItems all: len=%d err=%v", len(all), err)
	}

	// Replace is wholesale: the old rows are gone.
	if err := repo.ReplaceItems(ctx, tx, []*domain.SliderItem{{Title: "Only", Position: 1, Enabled: true}}); err != nil {
		t.Fatalf("ReplaceItems second: %v", err)
	}
	all, err = repo.ListItems(ctx, tx, false)
	if err != nil || len(all) != 1 || all[0].Title != "Only" {
		t.Fatalf("wholesale replace: len=%d err=%v", len(all), err)
	}
}

func TestHeaderRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewHeaderRepo(db, testutil.Logger(t))

	if err := repo.Upsert(ctx, tx, domain.HeaderConfig{Enabled: true, StoreName: "Shop", ShowCart: true}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, tx, domain.HeaderConfig{Enabled: true, StoreName: "Renamed", ShowCart: true}); err != nil {
		t.Fatalf("Upsert again: %v", err)
	}
	cfg, err := repo.Get(ctx, tx)
	if err != nil || cfg == nil || cfg.StoreName != "Renamed" {
		t.Fatalf("Get: cfg=%+v err=%v", cfg, err)
	}
}

func TestCategoryRepoReplaceAndList(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCategoryRepo(db, testutil.Logger(t))

	items := []*domain.CategoryItem{
		{Title: "Shoes", CollectionID: "gid://shopify/Collection/1", Position: 1, Enabled: true},
		{Title: "Hats", CollectionID: "gid://shopify/Collection/2", Position: 2, Enabled: false},
	}
	if err := repo.ReplaceItems(ctx, tx, items); err != nil {
		t.Fatalf("ReplaceItems: %v", err)
	}
	visible, err := repo.ListItems(ctx, tx, true)
	if err != nil || len(visible) != 1 || visible[0].Title != "Shoes" {
		t.Fatalf("ListItems enabled: %v err=%v", visible, err)
	}
}
