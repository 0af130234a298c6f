package resolver

import (
	"testing"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Products: []domain.ProductRecord{
			{ID: "gid://shopify/Product/1", Title: "First"},
			{ID: "gid://shopify/Product/2", Title: "Second"},
		},
		Collections: []domain.CollectionRecord{
			{ID: "gid://shopify/Collection/10", Title: "Summer"},
			{ID: "gid://shopify/Collection/11", Title: "Winter"},
		},
	}
}

func TestResolveMatchesKnownIDs(t *testing.T) {
	components := []domain.ComponentInstance{
		{ID: "c1", Type: "ProductCarousel", Props: map[string]any{"productId": "gid://shopify/Product/2"}},
		{ID: "c2", Type: "CategoryGrid", Props: map[string]any{"collectionId": "gid://shopify/Collection/11"}},
	}
	resolved := Resolve(components, testCatalog())
	if resolved[0].Product == nil || resolved[0].Product.Title != "Second" {
		t.Fatalf("product not resolved: %+v", resolved[0].Product)
	}
	if resolved[1].Collection == nil || resolved[1].Collection.Title != "Winter" {
		t.Fatalf("collection not resolved: %+v", resolved[1].Collection)
	}
}

func TestResolveFallsBackToFirstRecord(t *testing.T) {
	components := []domain.ComponentInstance{
		{ID: "c1", Type: "AddToCart", Props: map[string]any{"productId": "gid://shopify/Product/999"}},
		{ID: "c2", Type: "CategoryGrid", Props: map[string]any{"collectionId": ""}},
	}
	resolved := Resolve(components, testCatalog())
	if resolved[0].Product == nil || resolved[0].Product.Title != "First" {
		t.Fatalf("missing product id should fall back to first record, got %+v", resolved[0].Product)
	}
	if resolved[1].Collection == nil || resolved[1].Collection.Title != "Summer" {
		t.Fatalf("empty collection id should fall back to first record, got %+v", resolved[1].Collection)
	}
}

func TestResolveEmptyCatalogIsNoContent(t *testing.T) {
	components := []domain.ComponentInstance{
		{ID: "c1", Type: "ProductInfo", Props: map[string]any{"productId": "gid://shopify/Product/1"}},
	}
	resolved := Resolve(components, domain.Catalog{})
	if len(resolved) != 1 {
		t.Fatalf("len=%d, want 1", len(resolved))
	}
	if resolved[0].Product != nil {
		t.Fatalf("empty catalog should resolve to no content, got %+v", resolved[0].Product)
	}
}

func TestResolvePassesThroughUnreferencedProps(t *testing.T) {
	components := []domain.ComponentInstance{
		{ID: "h1", Type: "Header", Props: map[string]any{"text": "Welcome"}},
	}
	resolved := Resolve(components, testCatalog())
	if resolved[0].Props["text"] != "Welcome" {
		t.Fatalf("props not passed through: %+v", resolved[0].Props)
	}
	if resolved[0].Product != nil || resolved[0].Collection != nil {
		t.Fatal("unreferenced component should not resolve records")
	}
}

func TestResolveSpacerHeight(t *testing.T) {
	components := []domain.ComponentInstance{
		{ID: "s1", Type: "Spacer", Props: map[string]any{"height": float64(64)}},
		{ID: "s2", Type: "Spacer", Props: map[string]any{}},
		{ID: "s3", Type: "Spacer", Props: map[string]any{"height": "tall"}},
	}
	resolved := Resolve(components, domain.Catalog{})
	if resolved[0].Gap != 64 {
		t.Fatalf("explicit height: gap=%d, want 64", resolved[0].Gap)
	}
	if resolved[1].Gap != 40 || resolved[2].Gap != 40 {
		t.Fatalf("default height: gaps=%d,%d, want 40,40", resolved[1].Gap, resolved[2].Gap)
	}
}

func TestResolvePreservesOrder(t *testing.T) {
	components := []domain.ComponentInstance{
		{ID: "a", Type: "ProductCarousel", Props: map[string]any{"productId": "missing-1"}},
		{ID: "b", Type: "Header", Props: map[string]any{"text": "x"}},
		{ID: "c", Type: "AddToCart", Props: map[string]any{"productId": "missing-2"}},
		{ID: "d", Type: "Spacer", Props: nil},
	}
	resolved := Resolve(components, testCatalog())
	if len(resolved) != len(components) {
		t.Fatalf("len=%d, want %d", len(resolved), len(components))
	}
	for i := range components {
		if resolved[i].ID != components[i].ID {
			t.Fatalf("order broken at %d: got %q, want %q", i, resolved[i].ID, components[i].ID)
		}
	}
}
