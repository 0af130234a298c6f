// Package resolver turns a stored component sequence plus a catalog
// snapshot into render-ready components. It is a total function: every
// branch has a defined default, so a preview never fails because of a
// stale or missing id reference.
package resolver

import (
	"github.com/shopcanvas/builder-backend/internal/domain"
)

const defaultSpacerHeight = 40

// ResolvedComponent mirrors a ComponentInstance with id references
// substituted by concrete catalog records. It lives for one render and
// is never persisted.
type ResolvedComponent struct {
	ID         string                   `json:"id"`
	Type       string                   `json:"type"`
	Props      map[string]any           `json:"props,omitempty"`
	Product    *domain.ProductRecord    `json:"product,omitempty"`
	Collection *domain.CollectionRecord `json:"collection,omitempty"`
	Gap        int                      `json:"gap,omitempty"`
}

// Resolve maps the sequence in order. Components referencing a
// productId or collectionId get the matching record, or the catalog's
// first record when the id is absent or unknown; an empty catalog
// resolves to no content rather than an error. Everything else passes
// its props through unchanged.
func Resolve(components []domain.ComponentInstance, catalog domain.Catalog) []ResolvedComponent {
	out := make([]ResolvedComponent, 0, len(components))
	for _, c := range components {
		rc := ResolvedComponent{
			ID:    c.ID,
			Type:  c.Type,
			Props: c.Props,
		}
		if c.Type == "Spacer" {
			rc.Gap = int(c.PropNumber("height", defaultSpacerHeight))
		}
		if _, ok := c.Props["productId"]; ok {
			rc.Product = resolveProduct(c.PropString("productId"), catalog)
		}
		if _, ok := c.Props["collectionId"]; ok {
			rc.Collection = resolveCollection(c.PropString("collectionId"), catalog)
		}
		out = append(out, rc)
	}
	return out
}

func resolveProduct(id string, catalog domain.Catalog) *domain.ProductRecord {
	if len(catalog.Products) == 0 {
		return nil
	}
	if p, ok := catalog.ProductByID(id); ok {
		return &p
	}
	first := catalog.Products[0]
	return &first
}

func resolveCollection(id string, catalog domain.Catalog) *domain.CollectionRecord {
	if len(catalog.Collections) == 0 {
		return nil
	}
	if c, ok := catalog.CollectionByID(id); ok {
		return &c
	}
	first := catalog.Collections[0]
	return &first
}
