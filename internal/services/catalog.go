package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

// CatalogClient is the upstream product/collection source. The Shopify
// client satisfies it; tests substitute fakes.
type CatalogClient interface {
	Configured() bool
	FetchProducts(ctx context.Context) ([]domain.ProductRecord, error)
	FetchCollections(ctx context.Context) ([]domain.CollectionRecord, error)
}

type CatalogService interface {
	Snapshot(ctx context.Context) (domain.Catalog, error)
}

type catalogService struct {
	client CatalogClient
	log    *logger.Logger
}

func NewCatalogService(client CatalogClient, baseLog *logger.Logger) CatalogService {
	return &catalogService{
		client: client,
		log:    baseLog.With("service", "CatalogService"),
	}
}

// Snapshot fetches products and collections concurrently. A store
// without credentials gets the demo catalog so the builder stays usable
// before the app is fully installed.
func (s *catalogService) Snapshot(ctx context.Context) (domain.Catalog, error) {
	if !s.client.Configured() {
		s.log.Debug("catalog client unconfigured, serving demo catalog")
		return DemoCatalog(), nil
	}

	var cat domain.Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.client.FetchProducts(gctx)
		if err != nil {
			return err
		}
		cat.Products = products
		return nil
	})
	g.Go(func() error {
		collections, err := s.client.FetchCollections(gctx)
		if err != nil {
			return err
		}
		cat.Collections = collections
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}

// DemoCatalog is the fixed dataset served when no store is connected.
func DemoCatalog() domain.Catalog {
	return domain.Catalog{
		Products: []domain.ProductRecord{
			{
				ID:       "demo-product-1",
				Title:    "Classic Tee",
				Price:    "24.00",
				Currency: "USD",
				ImageURL: "https://cdn.shopcanvas.dev/demo/tee.png",
				Variants: []domain.ProductVariant{
					{ID: "demo-variant-1", Title: "M", Price: "24.00", Available: true},
				},
			},
			{
				ID:       "demo-product-2",
				Title:    "Canvas Tote",
				Price:    "18.00",
				Currency: "USD",
				ImageURL: "https://cdn.shopcanvas.dev/demo/tote.png",
			},
		},
		Collections: []domain.CollectionRecord{
			{ID: "demo-collection-1", Title: "Featured", ProductCount: 2},
		},
	}
}
