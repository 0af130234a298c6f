package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopcanvas/builder-backend/internal/data/repos"
	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/cache"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
	"github.com/shopcanvas/builder-backend/internal/resolver"
)

// FallbackPolicy decides what a public endpoint does when its upstream
// catalog call fails: serve the default payload, or surface the error.
type FallbackPolicy string

const (
	FallbackToDefault FallbackPolicy = "fallback"
	FailClosed        FallbackPolicy = "fail"
)

// LivePayload is the envelope every public read returns. Source
// distinguishes live data, the hardcoded default (section absent or
// disabled), and the fallback served after an upstream failure.
type LivePayload struct {
	Success bool   `json:"success"`
	Section string `json:"section"`
	Source  string `json:"source"`
	Data    any    `json:"data"`
}

const (
	sourceLive     = "live"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// LiveService renders the denormalized JSON the mobile client consumes.
// Every method returns the marshaled payload so the cache can store the
// exact bytes that go on the wire.
type LiveService interface {
	Slider(ctx context.Context) ([]byte, error)
	Categories(ctx context.Context) ([]byte, error)
	SharkTank(ctx context.Context) ([]byte, error)
	NewDrops(ctx context.Context) ([]byte, error)
	Header(ctx context.Context) ([]byte, error)
	MobileHome(ctx context.Context) ([]byte, error)
	MobilePdp(ctx context.Context) ([]byte, error)
}

type liveService struct {
	log       *logger.Logger
	sections  SectionService
	templates repos.TemplateRepo
	pdp       PdpService
	catalog   CatalogService
	cache     cache.Cache
	ttl       time.Duration
	policies  map[string]FallbackPolicy
}

func NewLiveService(
	baseLog *logger.Logger,
	sections SectionService,
	templates repos.TemplateRepo,
	pdp PdpService,
	catalog CatalogService,
	payloadCache cache.Cache,
	ttl time.Duration,
	policies map[string]FallbackPolicy,
) LiveService {
	if payloadCache == nil {
		payloadCache = cache.NewNoop()
	}
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	if policies == nil {
		policies = map[string]FallbackPolicy{}
	}
	return &liveService{
		log:       baseLog.With("service", "LiveService"),
		sections:  sections,
		templates: templates,
		pdp:       pdp,
		catalog:   catalog,
		cache:     payloadCache,
		ttl:       ttl,
		policies:  policies,
	}
}

func (s *liveService) policy(section string) FallbackPolicy {
	if p, ok := s.policies[section]; ok {
		return p
	}
	return FallbackToDefault
}

func (s *liveService) serve(
	ctx context.Context,
	section string,
	build func(ctx context.Context) (any, string, error),
	fallback func() any,
) ([]byte, error) {
	cacheKey := "live:" + section
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		return cached, nil
	}

	data, source, err := build(ctx)
	if err != nil {
		if s.policy(section) == FailClosed {
			return nil, err
		}
		s.log.Warn("serving fallback payload", "section", section, "error", err)
		return json.Marshal(LivePayload{
			Success: false,
			Section: section,
			Source:  sourceFallback,
			Data:    fallback(),
		})
	}

	payload, err := json.Marshal(LivePayload{
		Success: true,
		Section: section,
		Source:  source,
		Data:    data,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKey, payload, s.ttl)
	return payload, nil
}

type slidePayload struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url,omitempty"`
}

func (s *liveService) Slider(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "slider", func(ctx context.Context) (any, string, error) {
		section, err := s.sections.GetSlider(ctx)
		if err != nil {
			return nil, "", err
		}
		if !section.Enabled {
			return defaultSliderData(), sourceDefault, nil
		}
		slides := make([]slidePayload, 0, len(section.Items))
		for _, item := range section.Items {
			if !item.Enabled {
				continue
			}
			slides = append(slides, slidePayload{
				Title:    item.Title,
				Subtitle: item.Subtitle,
				ImageURL: item.ImageURL,
				LinkURL:  item.LinkURL,
			})
		}
		if len(slides) == 0 {
			return defaultSliderData(), sourceDefault, nil
		}
		return map[string]any{"slides": slides}, sourceLive, nil
	}, func() any { return defaultSliderData() })
}

type categoryPayload struct {
	Title      string                   `json:"title"`
	ImageURL   string                   `json:"image_url,omitempty"`
	Collection *domain.CollectionRecord `json:"collection,omitempty"`
}

func (s *liveService) Categories(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "categories", func(ctx context.Context) (any, string, error) {
		section, err := s.sections.GetCategories(ctx)
		if err != nil {
			return nil, "", err
		}
		catalog, err := s.catalog.Snapshot(ctx)
		if err != nil {
			return nil, "", err
		}
		out := make([]categoryPayload, 0, len(section.Items))
		for _, item := range section.Items {
			if !item.Enabled {
				continue
			}
			p := categoryPayload{Title: item.Title, ImageURL: item.ImageURL}
			if item.CollectionID != "" {
				if col, ok := catalog.CollectionByID(item.CollectionID); ok {
					p.Collection = &col
					if p.ImageURL == "" {
						p.ImageURL = col.ImageURL
					}
				}
			}
			out = append(out, p)
		}
		if len(out) == 0 {
			return defaultCategoriesData(), sourceDefault, nil
		}
		return map[string]any{"categories": out}, sourceLive, nil
	}, func() any { return defaultCategoriesData() })
}

func (s *liveService) SharkTank(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "shark-tank", func(ctx context.Context) (any, string, error) {
		section, err := s.sections.GetSharkTank(ctx)
		if err != nil {
			return nil, "", err
		}
		if !section.Enabled {
			return defaultSharkTankData(), sourceDefault, nil
		}
		catalog, err := s.catalog.Snapshot(ctx)
		if err != nil {
			return nil, "", err
		}
		ids := make([]string, 0, len(section.Items))
		for _, item := range section.Items {
			if item.Enabled {
				ids = append(ids, item.ProductID)
			}
		}
		products := resolveProducts(ids, catalog)
		if len(products) == 0 {
			return defaultSharkTankData(), sourceDefault, nil
		}
		title := section.Title
		if title == "" {
			title = "Shark Tank"
		}
		return map[string]any{"title": title, "products": products}, sourceLive, nil
	}, func() any { return defaultSharkTankData() })
}

func (s *liveService) NewDrops(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "new-drops", func(ctx context.Context) (any, string, error) {
		section, err := s.sections.GetNewDrops(ctx)
		if err != nil {
			return nil, "", err
		}
		if !section.Enabled {
			return defaultNewDropsData(), sourceDefault, nil
		}
		catalog, err := s.catalog.Snapshot(ctx)
		if err != nil {
			return nil, "", err
		}
		ids := make([]string, 0, len(section.Items))
		for _, item := range section.Items {
			if item.Enabled {
				ids = append(ids, item.ProductID)
			}
		}
		products := resolveProducts(ids, catalog)
		if len(products) == 0 {
			return defaultNewDropsData(), sourceDefault, nil
		}
		title := section.Title
		if title == "" {
			title = "New Drops"
		}
		return map[string]any{
			"title":            title,
			"banner_image_url": section.BannerImageURL,
			"products":         products,
		}, sourceLive, nil
	}, func() any { return defaultNewDropsData() })
}

func (s *liveService) Header(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "header", func(ctx context.Context) (any, string, error) {
		cfg, err := s.sections.GetHeader(ctx)
		if err != nil {
			return nil, "", err
		}
		if !cfg.Enabled {
			return defaultHeaderData(), sourceDefault, nil
		}
		return cfg, sourceLive, nil
	}, func() any { return defaultHeaderData() })
}

// MobileHome serves the most recently updated homepage layout, resolved
// against the catalog.
func (s *liveService) MobileHome(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "mobile-home", func(ctx context.Context) (any, string, error) {
		rows, err := s.templates.ListWithData(ctx, nil)
		if err != nil {
			return nil, "", err
		}
		var latest *domain.Template
		for _, row := range rows {
			if row.DesignType == domain.DesignHomepage {
				latest = row
				break
			}
		}
		catalog, err := s.catalog.Snapshot(ctx)
		if err != nil {
			return nil, "", err
		}
		if latest == nil {
			return map[string]any{
				"components": resolver.Resolve(defaultHomeLayout(), catalog),
			}, sourceDefault, nil
		}
		components, err := latest.Components()
		if err != nil {
			return nil, "", err
		}
		return map[string]any{
			"template_id": latest.ID,
			"name":        latest.Name,
			"components":  resolver.Resolve(components, catalog),
		}, sourceLive, nil
	}, func() any {
		return map[string]any{
			"components": resolver.Resolve(defaultHomeLayout(), DemoCatalog()),
		}
	})
}

// MobilePdp gates on the activation flag: only a live, non-empty custom
// design replaces the built-in product page.
func (s *liveService) MobilePdp(ctx context.Context) ([]byte, error) {
	return s.serve(ctx, "mobile-pdp", func(ctx context.Context) (any, string, error) {
		status, err := s.pdp.Status(ctx)
		if err != nil {
			return nil, "", err
		}
		catalog, err := s.catalog.Snapshot(ctx)
		if err != nil {
			return nil, "", err
		}
		if !status.Active || len(status.DesignData) == 0 {
			return map[string]any{
				"active":     false,
				"components": resolver.Resolve(defaultPdpLayout(), catalog),
			}, sourceDefault, nil
		}
		return map[string]any{
			"active":     true,
			"components": resolver.Resolve(status.DesignData, catalog),
		}, sourceLive, nil
	}, func() any {
		return map[string]any{
			"active":     false,
			"components": resolver.Resolve(defaultPdpLayout(), DemoCatalog()),
		}
	})
}

// resolveProducts maps section product ids to catalog records with the
// resolver's degrade policy: unknown ids fall back to the catalog's
// first product, an empty catalog yields no content.
func resolveProducts(ids []string, catalog domain.Catalog) []domain.ProductRecord {
	if len(catalog.Products) == 0 {
		return nil
	}
	out := make([]domain.ProductRecord, 0, len(ids))
	for _, id := range ids {
		if p, ok := catalog.ProductByID(id); ok {
			out = append(out, p)
			continue
		}
		out = append(out, catalog.Products[0])
	}
	return out
}
