package app

import (
	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/clients/shopify"
	"github.com/shopcanvas/builder-backend/internal/platform/cache"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
	"github.com/shopcanvas/builder-backend/internal/services"
)

type Services struct {
	Template services.TemplateService
	Pdp      services.PdpService
	Section  services.SectionService
	Catalog  services.CatalogService
	Live     services.LiveService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	shopifyClient := shopify.NewClient(shopify.Config{
		StoreDomain:     cfg.ShopifyStoreDomain,
		AdminToken:      cfg.ShopifyAdminToken,
		StorefrontToken: cfg.ShopifyStorefrontToken,
		APIVersion:      cfg.ShopifyAPIVersion,
	}, nil, log)

	var payloadCache cache.Cache
	if cfg.RedisAddr != "" {
		payloadCache = cache.NewRedis(cfg.RedisAddr, log)
	} else {
		payloadCache = cache.NewNoop()
	}

	template := services.NewTemplateService(db, log, reposet.Template)
	pdp := services.NewPdpService(db, log, reposet.PdpConfig)
	section := services.NewSectionService(db, log,
		reposet.Slider, reposet.SharkTank, reposet.NewDrops, reposet.Header, reposet.Category)
	catalog := services.NewCatalogService(shopifyClient, log)

	policies := map[string]services.FallbackPolicy{}
	if cfg.LiveFallbackPolicy == services.FailClosed {
		for _, name := range []string{
			"slider", "categories", "shark-tank", "new-drops", "header",
			"mobile-home", "mobile-pdp",
		} {
			policies[name] = services.FailClosed
		}
	}

	live := services.NewLiveService(log, section, reposet.Template, pdp, catalog,
		payloadCache, cfg.CacheTTL, policies)

	return Services{
		Template: template,
		Pdp:      pdp,
		Section:  section,
		Catalog:  catalog,
		Live:     live,
	}
}
