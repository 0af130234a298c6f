package app

import (
	"time"

	"github.com/shopcanvas/builder-backend/internal/platform/envutil"
	"github.com/shopcanvas/builder-backend/internal/services"
)

type Config struct {
	Port        string
	LogMode     string
	AutoMigrate bool

	ShopifyStoreDomain     string
	ShopifyAdminToken      string
	ShopifyStorefrontToken string
	ShopifyAPIVersion      string

	RedisAddr string
	CacheTTL  time.Duration

	LiveFallbackPolicy services.FallbackPolicy
}

func LoadConfig() Config {
	return Config{
		Port:    envutil.String("PORT", "8080"),
		LogMode: envutil.String("LOG_MODE", "development"),

		// Deployments that run schema migrations out of band set this
		// to false so boot never alters the schema.
		AutoMigrate: envutil.Bool("AUTO_MIGRATE", true),

		ShopifyStoreDomain:     envutil.String("SHOPIFY_STORE_DOMAIN", ""),
		ShopifyAdminToken:      envutil.String("SHOPIFY_ADMIN_TOKEN", ""),
		ShopifyStorefrontToken: envutil.String("SHOPIFY_STOREFRONT_TOKEN", ""),
		ShopifyAPIVersion:      envutil.String("SHOPIFY_API_VERSION", "2024-10"),

		RedisAddr: envutil.String("REDIS_ADDR", ""),
		CacheTTL:  time.Duration(envutil.Int("CACHE_TTL_SECONDS", 60)) * time.Second,

		// All public reads ship with the availability-first policy; the
		// env override exists for staging, where surfacing upstream
		// failures beats hiding them.
		LiveFallbackPolicy: services.FallbackPolicy(envutil.String("LIVE_FALLBACK_POLICY", string(services.FallbackToDefault))),
	}
}
