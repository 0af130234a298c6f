package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/shopcanvas/builder-backend/internal/http/handlers"
	httpMW "github.com/shopcanvas/builder-backend/internal/http/middleware"
)

type RouterConfig struct {
	HealthHandler   *httpH.HealthHandler
	TemplateHandler *httpH.TemplateHandler
	PdpHandler      *httpH.PdpHandler
	SectionHandler  *httpH.SectionHandler
	PaletteHandler  *httpH.PaletteHandler
	LiveHandler     *httpH.LiveHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Admin surface: the builder UI. Merchant auth happens at the
	// platform edge in front of this service.
	admin := r.Group("/api")
	{
		if cfg.TemplateHandler != nil {
			admin.GET("/templates/load", cfg.TemplateHandler.Load)
			admin.POST("/templates/save", cfg.TemplateHandler.Save)
			admin.DELETE("/templates/delete", cfg.TemplateHandler.Delete)
		}

		if cfg.PdpHandler != nil {
			admin.GET("/pdp/status", cfg.PdpHandler.Status)
			admin.POST("/pdp/status", cfg.PdpHandler.Update)
		}

		if cfg.PaletteHandler != nil {
			admin.GET("/palette", cfg.PaletteHandler.Palette)
			admin.GET("/palette/schema", cfg.PaletteHandler.Schema)
		}

		if cfg.SectionHandler != nil {
			admin.GET("/admin/slider", cfg.SectionHandler.GetSlider)
			admin.POST("/admin/slider", cfg.SectionHandler.UpdateSlider)
			admin.GET("/admin/shark-tank", cfg.SectionHandler.GetSharkTank)
			admin.POST("/admin/shark-tank", cfg.SectionHandler.UpdateSharkTank)
			admin.GET("/admin/new-drops", cfg.SectionHandler.GetNewDrops)
			admin.POST("/admin/new-drops", cfg.SectionHandler.UpdateNewDrops)
			admin.GET("/admin/header", cfg.SectionHandler.GetHeader)
			admin.POST("/admin/header", cfg.SectionHandler.UpdateHeader)
			admin.GET("/admin/categories", cfg.SectionHandler.GetCategories)
			admin.POST("/admin/categories", cfg.SectionHandler.UpdateCategories)
		}
	}

	// Public surface: read-only JSON for the mobile client, any origin.
	public := r.Group("/api")
	{
		if cfg.LiveHandler != nil {
			public.GET("/live-slider", cfg.LiveHandler.Slider)
			public.GET("/live-categories", cfg.LiveHandler.Categories)
			public.GET("/live-shark-tank", cfg.LiveHandler.SharkTank)
			public.GET("/live-new-drops", cfg.LiveHandler.NewDrops)
			public.GET("/live-header", cfg.LiveHandler.Header)
			public.GET("/mobile-home", cfg.LiveHandler.MobileHome)
			public.GET("/mobile-pdp", cfg.LiveHandler.MobilePdp)
		}
	}

	return r
}
