package app

import (
	apphttp "github.com/shopcanvas/builder-backend/internal/http"
)

func wireRouter(handlerset Handlers) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		HealthHandler:   handlerset.Health,
		TemplateHandler: handlerset.Template,
		PdpHandler:      handlerset.Pdp,
		SectionHandler:  handlerset.Section,
		PaletteHandler:  handlerset.Palette,
		LiveHandler:     handlerset.Live,
	})
}
