package app

import (
	httpH "github.com/shopcanvas/builder-backend/internal/http/handlers"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Template *httpH.TemplateHandler
	Pdp      *httpH.PdpHandler
	Section  *httpH.SectionHandler
	Palette  *httpH.PaletteHandler
	Live     *httpH.LiveHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Template: httpH.NewTemplateHandler(serviceset.Template),
		Pdp:      httpH.NewPdpHandler(serviceset.Pdp),
		Section:  httpH.NewSectionHandler(serviceset.Section),
		Palette:  httpH.NewPaletteHandler(),
		Live:     httpH.NewLiveHandler(serviceset.Live),
	}
}
