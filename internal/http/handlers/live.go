package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcanvas/builder-backend/internal/http/response"
	"github.com/shopcanvas/builder-backend/internal/services"
)

const jsonContentType = "application/json; charset=utf-8"

// LiveHandler exposes the public read surface. The service hands back
// marshaled payload bytes so cache hits skip re-encoding.
type LiveHandler struct {
	live services.LiveService
}

func NewLiveHandler(live services.LiveService) *LiveHandler {
	return &LiveHandler{live: live}
}

func (h *LiveHandler) serve(c *gin.Context, build func(ctx context.Context) ([]byte, error)) {
	payload, err := build(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, jsonContentType, payload)
}

// GET /api/live-slider
func (h *LiveHandler) Slider(c *gin.Context) { h.serve(c, h.live.Slider) }

// GET /api/live-categories
func (h *LiveHandler) Categories(c *gin.Context) { h.serve(c, h.live.Categories) }

// GET /api/live-shark-tank
func (h *LiveHandler) SharkTank(c *gin.Context) { h.serve(c, h.live.SharkTank) }

// GET /api/live-new-drops
func (h *LiveHandler) NewDrops(c *gin.Context) { h.serve(c, h.live.NewDrops) }

// GET /api/live-header
func (h *LiveHandler) Header(c *gin.Context) { h.serve(c, h.live.Header) }

// GET /api/mobile-home
func (h *LiveHandler) MobileHome(c *gin.Context) { h.serve(c, h.live.MobileHome) }

// GET /api/mobile-pdp
func (h *LiveHandler) MobilePdp(c *gin.Context) { h.serve(c, h.live.MobilePdp) }
