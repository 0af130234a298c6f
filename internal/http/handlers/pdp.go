package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/http/response"
	"github.com/shopcanvas/builder-backend/internal/services"
)

type PdpHandler struct {
	pdp services.PdpService
}

func NewPdpHandler(pdp services.PdpService) *PdpHandler {
	return &PdpHandler{pdp: pdp}
}

type updatePdpRequest struct {
	Active     bool                       `json:"active"`
	DesignData []domain.ComponentInstance `json:"designData"`
}

// GET /api/pdp/status
func (h *PdpHandler) Status(c *gin.Context) {
	status, err := h.pdp.Status(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":    true,
		"active":     status.Active,
		"designData": status.DesignData,
	})
}

// POST /api/pdp/status
func (h *PdpHandler) Update(c *gin.Context) {
	var req updatePdpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	status, err := h.pdp.Update(c.Request.Context(), req.Active, req.DesignData)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":    true,
		"active":     status.Active,
		"designData": status.DesignData,
	})
}
